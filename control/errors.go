package control

import (
	"errors"
	"fmt"
)

// Error types for reading and writing control records.
// Decode errors carry the physical line number of the offending input;
// encode errors identify the key and character that were rejected.

// ErrEmptyKey is returned when writing a field with an empty key.
var ErrEmptyKey = errors.New("control: empty key is not allowed")

// MissingColonError reports a non-blank input line that contains no colon.
//
// Line is the 1-based physical line number in the input stream.
type MissingColonError struct {
	Line int
}

func (e *MissingColonError) Error() string {
	return fmt.Sprintf("control: line %d doesn't contain a colon", e.Line)
}

// InvalidKeyError reports a key that cannot be represented on the wire.
// Keys must not contain ':' (it would terminate the key early) or '\n'
// (it would break the line structure).
type InvalidKeyError struct {
	Key  string // the rejected key
	Char rune   // the offending character
	Pos  int    // byte offset of Char within Key
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("control: invalid char %q in key %q at position %d", e.Char, e.Key, e.Pos)
}

// WriteError wraps an I/O error from the output sink. It keeps sink
// failures distinguishable from formatting and validation errors.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "control: write failed: " + e.Err.Error()
}

// Unwrap returns the underlying error for error chain inspection.
func (e *WriteError) Unwrap() error {
	return e.Err
}
