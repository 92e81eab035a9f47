package deb822

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrAmbiguousType is returned when the decode target does not pin down
// the shape of the data: the format is not self-describing, so decoding
// into interface values or non-textual kinds cannot work.
var ErrAmbiguousType = errors.New("deb822: the target type is ambiguous and must be explicitly specified (the format is not self-describing)")

// UnsupportedTypeError is returned by Marshal and Encode when a value
// has a shape the format cannot represent: booleans, numbers without a
// text form, nested structs as field values, and so on.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == nil {
		return "deb822: unsupported value: nil"
	}
	return "deb822: unsupported type: " + e.Type.String()
}

// InvalidDecodeError is returned when the decode target is not a
// non-nil pointer.
type InvalidDecodeError struct {
	Type reflect.Type
}

func (e *InvalidDecodeError) Error() string {
	if e.Type == nil {
		return "deb822: Decode target must be a non-nil pointer, got nil"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "deb822: Decode target must be a non-nil pointer, got " + e.Type.String()
	}
	return "deb822: Decode target must be a non-nil pointer, got nil " + e.Type.String()
}

// FileError is returned by DecodeFile so that the failure carries the
// path of the file involved.
type FileError struct {
	Path string
	Op   string // "open" or "load"
	Err  error
}

func (e *FileError) Error() string {
	if e.Op == "open" {
		return fmt.Sprintf("deb822: failed to open file %s for reading: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("deb822: failed to load file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *FileError) Unwrap() error {
	return e.Err
}
