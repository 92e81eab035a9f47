package control

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Field is one key/value pair of a record. Value holds the raw folded
// value exactly as read from the wire, with continuation indentation
// intact; pass it through Unfold to obtain the logical value.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered sequence of fields read from one
// blank-line-delimited group of input lines.
type Record []Field

// Get returns the raw value of the first field with the given key and
// whether it was present.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// RecordReader scans a byte stream line by line and extracts (key, raw
// value) pairs. It owns a line buffer and a one-record position; it must
// not be used from multiple goroutines and the underlying reader must not
// be read from concurrently.
//
// The reader tracks two boundary conditions:
//
//   - EOF reports that the stream is exhausted.
//   - Clean reports that the current position follows a blank line (or
//     the start of the stream) with no key parsed since. Sequence
//     decoding consults it to tell "no more records" apart from a
//     genuine parse error; single-record decoding never does.
type RecordReader struct {
	r     *bufio.Reader
	buf   []byte
	line  int
	eof   bool
	clean bool
}

// NewRecordReader returns a RecordReader scanning from r.
func NewRecordReader(r io.Reader) *RecordReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &RecordReader{r: br, clean: true}
}

// EOF reports whether the end of the stream has been reached.
func (r *RecordReader) EOF() bool {
	return r.eof
}

// Clean reports whether the last record boundary was crossed cleanly: a
// blank line or the stream start, with no key parsed since.
func (r *RecordReader) Clean() bool {
	return r.clean
}

// Line returns the number of physical lines consumed so far.
func (r *RecordReader) Line() int {
	return r.line
}

// readLine appends one physical line (including its terminator, if any)
// to the buffer and returns the number of bytes read. Zero bytes means
// end of stream.
func (r *RecordReader) readLine() (int, error) {
	s, err := r.r.ReadString('\n')
	if len(s) > 0 {
		r.buf = append(r.buf, s...)
		r.line++
	}
	if err == io.EOF {
		// A final line without a terminator is still a line.
		return len(s), nil
	}
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// NextKey returns the key of the next field in the current record. The
// second result is false when the record has ended: either a blank line
// was consumed (the stream may hold further records) or the stream is
// exhausted, distinguishable via EOF.
//
// The key is everything before the first colon of the line, verbatim.
// The value stays pending in the buffer until NextValue is called.
func (r *RecordReader) NextKey() (string, bool, error) {
	if len(r.buf) == 0 {
		n, err := r.readLine()
		if err != nil {
			return "", false, err
		}
		if n == 0 {
			r.eof = true
			return "", false, nil
		}
	}

	if len(r.buf) == 1 && r.buf[0] == '\n' {
		r.buf = r.buf[:0]
		r.clean = true
		return "", false, nil
	}

	pos := bytes.IndexByte(r.buf, KeySeparator)
	if pos < 0 {
		return "", false, &MissingColonError{Line: r.line}
	}
	r.clean = false
	return string(r.buf[:pos]), true, nil
}

// NextValue reads the raw value of the field whose key was just returned
// by NextKey. Physical lines beginning with a space or tab are
// continuation lines and belong to the value; the first line that does
// not continue (or end of stream) terminates it and remains buffered for
// the next NextKey call.
//
// The returned value is the text after the key's colon, joined across
// continuation lines with '\n' and trimmed once at both ends as a whole.
func (r *RecordReader) NextValue() (string, error) {
	pos := len(r.buf)
	for {
		n, err := r.readLine()
		if err != nil {
			return "", err
		}
		if n == 0 || (r.buf[pos] != ' ' && r.buf[pos] != '\t') {
			break
		}
		pos += n
	}

	begin := bytes.IndexByte(r.buf, KeySeparator) + 1
	value := strings.TrimSpace(string(r.buf[begin:pos]))

	// Keep the stopping line for the next NextKey call.
	r.buf = r.buf[:copy(r.buf, r.buf[pos:])]
	return value, nil
}

// ReadRecord reads one complete record. It returns io.EOF when the
// stream is exhausted before any field is read. A blank-line-only group
// yields an empty record with a nil error.
func (r *RecordReader) ReadRecord() (Record, error) {
	var rec Record
	for {
		key, ok, err := r.NextKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(rec) == 0 && r.eof {
				return nil, io.EOF
			}
			return rec, nil
		}
		value, err := r.NextValue()
		if err != nil {
			return nil, err
		}
		rec = append(rec, Field{Key: key, Value: value})
	}
}
