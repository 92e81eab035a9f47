package control

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// ValidateKey checks that a key can be represented on the wire.
// Keys must be non-empty and free of ':' and '\n'.
// Returns ErrEmptyKey or an InvalidKeyError describing the failure.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if pos := strings.IndexAny(key, ":\n"); pos >= 0 {
		return &InvalidKeyError{Key: key, Char: rune(key[pos]), Pos: pos}
	}
	return nil
}

// RecordWriter composes one record field by field. Fields are written in
// the order the caller supplies them; the caller is responsible for blank
// lines between records.
//
// The zero WrapWidth and Indent fall back to DefaultWrapWidth and
// ContinuationIndent.
type RecordWriter struct {
	W             io.Writer
	WrapLongLines bool   // wrap continuation lines at WrapWidth columns
	WrapWidth     int    // column limit when wrapping, 0 means DefaultWrapWidth
	Indent        string // continuation indent, "" means ContinuationIndent
}

// NewRecordWriter returns a RecordWriter emitting to w with default
// folding configuration.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{W: w}
}

// WriteField writes one scalar field. The value may contain newlines; it
// is folded onto continuation lines, with empty logical lines written as
// the paragraph marker. An empty value still produces "Key: \n".
func (rw *RecordWriter) WriteField(key, value string) error {
	if err := rw.writeKey(key); err != nil {
		return err
	}
	fw := rw.FieldWriter()
	if err := fw.WriteString(value); err != nil {
		return err
	}
	return fw.Finish()
}

// WriteList writes one sequence field as comma-joined, column-aligned
// continuation lines. An empty list writes nothing at all: the field is
// omitted rather than rendered as "Key:".
//
// Items must not contain ',' or '\n'; such items cannot be represented
// and would not round-trip.
func (rw *RecordWriter) WriteList(key string, items []string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	lw := &ListWriter{W: rw.W, Key: key}
	for _, item := range items {
		if err := lw.WriteItem(item); err != nil {
			return err
		}
	}
	return lw.End()
}

// FieldWriter returns a folding writer configured like rw, positioned at
// the start of a value. The caller must have written "Key: " already;
// WriteField does both.
func (rw *RecordWriter) FieldWriter() *FieldWriter {
	return &FieldWriter{
		W:         rw.W,
		Wrap:      rw.WrapLongLines,
		WrapWidth: rw.WrapWidth,
		Indent:    rw.Indent,
	}
}

// writeKey validates the key and emits the "Key: " prefix.
func (rw *RecordWriter) writeKey(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return rw.write(key + ": ")
}

func (rw *RecordWriter) write(s string) error {
	if _, err := io.WriteString(rw.W, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

type foldState int

const (
	// foldFirstLine: nothing but first-line text written so far. The
	// first physical line shares the line with "Key: " and is never
	// word-wrapped.
	foldFirstLine foldState = iota
	// foldNeutral: mid-line on a continuation line.
	foldNeutral
	// foldEndedNewline: the last chunk ended with '\n'; the continuation
	// indent for the next line has already been emitted.
	foldEndedNewline
)

// FieldWriter folds a logical multi-line value into wire form: the text
// of the first line, then each embedded newline as "\n" plus the
// continuation indent, with empty logical lines written as the paragraph
// marker. The value may be supplied incrementally across any number of
// WriteString calls; chunk boundaries do not affect the output.
//
// State exists for the duration of one field's serialization only.
// Finish must be called exactly once after the last chunk.
type FieldWriter struct {
	W         io.Writer
	Wrap      bool   // wrap continuation lines on word boundaries
	WrapWidth int    // 0 means DefaultWrapWidth
	Indent    string // "" means ContinuationIndent

	state foldState
}

// WriteString folds one chunk of the value into the output.
func (fw *FieldWriter) WriteString(s string) error {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")

	var err error
	switch {
	case fw.state == foldFirstLine:
		err = fw.write(lines[0])
	case fw.state == foldEndedNewline && lines[0] == "":
		err = fw.write(".")
	case fw.Wrap:
		err = fw.writeWrapped(lines[0])
	default:
		err = fw.write(lines[0])
	}
	if err != nil {
		return err
	}

	rest := lines[1:]
	for i, line := range rest {
		if err := fw.write("\n" + fw.indent()); err != nil {
			return err
		}
		switch {
		case line == "":
			// A trailing empty piece is ambiguous: whether it is an
			// empty logical line depends on how the next chunk starts,
			// so it is resolved by state instead of here.
			if i < len(rest)-1 {
				if err := fw.write("."); err != nil {
					return err
				}
			}
		case fw.Wrap:
			if err := fw.writeWrapped(line); err != nil {
				return err
			}
		default:
			if err := fw.write(line); err != nil {
				return err
			}
		}
	}

	switch {
	case fw.state == foldFirstLine && len(lines) == 1:
		// Still on the first physical line.
	case strings.HasSuffix(s, "\n"):
		fw.state = foldEndedNewline
	default:
		fw.state = foldNeutral
	}
	return nil
}

// Finish terminates the field. Every field's output ends with exactly
// one newline; if the value already ended with one, Finish is a no-op.
func (fw *FieldWriter) Finish() error {
	if fw.state == foldEndedNewline {
		return nil
	}
	return fw.write("\n")
}

func (fw *FieldWriter) indent() string {
	if fw.Indent == "" {
		return ContinuationIndent
	}
	return fw.Indent
}

func (fw *FieldWriter) write(s string) error {
	if _, err := io.WriteString(fw.W, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// ListWriter writes one sequence field. The "Key: " prefix is emitted
// lazily on the first item so that an empty sequence produces no output
// line at all. Subsequent items are aligned under the first with spaces
// matching the display width of the prefix.
type ListWriter struct {
	W   io.Writer
	Key string

	started bool
	indent  int
}

// WriteItem writes one element, unmodified. Elements are not folded;
// they must not contain newlines.
func (lw *ListWriter) WriteItem(item string) error {
	if !lw.started {
		if err := lw.write(lw.Key + ": "); err != nil {
			return err
		}
		lw.indent = uniseg.GraphemeClusterCount(lw.Key) + 2
		lw.started = true
	} else {
		if err := lw.write(",\n" + strings.Repeat(" ", lw.indent)); err != nil {
			return err
		}
	}
	return lw.write(item)
}

// End terminates the field with a newline, or writes nothing if no item
// was written.
func (lw *ListWriter) End() error {
	if !lw.started {
		return nil
	}
	return lw.write("\n")
}

func (lw *ListWriter) write(s string) error {
	if _, err := io.WriteString(lw.W, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
