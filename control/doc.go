// Package control provides the low-level wire codec for the Debian
// control file (deb822) format: line scanning, folding and unfolding of
// multi-line values, and record composition.
//
// This package serves as a foundation for higher-level bindings (such as
// the reflection-based Marshal/Unmarshal in the parent package) without
// imposing a data model. It deals in keys and raw string values only.
//
// # Wire Format
//
// A stream is one or more records separated by blank lines. A record is
// a group of fields. A field is a key (everything before the first colon
// of a line), a colon, and a value. The value may continue onto
// following lines; a continuation line starts with a space or tab:
//
//	Package: bitcoin
//	Description: Magic Internet Money
//	 A peer-to-peer electronic cash system.
//	 .
//	 This package provides the daemon.
//
// A continuation line of exactly " ." (the paragraph marker) denotes an
// intentionally empty logical line, keeping it distinguishable from the
// blank line that would otherwise end the record.
//
// The format is not self-describing: whether a value is a scalar or a
// comma-separated list must be known by the caller.
//
// # Reading
//
// RecordReader scans a stream record by record:
//
//	r := control.NewRecordReader(input)
//	for {
//	    rec, err := r.ReadRecord()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    for _, f := range rec {
//	        logical := control.Unfold(f.Value)
//	        _ = logical
//	    }
//	}
//
// Raw values keep their folded form; Unfold strips continuation
// indentation and resolves paragraph markers, and SplitList splits a
// logical value into trimmed comma-separated items.
//
// For schema-driven decoding, NextKey and NextValue expose the scanner
// one field at a time, and Clean reports whether the current position
// follows a cleanly crossed record boundary. Sequence decoders use it to
// treat a failure after a trailing blank line as the end of the
// sequence; single-record decoders must not.
//
// # Writing
//
// RecordWriter is the mirror of the reader:
//
//	w := control.NewRecordWriter(output)
//	w.WriteField("Package", "bitcoin")
//	w.WriteField("Description", "Magic Internet Money\nA peer-to-peer electronic cash system.")
//	w.WriteList("Depends", []string{"bitcoind", "python (>= 3.0.0)"})
//
// Keys are validated before anything is written: ErrEmptyKey for empty
// keys, InvalidKeyError for keys containing ':' or '\n'. Values are
// folded by FieldWriter, which accepts the value in arbitrary chunks and
// may word-wrap continuation lines at a configurable column limit
// (measured in grapheme clusters; the first physical line is never
// wrapped because it shares the line with "Key: "). Lists are written by
// ListWriter with items aligned under the first; an empty list emits no
// output at all.
//
// # Limitations
//
// Round trips hold for values whose lines are individually trimmed,
// contain no NUL, and where no logical line is exactly "."; list items
// must additionally be free of ',' and '\n'. A comma inside a list item
// and a logical line of "." are unrepresentable; the codec preserves
// this limitation for wire compatibility instead of inventing escapes.
//
// # Thread Safety
//
// RecordReader, RecordWriter, FieldWriter and ListWriter are stateful
// and not safe for concurrent use. Use one instance per stream per
// goroutine.
package control
