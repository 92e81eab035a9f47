// Package deb822 encodes and decodes the RFC822-inspired control file
// format used by Debian: debian/control in source packages, the Packages
// index consumed by apt, and similar files. The format is handled as
// Debian tooling produces it, not as RFC822 proper.
//
// A file is one or more records separated by blank lines; a record is a
// group of "Key: value" fields whose values may fold onto indented
// continuation lines:
//
//	Package: bitcoin
//	Description: Magic Internet Money
//	 A peer-to-peer electronic cash system.
//
// Like the builtin json package, deb822 converts between Go values and
// records. The format is not self-describing, so the target type must
// be given explicitly:
//
//	type Record struct {
//	    Package     string
//	    Description string
//	    Depends     []string
//	    Homepage    *string
//	}
//
//	var records []Record
//	err := deb822.Unmarshal(data, &records)
//
// Struct fields map to record keys by Go field name, or by a `deb822`
// struct tag. Supported field types are strings and named string types,
// pointers to those (an absent field leaves the pointer nil, a nil
// pointer is omitted on encode), slices of those (comma-separated list
// values), and any type implementing encoding.TextMarshaler and
// encoding.TextUnmarshaler. Booleans, numbers and nested structs have
// no representation in the format and are rejected.
//
// Records can equally be decoded into maps with string keys, and a
// slice target decodes a whole multi-record file, tolerating a trailing
// blank line or clean end of stream.
//
// Encoding mirrors decoding:
//
//	out, err := deb822.Marshal(records)
//
// or, streaming with optional 80-column word wrapping of continuation
// lines:
//
//	enc := deb822.NewEncoder(w)
//	enc.SetWrapLongLines(true)
//	err := enc.Encode(records)
//
// The low-level line scanning and folding engine lives in the control
// subpackage; use it to process records generically without declaring a
// target type.
//
// Two values cannot be represented on the wire: list items containing
// a comma, and values with a logical line of exactly ".". Such values
// do not round-trip.
package deb822
