package deb822

import (
	"bufio"
	"bytes"
	"encoding"
	"io"
	"os"
	"reflect"

	"github.com/deb822/deb822/control"
)

// Unmarshal decodes control-format data into v.
//
// Because the format is not self-describing, v must pin down the shape
// of the data. The allowed targets are:
//
//   - pointer to struct: one record
//   - pointer to map with string-kind keys: one record
//   - pointer to slice of the above: blank-line-separated records
//
// Struct fields are matched by their `deb822` tag, or by the Go field
// name when untagged; a tag of "-" skips the field. Field values must be
// strings, named string types, pointers to those (absent fields leave
// the pointer nil), slices of those (comma-separated lists), or types
// implementing encoding.TextUnmarshaler. Keys present in the input but
// absent from the target are ignored.
func Unmarshal(data []byte, v any) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}

// DecodeFile opens the named file and decodes its contents into v.
// Errors are returned as a FileError carrying the path.
func DecodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	if err := NewDecoder(bufio.NewReader(f)).Decode(v); err != nil {
		return &FileError{Path: path, Op: "load", Err: err}
	}
	return nil
}

// A Decoder reads and decodes control-format records from an input
// stream. It holds the stream position, so successive Decode calls
// continue where the previous one stopped. Not safe for concurrent use.
type Decoder struct {
	r *control.RecordReader
}

// NewDecoder returns a new Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: control.NewRecordReader(r)}
}

// Decode reads from the stream and stores the result in the value
// pointed to by v. See Unmarshal for the supported target shapes.
//
// For single-record targets, Decode returns io.EOF when the stream is
// exhausted before any field is read, so callers can loop over a
// multi-record stream. A slice target consumes the whole stream and
// never returns io.EOF.
func (d *Decoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		var t reflect.Type
		if v != nil {
			t = reflect.TypeOf(v)
		}
		return &InvalidDecodeError{Type: t}
	}

	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Slice:
		return d.decodeSequence(elem)
	case reflect.Struct, reflect.Map:
		n, err := d.decodeRecord(elem)
		if err != nil {
			return err
		}
		if n == 0 && d.r.EOF() {
			return io.EOF
		}
		return nil
	default:
		return ErrAmbiguousType
	}
}

// decodeSequence decodes blank-line-separated records into a slice.
//
// Termination: a decode failure after a cleanly crossed record boundary
// (trailing blank line or stream start, no key parsed since) means "no
// more records" and ends the sequence successfully; a failure mid-record
// is a genuine error and propagates.
func (d *Decoder) decodeSequence(dst reflect.Value) error {
	elemType := dst.Type().Elem()
	if !validRecordType(elemType) {
		return ErrAmbiguousType
	}

	out := reflect.MakeSlice(dst.Type(), 0, 0)
	for {
		if d.r.EOF() {
			break
		}

		ev := reflect.New(elemType).Elem()
		n, err := d.decodeRecord(allocIndirect(ev))
		if err != nil {
			if d.r.Clean() {
				break
			}
			return err
		}
		if n == 0 {
			if d.r.EOF() {
				break
			}
			// A group holding nothing but a blank line ends a sequence
			// of field-bearing structs; an empty record is a valid map,
			// so keep going.
			if hasBindableFields(elemType) {
				break
			}
		}
		out = reflect.Append(out, ev)
	}

	dst.Set(out)
	return nil
}

// decodeRecord decodes one record into a struct or map and returns the
// number of fields consumed from the input.
func (d *Decoder) decodeRecord(dst reflect.Value) (int, error) {
	switch dst.Kind() {
	case reflect.Struct:
		return d.decodeStruct(dst)
	case reflect.Map:
		return d.decodeMap(dst)
	default:
		return 0, ErrAmbiguousType
	}
}

func (d *Decoder) decodeStruct(dst reflect.Value) (int, error) {
	fields := typeFields(dst.Type())

	n := 0
	for {
		key, ok, err := d.r.NextKey()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++

		raw, err := d.r.NextValue()
		if err != nil {
			return n, err
		}

		idx, found := fields.byName[key]
		if !found {
			continue
		}
		if err := decodeValue(dst.Field(idx), raw); err != nil {
			return n, err
		}
	}
}

func (d *Decoder) decodeMap(dst reflect.Value) (int, error) {
	t := dst.Type()
	if t.Key().Kind() != reflect.String {
		return 0, ErrAmbiguousType
	}

	if dst.IsNil() {
		dst.Set(reflect.MakeMap(t))
	}

	n := 0
	for {
		key, ok, err := d.r.NextKey()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++

		raw, err := d.r.NextValue()
		if err != nil {
			return n, err
		}

		mv := reflect.New(t.Elem()).Elem()
		if err := decodeValue(mv, raw); err != nil {
			return n, err
		}
		dst.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), mv)
	}
}

// decodeValue stores one raw field value into a target value, unfolding
// it and, for slice targets, splitting it into comma-separated items.
func decodeValue(fv reflect.Value, raw string) error {
	fv = allocIndirect(fv)

	if u, ok := asTextUnmarshaler(fv); ok {
		return u.UnmarshalText([]byte(control.Unfold(raw)))
	}

	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 {
		items := control.SplitList(control.Unfold(raw))
		out := reflect.MakeSlice(fv.Type(), len(items), len(items))
		for i, item := range items {
			if err := setString(out.Index(i), item); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil
	}

	return setString(fv, control.Unfold(raw))
}

// setString stores a plain string into a string-kind or
// TextUnmarshaler target.
func setString(fv reflect.Value, s string) error {
	fv = allocIndirect(fv)
	if u, ok := asTextUnmarshaler(fv); ok {
		return u.UnmarshalText([]byte(s))
	}
	if fv.Kind() == reflect.String {
		fv.SetString(s)
		return nil
	}
	return ErrAmbiguousType
}

// allocIndirect follows pointers to the pointed-to value, allocating as
// needed.
func allocIndirect(fv reflect.Value) reflect.Value {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	return fv
}

func asTextUnmarshaler(fv reflect.Value) (encoding.TextUnmarshaler, bool) {
	if fv.CanAddr() {
		if u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u, true
		}
	}
	if fv.CanInterface() {
		if u, ok := fv.Interface().(encoding.TextUnmarshaler); ok {
			return u, true
		}
	}
	return nil, false
}

// validRecordType reports whether t can hold one decoded record.
func validRecordType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	default:
		return false
	}
}

// hasBindableFields reports whether t is a struct with at least one
// bindable field.
func hasBindableFields(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && len(typeFields(t).list) > 0
}
