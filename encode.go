package deb822

import (
	"bytes"
	"encoding"
	"io"
	"reflect"
	"sort"

	"github.com/deb822/deb822/control"
)

// Marshal encodes v into control format.
//
// The allowed values are a struct, a map with string-kind keys, or a
// slice of those (records separated by blank lines). Field values must
// be strings, named string types, pointers to those (nil writes
// nothing), slices of those (comma-separated lists; an empty or nil
// slice writes nothing), or types implementing encoding.TextMarshaler.
// Anything else returns an UnsupportedTypeError: the format has no
// representation for booleans, numbers or nested records.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// An Encoder writes control-format records to an output stream.
// Successive Encode calls append further records; the Encoder writes the
// separating blank line between them. Not safe for concurrent use.
type Encoder struct {
	w             io.Writer
	wrapLongLines bool
	wroteRecord   bool
}

// NewEncoder returns a new Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetWrapLongLines causes continuation lines longer than 80 columns to
// be wrapped on word boundaries. The first physical line of a field is
// never wrapped.
func (e *Encoder) SetWrapLongLines(wrap bool) {
	e.wrapLongLines = wrap
}

// Encode writes the control-format encoding of v to the stream. See
// Marshal for the supported shapes.
func (e *Encoder) Encode(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return &UnsupportedTypeError{Type: rv.Type()}
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}

	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		return e.encodeRecord(rv)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			for elem.Kind() == reflect.Pointer {
				if elem.IsNil() {
					return &UnsupportedTypeError{Type: elem.Type()}
				}
				elem = elem.Elem()
			}
			if k := elem.Kind(); k != reflect.Struct && k != reflect.Map {
				return &UnsupportedTypeError{Type: elem.Type()}
			}
			if err := e.encodeRecord(elem); err != nil {
				return err
			}
		}
		return nil
	default:
		return &UnsupportedTypeError{Type: rv.Type()}
	}
}

func (e *Encoder) encodeRecord(rv reflect.Value) error {
	if e.wroteRecord {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return &control.WriteError{Err: err}
		}
	}
	e.wroteRecord = true

	rw := &control.RecordWriter{W: e.w, WrapLongLines: e.wrapLongLines}

	if rv.Kind() == reflect.Struct {
		fields := typeFields(rv.Type())
		for _, f := range fields.list {
			if err := encodeField(rw, f.name, rv.Field(f.index)); err != nil {
				return err
			}
		}
		return nil
	}

	// Map record. Go map iteration order is randomized; sort the keys so
	// the output is deterministic.
	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return &UnsupportedTypeError{Type: t.Key()}
	}
	keys := make([]string, 0, rv.Len())
	for _, kv := range rv.MapKeys() {
		keys = append(keys, kv.String())
	}
	sort.Strings(keys)
	for _, key := range keys {
		fv := rv.MapIndex(reflect.ValueOf(key).Convert(t.Key()))
		if err := encodeField(rw, key, fv); err != nil {
			return err
		}
	}
	return nil
}

// encodeField writes one field. Nil pointers write nothing: an absent
// optional field is omitted, not rendered as an empty value.
func encodeField(rw *control.RecordWriter, key string, fv reflect.Value) error {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	if text, ok, err := marshalText(fv); ok {
		if err != nil {
			return err
		}
		return rw.WriteField(key, text)
	}

	switch fv.Kind() {
	case reflect.String:
		return rw.WriteField(key, fv.String())
	case reflect.Slice, reflect.Array:
		items := make([]string, fv.Len())
		for i := range items {
			item, err := fieldItem(fv.Index(i))
			if err != nil {
				return err
			}
			items[i] = item
		}
		return rw.WriteList(key, items)
	default:
		return &UnsupportedTypeError{Type: fv.Type()}
	}
}

// fieldItem renders one list element as text.
func fieldItem(ev reflect.Value) (string, error) {
	for ev.Kind() == reflect.Pointer || ev.Kind() == reflect.Interface {
		if ev.IsNil() {
			return "", &UnsupportedTypeError{Type: ev.Type()}
		}
		ev = ev.Elem()
	}
	if text, ok, err := marshalText(ev); ok {
		return text, err
	}
	if ev.Kind() == reflect.String {
		return ev.String(), nil
	}
	return "", &UnsupportedTypeError{Type: ev.Type()}
}

// marshalText reports whether fv implements encoding.TextMarshaler and,
// if so, returns its text form.
func marshalText(fv reflect.Value) (string, bool, error) {
	var tm encoding.TextMarshaler
	if m, ok := fv.Interface().(encoding.TextMarshaler); ok {
		tm = m
	} else if fv.CanAddr() {
		if m, ok := fv.Addr().Interface().(encoding.TextMarshaler); ok {
			tm = m
		}
	}
	if tm == nil {
		return "", false, nil
	}
	text, err := tm.MarshalText()
	return string(text), true, err
}
