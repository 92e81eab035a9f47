package deb822

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct field tag key read by this package.
const TagName = "deb822"

type structField struct {
	name  string
	index int
}

type structFields struct {
	list   []structField
	byName map[string]int
}

var fieldCache sync.Map // reflect.Type -> *structFields

// typeFields returns the bindable fields of a struct type: declaration
// order plus a wire-name index. Unexported fields and fields tagged "-"
// are excluded. The field name on the wire is the tag value, or the Go
// field name when untagged.
func typeFields(t reflect.Type) *structFields {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*structFields)
	}

	fields := &structFields{byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields.list = append(fields.list, structField{name: name, index: i})
		fields.byName[name] = i
	}

	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.(*structFields)
}
