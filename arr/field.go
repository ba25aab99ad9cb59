package arr

import (
	"reflect"
	"strings"
	"sync"
)

// fieldSet is the per-type lookup table used by [Field]. It is built once
// per type and names fields the way [PlaceAll] does.
type fieldSet struct {
	byKey  map[string][]int
	folded map[string][]int
}

var fieldCache sync.Map // reflect.Type → *fieldSet

func structFields(t reflect.Type) *fieldSet {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.(*fieldSet)
	}
	fs := &fieldSet{
		byKey:  make(map[string][]int),
		folded: make(map[string][]int),
	}
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		key := f.Name
		if tag, ok := f.Tag.Lookup(tagName); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}
		fs.byKey[key] = f.Index
		if k := strings.ToLower(key); fs.folded[k] == nil {
			fs.folded[k] = f.Index
		}
	}
	actual, _ := fieldCache.LoadOrStore(t, fs)
	return actual.(*fieldSet)
}

func lookupField(v reflect.Value, key string) (reflect.Value, bool) {
	fs := structFields(v.Type())
	index, ok := fs.byKey[key]
	if !ok {
		index, ok = fs.folded[strings.ToLower(key)]
	}
	if !ok {
		return reflect.Value{}, false
	}
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

// Field reads the value at the dot-notation path from a struct, a
// pointer to struct or a string-keyed map. Struct segments resolve the
// same way [PlaceAll] resolves keys: the `place` tag or the field name,
// exactly and then case-insensitively. The second result reports whether
// the path exists.
//
//	Field(order, "customer.name")   // → "Ada", true
//	Field(order, "customer.phone")  // → nil, false
func Field(v any, path string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		if !Has(m, path) {
			return nil, false
		}
		return Get(m, path), true
	}

	rv := reflect.ValueOf(v)
	for {
		seg, rest, nested := strings.Cut(path, ".")
		rv = indirect(rv)
		if !rv.IsValid() {
			return nil, false
		}

		var next reflect.Value
		switch rv.Kind() {
		case reflect.Struct:
			f, ok := lookupField(rv, seg)
			if !ok {
				return nil, false
			}
			next = f
		case reflect.Map:
			if !isStringMap(rv.Type()) {
				return nil, false
			}
			next = rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
			if !next.IsValid() {
				return nil, false
			}
		default:
			return nil, false
		}

		if !nested {
			return plain(next), true
		}
		rv, path = next, rest
	}
}
