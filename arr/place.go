package arr

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag consulted for field names, e.g. `place:"colour"`.
const tagName = "place"

// PlaceAll copies the keys of every source onto target, in order.
//
// target must be a non-nil pointer to a struct (pointers to pointers are
// followed and allocated when nil) or a map with string keys. Each source
// is a map with string keys, a struct or pointer to struct (exported
// fields only), or a slice/array of those. Nil sources are skipped.
//
// Struct targets match a key against the `place:"name"` tag or the field
// name, exactly first and then case-insensitively. Keys with no matching
// field are ignored. Map targets receive every key exactly as given, so
// "a.b" lands as the literal key "a.b". Sources are never modified.
//
// A key whose value is nil zeroes the field. Nested maps are copied into
// a fresh map and nested structs are assigned, never flattened onto the
// target. Numbers convert between numeric kinds; any other mismatch is
// rejected with [ErrIncompatibleValue].
func PlaceAll(target any, sources ...any) error {
	dst, err := placeTarget(reflect.ValueOf(target))
	if err != nil {
		return err
	}
	for _, src := range sources {
		if err := placeSource(dst, reflect.ValueOf(src)); err != nil {
			return err
		}
	}
	return nil
}

// placeTarget resolves target to a settable struct or a non-nil
// string-keyed map.
func placeTarget(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrInvalidTarget
	}
	if v.Kind() == reflect.Map {
		if !isStringMap(v.Type()) || v.IsNil() {
			return reflect.Value{}, ErrInvalidTarget
		}
		return v, nil
	}
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}
	v = v.Elem()
	for {
		switch v.Kind() {
		case reflect.Pointer:
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, ErrInvalidTarget
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrInvalidTarget
			}
			v = v.Elem()
		case reflect.Struct:
			if !v.CanSet() {
				return reflect.Value{}, ErrInvalidTarget
			}
			return v, nil
		case reflect.Map:
			if !isStringMap(v.Type()) {
				return reflect.Value{}, ErrInvalidTarget
			}
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, ErrInvalidTarget
				}
				v.Set(reflect.MakeMap(v.Type()))
			}
			return v, nil
		default:
			return reflect.Value{}, ErrInvalidTarget
		}
	}
}

func placeSource(dst, src reflect.Value) error {
	src = indirect(src)
	if !src.IsValid() {
		return nil
	}
	switch src.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range src.Len() {
			if err := placeSource(dst, src.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if !isStringMap(src.Type()) {
			return fmt.Errorf("%w: %s", ErrInvalidSource, src.Type())
		}
	case reflect.Struct:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidSource, src.Type())
	}

	if dst.Kind() == reflect.Map {
		return placeMap(dst, src)
	}
	return decode(src.Interface(), dst.Addr().Interface())
}

// placeMap decodes src into a fresh map of the target's type and copies
// its entries over one by one, keys untouched.
func placeMap(dst, src reflect.Value) error {
	tmp := reflect.New(dst.Type())
	if err := decode(src.Interface(), tmp.Interface()); err != nil {
		return err
	}
	iter := tmp.Elem().MapRange()
	for iter.Next() {
		dst.SetMapIndex(iter.Key(), iter.Value())
	}
	return nil
}

func decode(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    tagName,
		ZeroFields: true,
		Result:     result,
	})
	if err != nil {
		return fmt.Errorf("arr: decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("%w: %w", ErrIncompatibleValue, err)
	}
	return nil
}

func isStringMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func plain(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
