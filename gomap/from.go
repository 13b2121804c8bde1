package gomap

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/nfrr/confval/go-confval/cv"
	"github.com/nfrr/confval/go-confval/debug"
)

// From builds a value tree from a native Go value. Struct fields
// follow their `cv` tags, map keys are emitted in sorted order, and
// []byte becomes a string. Pointer cycles are an error.
func From(x any, opts ...Option) (*cv.Value, error) {
	o := buildOptions(opts)
	root := cv.NewIn(o.alloc)
	m := &marshaler{visited: map[uintptr]string{}}
	if err := m.value(reflect.ValueOf(x), root, ""); err != nil {
		if debug.Gomap() {
			debug.Logf("gomap: From %T: %v\n", x, err)
		}
		return nil, err
	}
	return root, nil
}

type marshaler struct {
	// visited maps pointer addresses on the current descent path to
	// the field path where they were first seen.
	visited map[uintptr]string
}

func (m *marshaler) value(rv reflect.Value, dst *cv.Value, path string) error {
	if !rv.IsValid() {
		dst.SetNull()
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			dst.SetNull()
			return nil
		}
		addr := rv.Pointer()
		if prev, ok := m.visited[addr]; ok {
			return &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("circular reference, first seen at %q", prev),
			}
		}
		m.visited[addr] = path
		defer delete(m.visited, addr)
		return m.value(rv.Elem(), dst, path)
	case reflect.Interface:
		if rv.IsNil() {
			dst.SetNull()
			return nil
		}
		return m.value(rv.Elem(), dst, path)
	case reflect.Bool:
		dst.SetBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.SetInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		dst.SetInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(rv.Float())
	case reflect.String:
		dst.SetString(rv.String())
	case reflect.Slice, reflect.Array:
		return m.sequence(rv, dst, path)
	case reflect.Map:
		return m.sortedMap(rv, dst, path)
	case reflect.Struct:
		dst.SetObject()
		return m.structFields(rv, dst, path)
	default:
		return &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported type %s", rv.Type()),
		}
	}
	return nil
}

func (m *marshaler) sequence(rv reflect.Value, dst *cv.Value, path string) error {
	if rv.Kind() == reflect.Slice {
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			dst.SetString(string(rv.Bytes()))
			return nil
		}
		if rv.IsNil() {
			dst.SetNull()
			return nil
		}
	}
	dst.SetArray()
	arr, _ := dst.AsArray()
	for i := 0; i < rv.Len(); i++ {
		if err := m.value(rv.Index(i), arr.Append(), elemPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaler) sortedMap(rv reflect.Value, dst *cv.Value, path string) error {
	keyType := rv.Type().Key()
	if keyType.Kind() != reflect.String {
		return &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported map key type %s", keyType),
		}
	}
	if rv.IsNil() {
		dst.SetNull()
		return nil
	}
	dst.SetObject()
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	slices.Sort(keys)
	for _, k := range keys {
		elem := rv.MapIndex(reflect.ValueOf(k).Convert(keyType))
		if err := m.value(elem, dst.Index(k), fieldPath(path, k)); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaler) structFields(rv reflect.Value, dst *cv.Value, path string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("cv") == "" {
			if err := m.structFields(rv.Field(i), dst, path); err != nil {
				return err
			}
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		fv := rv.Field(i)
		if tag.omitEmpty && fv.IsZero() {
			continue
		}
		if err := m.value(fv, dst.Index(tag.name), fieldPath(path, tag.name)); err != nil {
			return err
		}
	}
	return nil
}
