package gomap

import (
	"fmt"
	"reflect"

	"github.com/nfrr/confval/go-confval/cv"
)

// To walks a value tree into out, which must be a non-nil pointer.
// Scalar fields are filled through the cv coercion rules, so numeric
// strings satisfy numeric fields and widths are range-checked.
func To(v *cv.Value, out any) error {
	if out == nil {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{
			Message: fmt.Sprintf("destination must be a non-nil pointer, got %T", out),
		}
	}
	return unmarshalValue(v, rv.Elem(), "")
}

func unmarshalValue(v *cv.Value, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if v.IsNull() {
			rv.SetZero()
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(v, rv.Elem(), path)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("unsupported destination type %s", rv.Type()),
			}
		}
		if v.IsNull() {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(ToAny(v)))
		return nil
	case reflect.Bool:
		b, err := cv.Coerce[bool](v)
		if err != nil {
			return coerceErr(path, err)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := cv.Coerce[int64](v)
		if err != nil {
			return coerceErr(path, err)
		}
		if rv.OverflowInt(i) {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%d overflows %s", i, rv.Type()),
				Err:       cv.ErrOutOfRange,
			}
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := cv.Coerce[uint64](v)
		if err != nil {
			return coerceErr(path, err)
		}
		if rv.OverflowUint(u) {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%d overflows %s", u, rv.Type()),
				Err:       cv.ErrOutOfRange,
			}
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := cv.Coerce[float64](v)
		if err != nil {
			return coerceErr(path, err)
		}
		if rv.OverflowFloat(f) {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%v overflows %s", f, rv.Type()),
				Err:       cv.ErrOutOfRange,
			}
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		s, err := v.AsString()
		if err != nil {
			return coerceErr(path, err)
		}
		rv.SetString(s)
		return nil
	case reflect.Slice:
		return unmarshalSlice(v, rv, path)
	case reflect.Array:
		return unmarshalArray(v, rv, path)
	case reflect.Map:
		return unmarshalMap(v, rv, path)
	case reflect.Struct:
		return unmarshalStruct(v, rv, path)
	default:
		return &UnmarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported destination type %s", rv.Type()),
		}
	}
}

func unmarshalSlice(v *cv.Value, rv reflect.Value, path string) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		s, err := v.AsString()
		if err != nil {
			return coerceErr(path, err)
		}
		rv.SetBytes([]byte(s))
		return nil
	}
	if v.IsNull() {
		rv.SetZero()
		return nil
	}
	arr, err := v.AsArray()
	if err != nil {
		return coerceErr(path, err)
	}
	res := reflect.MakeSlice(rv.Type(), arr.Len(), arr.Len())
	for i := 0; i < arr.Len(); i++ {
		elem, _ := arr.At(i)
		if err := unmarshalValue(elem, res.Index(i), elemPath(path, i)); err != nil {
			return err
		}
	}
	rv.Set(res)
	return nil
}

func unmarshalArray(v *cv.Value, rv reflect.Value, path string) error {
	arr, err := v.AsArray()
	if err != nil {
		return coerceErr(path, err)
	}
	if arr.Len() != rv.Len() {
		return &UnmarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("length %d does not fit [%d]%s", arr.Len(), rv.Len(), rv.Type().Elem()),
		}
	}
	for i := 0; i < arr.Len(); i++ {
		elem, _ := arr.At(i)
		if err := unmarshalValue(elem, rv.Index(i), elemPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMap(v *cv.Value, rv reflect.Value, path string) error {
	keyType := rv.Type().Key()
	if keyType.Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported map key type %s", keyType),
		}
	}
	if v.IsNull() {
		rv.SetZero()
		return nil
	}
	obj, err := v.AsObject()
	if err != nil {
		return coerceErr(path, err)
	}
	res := reflect.MakeMapWithSize(rv.Type(), obj.Len())
	elemType := rv.Type().Elem()
	for i := 0; i < obj.Len(); i++ {
		e := obj.Entry(i)
		elem := reflect.New(elemType).Elem()
		if err := unmarshalValue(e.Value(), elem, fieldPath(path, e.Key())); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(e.Key()).Convert(keyType), elem)
	}
	rv.Set(res)
	return nil
}

func unmarshalStruct(v *cv.Value, rv reflect.Value, path string) error {
	if v.IsNull() {
		rv.SetZero()
		return nil
	}
	if !v.IsObject() {
		return coerceErr(path, fmt.Errorf("have %s, want object: %w", v.Kind(), cv.ErrTypeMismatch))
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("cv") == "" {
			if err := unmarshalStruct(v, rv.Field(i), path); err != nil {
				return err
			}
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		child := v.Find(tag.name)
		if child == nil {
			continue
		}
		if err := unmarshalValue(child, rv.Field(i), fieldPath(path, tag.name)); err != nil {
			return err
		}
	}
	return nil
}

func coerceErr(path string, err error) error {
	return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

// ToAny converts a value tree to plain Go data: nil, bool, int64,
// float64, string, []any, and map[string]any. Object entry order is
// not preserved.
func ToAny(v *cv.Value) any {
	switch v.Kind() {
	case cv.NullKind:
		return nil
	case cv.BoolKind:
		b, _ := v.AsBool()
		return b
	case cv.IntKind:
		i, _ := v.AsInt()
		return i
	case cv.FloatKind:
		f, _ := v.AsFloat()
		return f
	case cv.StringKind:
		s, _ := v.AsString()
		return s
	case cv.ArrayKind:
		arr, _ := v.AsArray()
		res := make([]any, arr.Len())
		for i := range res {
			elem, _ := arr.At(i)
			res[i] = ToAny(elem)
		}
		return res
	case cv.ObjectKind:
		obj, _ := v.AsObject()
		res := make(map[string]any, obj.Len())
		for i := 0; i < obj.Len(); i++ {
			e := obj.Entry(i)
			res[e.Key()] = ToAny(e.Value())
		}
		return res
	default:
		panic(fmt.Sprintf("unexpected kind %d", v.Kind()))
	}
}
