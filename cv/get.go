package cv

import (
	"fmt"

	"github.com/nfrr/confval/go-confval/convert"
)

// Get converts the stored Int, Float, or Bool payload to T. Other kinds
// fail with ErrTypeMismatch; numeric failures carry the convert
// taxonomy (ErrOutOfRange, ErrFractionalLoss). Get never panics and the
// receiver is never modified.
//
// Container payloads are read through AsString, AsArray, and AsObject
// instead; Go strings are values, so AsString already hands out a copy,
// and deep container copies come from Clone.
func Get[T convert.Arithmetic](v *Value) (T, error) {
	switch v.kind {
	case IntKind:
		return convert.FromInt64[T](v.i)
	case FloatKind:
		return convert.FromFloat64[T](v.f)
	case BoolKind:
		return convert.FromBool[T](v.b)
	default:
		var zero T
		return zero, fmt.Errorf("cannot convert %s: %w", v.kind, ErrTypeMismatch)
	}
}

// MustGet is Get for callers that treat failure as a programming error:
// it panics with the underlying conversion error.
func MustGet[T convert.Arithmetic](v *Value) T {
	t, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return t
}

// GetTo writes the converted value through out. On failure out is left
// untouched.
func GetTo[T convert.Arithmetic](v *Value, out *T) error {
	t, err := Get[T](v)
	if err != nil {
		return err
	}
	*out = t
	return nil
}

// Coerce behaves like Get, except that when the normal converting path
// fails and the stored kind is String, the full string contents are
// parsed as a numeric literal and that outcome is returned. Any other
// failure propagates unchanged.
func Coerce[T convert.Arithmetic](v *Value) (T, error) {
	t, err := Get[T](v)
	if err == nil {
		return t, nil
	}
	if v.kind == StringKind {
		return convert.Parse[T](string(v.s))
	}
	var zero T
	return zero, err
}

// MustCoerce is Coerce with a panicking unwrap, like MustGet.
func MustCoerce[T convert.Arithmetic](v *Value) T {
	t, err := Coerce[T](v)
	if err != nil {
		panic(err)
	}
	return t
}
