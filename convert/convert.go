package convert

import "math"

// Integer is the closed set of builtin integer types accepted by the
// converters.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// Float is the closed set of builtin floating-point types accepted by
// the converters.
type Float interface {
	float32 | float64
}

// Arithmetic constrains conversion targets to bool plus the builtin
// numeric types.
type Arithmetic interface {
	Integer | Float | bool
}

// Exact float64 bounds of the 64-bit integer ranges. 2^63 and 2^64 are
// powers of two, so both constants are exact; a float at or above the
// upper bound does not fit the integer type.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
	maxUintFloat  = 18446744073709551616.0
)

// FromInt64 converts a 64-bit signed integer to T. Bool targets test
// src != 0, float targets always succeed, and integer targets are
// range-checked against T.
func FromInt64[T Arithmetic](src int64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return anyTo[T](src != 0), nil
	case float32:
		return anyTo[T](float32(src)), nil
	case float64:
		return anyTo[T](float64(src)), nil
	case int:
		if src < math.MinInt || src > math.MaxInt {
			return zero, ErrOutOfRange
		}
		return anyTo[T](int(src)), nil
	case int8:
		if src < math.MinInt8 || src > math.MaxInt8 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](int8(src)), nil
	case int16:
		if src < math.MinInt16 || src > math.MaxInt16 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](int16(src)), nil
	case int32:
		if src < math.MinInt32 || src > math.MaxInt32 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](int32(src)), nil
	case int64:
		return anyTo[T](src), nil
	case uint:
		if src < 0 || uint64(src) > math.MaxUint {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint(src)), nil
	case uint8:
		if src < 0 || src > math.MaxUint8 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint8(src)), nil
	case uint16:
		if src < 0 || src > math.MaxUint16 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint16(src)), nil
	case uint32:
		if src < 0 || src > math.MaxUint32 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint32(src)), nil
	case uint64:
		if src < 0 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint64(src)), nil
	}
	return zero, ErrTypeMismatch
}

// FromFloat64 converts a 64-bit float to T. NaN and infinities always
// fail with ErrOutOfRange. Float targets are checked against T's finite
// range. Integer and bool targets require the value to have no
// fractional part (else ErrFractionalLoss) and to lie within T's range.
func FromFloat64[T Arithmetic](src float64) (T, error) {
	var zero T
	if math.IsNaN(src) || math.IsInf(src, 0) {
		return zero, ErrOutOfRange
	}
	switch any(zero).(type) {
	case float64:
		return anyTo[T](src), nil
	case float32:
		if src < -math.MaxFloat32 || src > math.MaxFloat32 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](float32(src)), nil
	}

	truncated := math.Trunc(src)
	if truncated != src {
		return zero, ErrFractionalLoss
	}
	switch any(zero).(type) {
	case bool:
		if truncated < 0 || truncated > 1 {
			return zero, ErrOutOfRange
		}
		return anyTo[T](truncated == 1), nil
	case uint:
		if truncated < 0 || truncated >= maxUintFloat {
			return zero, ErrOutOfRange
		}
		u := uint64(truncated)
		if u > math.MaxUint {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint(u)), nil
	case uint64:
		if truncated < 0 || truncated >= maxUintFloat {
			return zero, ErrOutOfRange
		}
		return anyTo[T](uint64(truncated)), nil
	}
	if truncated < minInt64Float || truncated >= maxInt64Float {
		return zero, ErrOutOfRange
	}
	return FromInt64[T](int64(truncated))
}

// FromBool converts a bool to T: identity for bool targets, 0/1 for
// integer targets, 0.0/1.0 for float targets. It never fails.
func FromBool[T Arithmetic](src bool) (T, error) {
	if src {
		return FromInt64[T](1)
	}
	return FromInt64[T](0)
}

// anyTo moves a concrete value into the type parameter. The callers
// only ever pass a value whose dynamic type is exactly T.
func anyTo[T Arithmetic](x any) T {
	return x.(T)
}
