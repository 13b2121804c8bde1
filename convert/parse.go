package convert

import (
	"fmt"
	"strconv"
)

// Parse parses a complete numeric (or boolean) literal from s into T.
// The whole input must be consumed: trailing characters, malformed
// input, and literals outside T's range all fail with ErrParse.
// Integer parsing is base 10 and locale independent.
func Parse[T Arithmetic](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](b), nil
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](float32(f)), nil
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](f), nil
	case int:
		i, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](int(i)), nil
	case int8:
		i, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](int8(i)), nil
	case int16:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](int16(i)), nil
	case int32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](int32(i)), nil
	case int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](i), nil
	case uint:
		u, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](uint(u)), nil
	case uint8:
		u, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](uint8(u)), nil
	case uint16:
		u, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](uint16(u)), nil
	case uint32:
		u, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](uint32(u)), nil
	case uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, parseErr(s)
		}
		return anyTo[T](u), nil
	}
	return zero, ErrTypeMismatch
}

func parseErr(s string) error {
	return fmt.Errorf("%q: %w", s, ErrParse)
}
