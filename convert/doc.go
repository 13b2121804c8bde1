// Package convert implements the numeric conversion rules shared by the
// cv accessors.
//
// The converters are pure functions from a source representation (int64,
// float64, bool, or text) to any builtin arithmetic target type. Each
// either succeeds or reports one of the closed set of failure reasons:
//
//   - ErrTypeMismatch: requested shape incompatible with the source
//   - ErrOutOfRange: value outside the target's representable range,
//     or a non-finite float source
//   - ErrFractionalLoss: float to integer would drop a fraction
//   - ErrParse: text is not a complete numeric literal
//   - ErrKeyNotFound: keyed lookup miss (used by cv.Value.At)
//
// Failures wrap the sentinel, so callers match with errors.Is:
//
//	n, err := convert.FromFloat64[int32](3.5)
//	if errors.Is(err, convert.ErrFractionalLoss) { ... }
package convert
