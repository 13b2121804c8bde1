package convert

import "errors"

// Conversion failure reasons. Every error produced by this module's
// converters and accessors matches exactly one of these with errors.Is.
var (
	// ErrTypeMismatch reports that the requested shape is incompatible
	// with the stored kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange reports a numeric value outside the target's
	// representable range, or a non-finite float source.
	ErrOutOfRange = errors.New("out of range")

	// ErrFractionalLoss reports a float to integer conversion that would
	// discard a nonzero fractional part.
	ErrFractionalLoss = errors.New("fractional loss")

	// ErrParse reports text that does not parse as a complete numeric
	// literal.
	ErrParse = errors.New("parse error")

	// ErrKeyNotFound reports a keyed lookup for an absent key.
	ErrKeyNotFound = errors.New("key not found")
)
