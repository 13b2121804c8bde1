package cv

import (
	"github.com/nfrr/confval/go-confval/convert"
)

// The accessor families report failures from the shared taxonomy
// defined by the convert package.
var (
	ErrTypeMismatch   = convert.ErrTypeMismatch
	ErrOutOfRange     = convert.ErrOutOfRange
	ErrFractionalLoss = convert.ErrFractionalLoss
	ErrParse          = convert.ErrParse
	ErrKeyNotFound    = convert.ErrKeyNotFound
)
