package radix

import "github.com/zeebo/errs"

var (
	Error = errs.Class("radix")

	// ErrInputType marks values the coercion layer cannot represent:
	// unsupported Go types, negative values without signed mode, and
	// non-finite or non-integral floats where a number is required.
	ErrInputType = errs.Class("radix: input type")
)
