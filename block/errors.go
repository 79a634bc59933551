package block

import "github.com/zeebo/errs"

var (
	Error = errs.Class("block")

	// ErrConfig marks unsupported radix configuration. It is surfaced at
	// construction time and never during conversion.
	ErrConfig = errs.Class("block: configuration")
)
