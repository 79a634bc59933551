package baseconv

import "github.com/zeebo/errs"

var (
	Error = errs.Class("baseconv")

	// ErrConfig marks charset or block configuration mismatches. It is
	// surfaced at construction time, never during a conversion.
	ErrConfig = errs.Class("baseconv: configuration")
)
