package basephi

import "github.com/zeebo/errs"

var (
	Error = errs.Class("basephi")

	// ErrConfig marks invalid codec configuration.
	ErrConfig = errs.Class("basephi: configuration")

	// ErrCharset marks decode input outside the two symbol charset.
	ErrCharset = errs.Class("basephi: charset")
)
