package leb128

import "github.com/zeebo/errs"

var (
	Error = errs.Class("leb128")

	// ErrInputType marks unsupported per call input, e.g. a negative value
	// in unsigned mode. No partial result is produced.
	ErrInputType = errs.Class("leb128: input type")
)
