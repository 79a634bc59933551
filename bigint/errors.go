package bigint

import "github.com/zeebo/errs"

var Error = errs.Class("bigint")
