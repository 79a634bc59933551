package basephi

import (
	inf "gopkg.in/inf.v0"
)

// Arith is the decimal arithmetic the codec runs on. Precision management is
// orthogonal to the conversion algorithm, so it is injected rather than
// owned.
type Arith interface {
	Add(x, y *inf.Dec) *inf.Dec
	Sub(x, y *inf.Dec) *inf.Dec
	Cmp(x, y *inf.Dec) int

	// MulInt multiplies x by a machine integer.
	MulInt(x *inf.Dec, n int64) *inf.Dec

	// Round rounds x to the given number of fractional digits, half even.
	Round(x *inf.Dec, digits int32) *inf.Dec

	// IntString renders x rounded to the nearest integer.
	IntString(x *inf.Dec) string
}

// decArith is the default provider over inf.Dec fixed point decimals.
// Addition and subtraction of fixed scale decimals are exact, so the only
// precision loss in the codec is the finite approximation of φ itself.
type decArith struct{}

// NewArith returns the default decimal arithmetic provider.
func NewArith() Arith {
	return decArith{}
}

func (decArith) Add(x, y *inf.Dec) *inf.Dec {
	return new(inf.Dec).Add(x, y)
}

func (decArith) Sub(x, y *inf.Dec) *inf.Dec {
	return new(inf.Dec).Sub(x, y)
}

func (decArith) Cmp(x, y *inf.Dec) int {
	return x.Cmp(y)
}

func (decArith) MulInt(x *inf.Dec, n int64) *inf.Dec {
	return new(inf.Dec).Mul(x, inf.NewDec(n, 0))
}

func (decArith) Round(x *inf.Dec, digits int32) *inf.Dec {
	return new(inf.Dec).Round(x, inf.Scale(digits), inf.RoundHalfEven)
}

func (decArith) IntString(x *inf.Dec) string {
	return new(inf.Dec).Round(x, 0, inf.RoundHalfEven).String()
}
