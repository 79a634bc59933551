package basephi

import (
	"math/big"
	"strings"

	inf "gopkg.in/inf.v0"

	"github.com/calebcase/radix/baseconv"
)

// DefaultPrecision is the decimal precision of the zero test that terminates
// the greedy reduction.
const DefaultPrecision = 50

// guardDigits is the extra working precision carried beyond the zero test so
// that rounding noise stays below it.
const guardDigits = 14

// Schema configures a base φ codec.
type Schema struct {
	// Precision is the number of decimal digits a remainder must vanish
	// to before it counts as zero. Defaults to DefaultPrecision.
	Precision int32
}

// Codec converts numbers (and byte sequences, via the radix 10 bridge) to
// and from base φ digit strings. Immutable after construction.
type Codec struct {
	schema Schema
	arith  Arith

	scale int32    // working scale: Precision + guard digits
	phi   *inf.Dec // φ at working scale
	one   *inf.Dec

	dec *baseconv.Codec // radix 10 byte bridge
}

// New returns a codec. A nil arith selects the default inf.Dec provider.
func New(schema Schema, arith Arith) (c *Codec, err error) {
	defer Error.WrapP(&err)

	if schema.Precision == 0 {
		schema.Precision = DefaultPrecision
	}
	if schema.Precision < 1 {
		return nil, ErrConfig.New("precision %d must be positive", schema.Precision)
	}

	if arith == nil {
		arith = NewArith()
	}

	cs10, err := baseconv.NewCharset(baseconv.StdBase10)
	if err != nil {
		return nil, err
	}

	dec, err := baseconv.NewCodec(baseconv.Schema{
		Radix:   10,
		Charset: cs10,
	})
	if err != nil {
		return nil, err
	}

	scale := schema.Precision + guardDigits

	return &Codec{
		schema: schema,
		arith:  arith,
		scale:  scale,
		phi:    phiDec(scale),
		one:    inf.NewDec(1, 0),
		dec:    dec,
	}, nil
}

// phiDec computes (1 + sqrt(5)) / 2 to the given decimal scale using an
// exact integer square root.
func phiDec(scale int32) *inf.Dec {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)

	five := new(big.Int).Mul(p, p)
	five.Mul(five, big.NewInt(5))

	u := new(big.Int).Sqrt(five)
	u.Add(u, p)
	u.Rsh(u, 1)

	return inf.NewDecBig(u, inf.Scale(scale))
}

// isZero reports whether x vanishes at the configured precision.
func (c *Codec) isZero(x *inf.Dec) bool {
	return c.arith.Round(x, c.schema.Precision).Sign() == 0
}

// EncodeDec encodes a decimal value. exact is false when the reduction had
// to stop at an approximation (precision underflow), which is a warning, not
// an error: the digit string is still the best representation at this
// precision.
func (c *Codec) EncodeDec(x *inf.Dec) (out string, exact bool, err error) {
	defer Error.WrapP(&err)

	negative := x.Sign() < 0
	n := new(inf.Dec).Set(x)
	if negative {
		n = c.arith.MulInt(n, -1)
	}

	if n.Sign() == 0 {
		return "0", true, nil
	}
	if c.arith.Cmp(n, c.one) == 0 {
		return sign(negative) + "1", true, nil
	}

	exps, exact := c.reduce(n)
	if len(exps) == 0 {
		// Below the working precision altogether.
		return "0", false, nil
	}

	return sign(negative) + render(exps), exact, nil
}

func sign(negative bool) string {
	if negative {
		return "-"
	}

	return ""
}

// reduce runs the greedy decomposition of a positive n into powers of φ,
// returning the recorded exponents in descending order. The recursion of the
// textbook formulation is flattened into a loop with a budget tied to the
// working precision and the magnitude of n.
func (c *Codec) reduce(n *inf.Dec) (exps []int, exact bool) {
	// Ascend to the smallest k with φ^k >= n.
	k := 1
	last, cur := c.one, c.phi
	for c.arith.Cmp(cur, n) < 0 {
		last, cur = cur, c.arith.Add(last, cur)
		k++
	}

	// Every descent lowers k, so the ladder is walked at most once from
	// its top down to where φ^k underflows the working scale.
	budget := k + int(c.scale)*16 + 64

	rem := n
	for {
		for c.arith.Cmp(cur, rem) > 0 {
			budget--
			if budget <= 0 || cur.Sign() <= 0 {
				return exps, false
			}

			last, cur = c.arith.Sub(cur, last), last
			k--
		}

		exps = append(exps, k)
		rem = c.arith.Sub(rem, cur)

		if c.isZero(rem) {
			return exps, true
		}

		budget--
		if budget <= 0 {
			return exps, false
		}
	}
}

// render builds the digit string for a descending exponent list: "1" at
// every recorded φ-power position, "0" elsewhere, radix point between
// position 0 and -1.
func render(exps []int) string {
	set := make(map[int]bool, len(exps))
	for _, e := range exps {
		set[e] = true
	}

	max := exps[0]
	if max < 0 {
		max = 0
	}
	min := exps[len(exps)-1]

	sb := &strings.Builder{}
	for e := max; e >= 0; e-- {
		sb.WriteByte(digit(set[e]))
	}

	if min < 0 {
		sb.WriteByte('.')
		for e := -1; e >= min; e-- {
			sb.WriteByte(digit(set[e]))
		}
	}

	return sb.String()
}

func digit(one bool) byte {
	if one {
		return '1'
	}

	return '0'
}

// DecodeDec decodes a base φ digit string back into a decimal value.
// Characters outside the two symbol charset are rejected.
func (c *Codec) DecodeDec(input string) (x *inf.Dec, err error) {
	defer Error.WrapP(&err)

	s := input
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	if s == "" {
		return nil, ErrCharset.New("empty digit string")
	}

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}

	for _, r := range intPart + fracPart {
		if r != '0' && r != '1' {
			return nil, ErrCharset.New("character %q not in charset %q", r, "01")
		}
	}

	sum := new(inf.Dec)

	// Integer part: φ^(L-1) ... φ^0, most significant first.
	L := len(intPart)
	if L > 0 {
		powers := make([]*inf.Dec, L)
		powers[0] = c.one
		if L > 1 {
			powers[1] = c.phi
		}
		for i := 2; i < L; i++ {
			powers[i] = c.arith.Add(powers[i-2], powers[i-1])
		}

		for i := 0; i < L; i++ {
			if intPart[i] == '1' {
				sum = c.arith.Add(sum, powers[L-1-i])
			}
		}
	}

	// Fractional part: continue the ladder below φ^0 with the inverse
	// recurrence φ^(e-1) = φ^(e+1) - φ^e.
	hi, lo := c.phi, c.one
	for i := 0; i < len(fracPart); i++ {
		next := c.arith.Sub(hi, lo)
		hi, lo = lo, next

		if fracPart[i] == '1' {
			sum = c.arith.Add(sum, next)
		}
	}

	if negative {
		sum = c.arith.MulInt(sum, -1)
	}

	return sum, nil
}

// EncodeBytes encodes a sign separated magnitude, bridging it through the
// radix 10 converter into a decimal integer first.
func (c *Codec) EncodeBytes(data []byte, negative bool) (out string, exact bool, err error) {
	defer Error.WrapP(&err)

	s, err := c.dec.Encode(data)
	if err != nil {
		return "", false, err
	}

	d := new(inf.Dec)
	if _, ok := d.SetString(s); !ok {
		return "", false, Error.New("invalid decimal bridge %q", s)
	}

	if negative {
		d = c.arith.MulInt(d, -1)
	}

	return c.EncodeDec(d)
}

// DecodeBytes decodes a base φ digit string, rounds to the nearest integer,
// and bridges it back to bytes through the radix 10 converter.
func (c *Codec) DecodeBytes(input string) (data []byte, negative bool, err error) {
	defer Error.WrapP(&err)

	x, err := c.DecodeDec(input)
	if err != nil {
		return nil, false, err
	}

	negative = x.Sign() < 0
	if negative {
		x = c.arith.MulInt(x, -1)
	}

	data, err = c.dec.Decode(c.arith.IntString(x))
	if err != nil {
		return nil, false, err
	}

	return data, negative, nil
}
