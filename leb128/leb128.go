package leb128

import (
	"math/big"

	"github.com/calebcase/radix/baseconv"
)

// Schema selects between unsigned and signed (two's complement style)
// encoding.
type Schema struct {
	Signed bool
}

// Codec is a configured LEB128 transform. It keeps no per call state, so a
// single instance is safe for concurrent use.
type Codec struct {
	schema Schema

	dec *baseconv.Codec // radix 10 magnitude bridge
	hex *baseconv.Codec // base 16 display surface
}

var (
	low7     = big.NewInt(0x7F)
	minusOne = big.NewInt(-1)
)

// New returns a codec for the schema.
func New(schema Schema) (c *Codec, err error) {
	defer Error.WrapP(&err)

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

	cs16, err := baseconv.NewCharset(baseconv.StdBase16)
	if err != nil {
		return nil, err
	}

	hex, err := baseconv.NewCodec(baseconv.Schema{
		Radix:          16,
		Charset:        cs16,
		BytesPerBlock:  1,
		DigitsPerBlock: 2,
	})
	if err != nil {
		return nil, err
	}

	return &Codec{
		schema: schema,
		dec:    dec,
		hex:    hex,
	}, nil
}

// Encode converts a sign separated magnitude into its LEB128 byte sequence.
// A negative magnitude requires signed mode.
func (c *Codec) Encode(magnitude []byte, negative bool) (data []byte, err error) {
	defer Error.WrapP(&err)

	if negative && !c.schema.Signed {
		return nil, ErrInputType.New("negative value in unsigned mode")
	}

	v, err := c.bridge(magnitude)
	if err != nil {
		return nil, err
	}
	if negative {
		v.Neg(v)
	}

	if v.Sign() == 0 {
		return []byte{0x00}, nil
	}

	// big.Int And and Rsh treat negative values as infinite two's
	// complement, which is exactly the sign extension LEB128 wants.
	for {
		b := byte(new(big.Int).And(v, low7).Uint64())
		v.Rsh(v, 7)

		if c.done(v, b) {
			data = append(data, b)

			return data, nil
		}

		data = append(data, b|0x80)
	}
}

func (c *Codec) done(v *big.Int, b byte) bool {
	if !c.schema.Signed {
		return v.Sign() == 0
	}

	return (v.Sign() == 0 && b&0x40 == 0) ||
		(v.Cmp(minusOne) == 0 && b&0x40 != 0)
}

// Decode converts a LEB128 byte sequence back into a sign separated
// magnitude.
func (c *Codec) Decode(data []byte) (magnitude []byte, negative bool, err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return nil, false, ErrInputType.New("empty input")
	}

	v := new(big.Int)
	shift := uint(0)
	var last byte

	for i, b := range data {
		group := big.NewInt(int64(b & 0x7F))
		v.Or(v, group.Lsh(group, shift))
		shift += 7
		last = b

		if b&0x80 == 0 {
			if i != len(data)-1 {
				return nil, false, ErrInputType.New("continuation ended before final byte")
			}

			break
		}
		if i == len(data)-1 {
			return nil, false, ErrInputType.New("truncated sequence")
		}
	}

	if c.schema.Signed && last&0x40 != 0 {
		ext := new(big.Int).Lsh(big.NewInt(1), shift)
		v.Sub(v, ext)
	}

	negative = v.Sign() < 0
	magnitude = new(big.Int).Abs(v).Bytes()
	if len(magnitude) == 0 {
		magnitude = []byte{0x00}
	}

	return magnitude, negative, nil
}

// EncodeHex is the hexadecimal display surface: the LEB128 bytes rendered
// through a base 16 converter. It has no effect on the encoding itself.
func (c *Codec) EncodeHex(magnitude []byte, negative bool) (out string, err error) {
	defer Error.WrapP(&err)

	data, err := c.Encode(magnitude, negative)
	if err != nil {
		return "", err
	}

	return c.hex.Encode(data)
}

// DecodeHex parses the hexadecimal surface back into a sign separated
// magnitude.
func (c *Codec) DecodeHex(input string) (magnitude []byte, negative bool, err error) {
	defer Error.WrapP(&err)

	data, err := c.hex.Decode(input)
	if err != nil {
		return nil, false, err
	}

	return c.Decode(data)
}

// bridge reconstitutes a big-endian magnitude as an arbitrary precision
// integer via the decimal base converter.
func (c *Codec) bridge(magnitude []byte) (*big.Int, error) {
	s, err := c.dec.Encode(magnitude)
	if err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, Error.New("invalid decimal bridge %q", s)
	}

	return v, nil
}
