package bigint

import "math/big"

// MaxDivisor is the largest small divisor accepted by DivMod. Every radix the
// converters support fits well below it.
const MaxDivisor = 1 << 16

// FromBytes interprets data as an unsigned magnitude. The byte order is
// big-endian unless littleEndian is set, in which case the bytes are reversed
// before interpretation.
func FromBytes(data []byte, littleEndian bool) *big.Int {
	if littleEndian {
		r := make([]byte, len(data))
		for i, b := range data {
			r[len(data)-1-i] = b
		}
		data = r
	}

	return new(big.Int).SetBytes(data)
}

// ToBytes renders n as a fixed width big-endian byte group, left padded with
// zero bytes to exactly byteLen.
func ToBytes(n *big.Int, byteLen int) (data []byte, err error) {
	defer Error.WrapP(&err)

	if n.Sign() < 0 {
		return nil, Error.New("negative magnitude")
	}

	b := n.Bytes()
	if len(b) > byteLen {
		return nil, Error.New("value needs %d bytes, group holds %d", len(b), byteLen)
	}

	data = make([]byte, byteLen)
	copy(data[byteLen-len(b):], b)

	return data, nil
}

// DivMod divides n by a small positive divisor returning the quotient and
// remainder. The divisor must fit in a machine word (at most MaxDivisor).
func DivMod(n *big.Int, divisor int64) (q *big.Int, rem int64, err error) {
	defer Error.WrapP(&err)

	if divisor < 1 || divisor > MaxDivisor {
		return nil, 0, Error.New("divisor %d out of range [1, %d]", divisor, MaxDivisor)
	}
	if n.Sign() < 0 {
		return nil, 0, Error.New("negative magnitude")
	}

	q = new(big.Int)
	m := new(big.Int)
	q.DivMod(n, big.NewInt(divisor), m)

	return q, m.Int64(), nil
}

// Pow returns radix raised to the non-negative exponent exp.
func Pow(radix int64, exp int) *big.Int {
	if exp < 0 {
		exp = 0
	}

	return new(big.Int).Exp(big.NewInt(radix), big.NewInt(int64(exp)), nil)
}
