package block

import "math/big"

// MinRadix and MaxRadix bound the radices with a fixed byte-to-digit ratio.
// Radix 10 inside the range is special cased to the unblocked sentinel.
const (
	MinRadix = 2
	MaxRadix = 256
)

var one = big.NewInt(1)

// minExp returns the smallest e such that base**e >= target.
func minExp(base, target *big.Int) int {
	p := big.NewInt(1)
	e := 0
	for p.Cmp(target) < 0 {
		p.Mul(p, base)
		e++
	}

	return e
}

// Sizes derives (bytesPerBlock, digitsPerBlock) for a radix.
//
// The derivation runs entirely on integer comparisons so there is no float
// fencepost risk at exact powers:
//
//	d              = smallest digits with radix^d >= 256
//	                 (collapsed by /8 while d > 8 and divisible by 8)
//	bytesPerBlock  = smallest B with 2^(8B) >= radix^d
//	digitsPerBlock = smallest D with radix^D >= 2^(8B)
//
// Radix 10 returns the unblocked sentinel (0, 0).
func Sizes(radix int) (bytesPerBlock, digitsPerBlock int, err error) {
	defer Error.WrapP(&err)

	if radix == 10 {
		return 0, 0, nil
	}
	if radix < MinRadix || radix > MaxRadix {
		return 0, 0, ErrConfig.New("radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}

	r := big.NewInt(int64(radix))

	d := minExp(r, big.NewInt(256))
	for d > 8 && d%8 == 0 {
		d /= 8
	}

	rd := new(big.Int).Exp(r, big.NewInt(int64(d)), nil)

	bytesPerBlock = 1
	for new(big.Int).Lsh(one, uint(8*bytesPerBlock)).Cmp(rd) < 0 {
		bytesPerBlock++
	}

	digitsPerBlock = minExp(r, new(big.Int).Lsh(one, uint(8*bytesPerBlock)))

	return bytesPerBlock, digitsPerBlock, nil
}
