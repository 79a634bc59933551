package baseconv

import (
	"math/big"
	"strings"

	"github.com/calebcase/radix/bigint"
	"github.com/calebcase/radix/block"
)

// Replacer is an optional post-digit transform applied to each encoded block
// frame (e.g. collapsing an all-zero ascii85 frame into "z"). The offset is
// the byte offset of the block within the padded input.
type Replacer func(frame string, offset int) string

// Converter is the block level base conversion engine. It carries no charset
// or endianness of its own; those are supplied per call (or bundled by a
// Codec). A Converter is immutable after construction.
type Converter struct {
	radix          int
	bytesPerBlock  int
	digitsPerBlock int
}

// New returns a converter for radix with derived block sizes.
func New(radix int) (c *Converter, err error) {
	defer Error.WrapP(&err)

	bytesPerBlock, digitsPerBlock, err := block.Sizes(radix)
	if err != nil {
		return nil, err
	}

	return &Converter{
		radix:          radix,
		bytesPerBlock:  bytesPerBlock,
		digitsPerBlock: digitsPerBlock,
	}, nil
}

// NewWithBlockSize returns a converter with an explicit block pairing,
// overriding the derived sizes. A zero bytesPerBlock is the unblocked
// sentinel and requires a zero digitsPerBlock.
func NewWithBlockSize(radix, bytesPerBlock, digitsPerBlock int) (c *Converter, err error) {
	defer Error.WrapP(&err)

	if radix < block.MinRadix || radix > block.MaxRadix {
		return nil, ErrConfig.New("radix %d out of range [%d, %d]", radix, block.MinRadix, block.MaxRadix)
	}

	switch {
	case bytesPerBlock == 0 && digitsPerBlock == 0:
		// The unblocked sentinel emits canonical decimal digits.
		if radix != 10 {
			return nil, ErrConfig.New("unblocked conversion requires radix 10, got %d", radix)
		}
	case bytesPerBlock < 1 || digitsPerBlock < 1:
		return nil, ErrConfig.New("invalid block pairing (%d, %d)", bytesPerBlock, digitsPerBlock)
	}

	return &Converter{
		radix:          radix,
		bytesPerBlock:  bytesPerBlock,
		digitsPerBlock: digitsPerBlock,
	}, nil
}

// Radix returns the converter's radix.
func (c *Converter) Radix() int {
	return c.radix
}

// BytesPerBlock returns the byte group size (0 means unblocked).
func (c *Converter) BytesPerBlock() int {
	return c.bytesPerBlock
}

// DigitsPerBlock returns the digit group size (0 means unblocked).
func (c *Converter) DigitsPerBlock() int {
	return c.digitsPerBlock
}

// PadBytes returns how many decoded bytes charCount meaningful characters
// account for.
func (c *Converter) PadBytes(charCount int) int {
	if c.digitsPerBlock == 0 {
		return 0
	}

	return charCount * c.bytesPerBlock / c.digitsPerBlock
}

// PadChars returns how many characters byteCount raw bytes need.
func (c *Converter) PadChars(byteCount int) int {
	if c.bytesPerBlock == 0 {
		return 0
	}

	return (byteCount*c.digitsPerBlock + c.bytesPerBlock - 1) / c.bytesPerBlock
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Encode converts data into a digit string against cs. It returns the string
// together with the number of zero padding bytes that were added to fill the
// final block. Encoding is deterministic and total for any byte sequence and
// a charset whose length equals the radix.
func (c *Converter) Encode(data []byte, cs Charset, littleEndian bool, replacer Replacer) (out string, zeroPadding int, err error) {
	defer Error.WrapP(&err)

	// Radix 10 has no fixed byte granularity: the whole input is one big
	// integer and its decimal digits are canonical.
	if c.digitsPerBlock == 0 {
		return bigint.FromBytes(data, littleEndian).String(), 0, nil
	}

	if cs.Len() != c.radix {
		return "", 0, ErrConfig.New("charset length %d does not match radix %d", cs.Len(), c.radix)
	}

	b := make([]byte, len(data))
	copy(b, data)
	if littleEndian {
		reverse(b)
	}

	if rem := len(b) % c.bytesPerBlock; rem != 0 {
		zeroPadding = c.bytesPerBlock - rem
		if littleEndian {
			b = append(make([]byte, zeroPadding), b...)
		} else {
			b = append(b, make([]byte, zeroPadding)...)
		}
	}

	sb := &strings.Builder{}

	for off := 0; off < len(b); off += c.bytesPerBlock {
		frame, err := c.encodeBlock(b[off:off+c.bytesPerBlock], cs)
		if err != nil {
			return "", 0, err
		}

		if replacer != nil {
			frame = replacer(frame, off)
		}

		sb.WriteString(frame)
	}

	return sb.String(), zeroPadding, nil
}

// encodeBlock converts one byte group into exactly digitsPerBlock
// characters.
func (c *Converter) encodeBlock(group []byte, cs Charset) (string, error) {
	n := bigint.FromBytes(group, false)

	digits := make([]int, 0, c.digitsPerBlock)
	for {
		q, rem, err := bigint.DivMod(n, int64(c.radix))
		if err != nil {
			return "", err
		}

		digits = append(digits, int(rem))
		n = q

		if n.Sign() == 0 {
			break
		}
	}

	sb := &strings.Builder{}
	for i := len(digits); i < c.digitsPerBlock; i++ {
		sb.WriteRune(cs.Rune(0))
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(cs.Rune(digits[i]))
	}

	return sb.String(), nil
}

// Decode converts a digit string back into bytes. Characters absent from cs
// are silently skipped. The digit sequence is padded with padDigit to whole
// blocks (start for little-endian, end otherwise) and each block is rebuilt
// via positional weights. An empty input decodes to an empty byte sequence.
func (c *Converter) Decode(input string, cs Charset, padDigit int, littleEndian bool) (data []byte, err error) {
	defer Error.WrapP(&err)

	if cs.Len() != c.radix {
		return nil, ErrConfig.New("charset length %d does not match radix %d", cs.Len(), c.radix)
	}

	var digits []int
	for _, r := range input {
		if i, ok := cs.Index(r); ok {
			digits = append(digits, i)
		}
	}

	if len(digits) == 0 {
		return []byte{}, nil
	}

	kept := len(digits)

	if c.digitsPerBlock == 0 {
		return c.decodeUnblocked(digits, littleEndian)
	}

	if padDigit < 0 || padDigit >= c.radix {
		return nil, ErrConfig.New("pad digit %d out of range [0, %d)", padDigit, c.radix)
	}

	if rem := len(digits) % c.digitsPerBlock; rem != 0 {
		pad := make([]int, c.digitsPerBlock-rem)
		for i := range pad {
			pad[i] = padDigit
		}

		if littleEndian {
			digits = append(pad, digits...)
		} else {
			digits = append(digits, pad...)
		}
	}

	var out []byte
	for off := 0; off < len(digits); off += c.digitsPerBlock {
		group, err := c.decodeBlock(digits[off : off+c.digitsPerBlock])
		if err != nil {
			return nil, err
		}

		out = append(out, group...)
	}

	if littleEndian {
		i := 0
		for i < len(out)-1 && out[i] == 0 {
			i++
		}
		out = out[i:]
		reverse(out)

		return out, nil
	}

	if keep := c.PadBytes(kept); keep < len(out) {
		out = out[:keep]
	}

	return out, nil
}

// decodeBlock rebuilds one byte group from its digit group via positional
// weights.
func (c *Converter) decodeBlock(group []int) ([]byte, error) {
	n := new(big.Int)
	for j, d := range group {
		w := bigint.Pow(int64(c.radix), len(group)-1-j)
		n.Add(n, w.Mul(w, big.NewInt(int64(d))))
	}

	return bigint.ToBytes(n, c.bytesPerBlock)
}

// decodeUnblocked rebuilds the single arbitrary length block used by radix
// 10 style converters.
func (c *Converter) decodeUnblocked(digits []int, littleEndian bool) ([]byte, error) {
	n := new(big.Int)
	r := big.NewInt(int64(c.radix))
	for _, d := range digits {
		n.Mul(n, r)
		n.Add(n, big.NewInt(int64(d)))
	}

	out := n.Bytes()
	if len(out) == 0 {
		out = []byte{0}
	}
	if littleEndian {
		reverse(out)
	}

	return out, nil
}
