package baseconv

import "strings"

// Schema configures a Codec. The zero value of optional fields disables
// them. BytesPerBlock and DigitsPerBlock override the derived block pairing
// when both are set.
type Schema struct {
	Radix   int
	Charset Charset

	LittleEndian bool

	// PadChar, when set, replaces the trimmed surplus digits of big-endian
	// output (the base64 "=" style). It must not be a charset digit.
	PadChar rune

	// PadDigit is the digit value used to fill partial blocks on decode.
	PadDigit int

	// KeepPadding disables the big-endian trim. The byte/digit ratio
	// accounting is only proven for the classic converter pairings, so
	// unusual radices can opt to keep whole blocks instead.
	KeepPadding bool

	Replacer Replacer

	BytesPerBlock  int
	DigitsPerBlock int
}

// Codec is a configured base converter. Configuration is validated once at
// construction and read-only afterwards, so a single Codec is safe for
// concurrent encode and decode calls.
type Codec struct {
	schema Schema
	conv   *Converter
}

// NewCodec validates schema and returns a ready codec.
func NewCodec(schema Schema) (c *Codec, err error) {
	defer Error.WrapP(&err)

	var conv *Converter
	if schema.BytesPerBlock != 0 || schema.DigitsPerBlock != 0 {
		conv, err = NewWithBlockSize(schema.Radix, schema.BytesPerBlock, schema.DigitsPerBlock)
	} else {
		conv, err = New(schema.Radix)
	}
	if err != nil {
		return nil, err
	}

	if schema.Charset.Len() != schema.Radix {
		return nil, ErrConfig.New("charset length %d does not match radix %d", schema.Charset.Len(), schema.Radix)
	}

	if schema.PadChar != 0 {
		if _, ok := schema.Charset.Index(schema.PadChar); ok {
			return nil, ErrConfig.New("pad character %q is a charset digit", schema.PadChar)
		}
	}

	if schema.PadDigit < 0 || schema.PadDigit >= schema.Radix {
		return nil, ErrConfig.New("pad digit %d out of range [0, %d)", schema.PadDigit, schema.Radix)
	}

	return &Codec{
		schema: schema,
		conv:   conv,
	}, nil
}

// Converter returns the codec's block engine.
func (c *Codec) Converter() *Converter {
	return c.conv
}

// Encode converts data into this codec's digit string representation.
func (c *Codec) Encode(data []byte) (out string, err error) {
	defer Error.WrapP(&err)

	out, zeroPadding, err := c.conv.Encode(
		data,
		c.schema.Charset,
		c.schema.LittleEndian,
		c.schema.Replacer,
	)
	if err != nil {
		return "", err
	}

	// Surplus digits only exist for blocked big-endian output, and a
	// replacer may have reshaped the frames arbitrarily.
	if c.schema.LittleEndian || zeroPadding == 0 || c.schema.KeepPadding || c.schema.Replacer != nil || c.conv.DigitsPerBlock() == 0 {
		return out, nil
	}

	rs := []rune(out)
	keep := c.conv.PadChars(len(data))
	if keep > len(rs) {
		return out, nil
	}

	out = string(rs[:keep])
	if c.schema.PadChar != 0 {
		out += strings.Repeat(string(c.schema.PadChar), len(rs)-keep)
	}

	return out, nil
}

// Decode converts a digit string back into bytes. Characters outside the
// charset (including any pad characters) are ignored.
func (c *Codec) Decode(input string) (data []byte, err error) {
	defer Error.WrapP(&err)

	return c.conv.Decode(
		input,
		c.schema.Charset,
		c.schema.PadDigit,
		c.schema.LittleEndian,
	)
}
