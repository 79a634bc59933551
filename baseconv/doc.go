// Package baseconv converts byte sequences to and from digit strings in an
// arbitrary radix.
//
// A Converter is the block level engine: it pads the input to whole blocks,
// interprets each block as a big-endian magnitude, and extracts digits by
// repeated division. Block sizes come from the block package unless given
// explicitly (the way base64 fixes 3 bytes to 4 digits rather than using the
// derived pairing).
//
// A Codec bundles a Converter with a Charset and the rest of its
// configuration (endianness, pad character, replacer hook) into an immutable
// instance whose Encode and Decode round-trip without out-of-band state.
// Configuration is validated at construction; conversions themselves are
// total for valid instances.
//
// Encoding
//
// Bytes are padded with zero bytes to a whole number of blocks: trailing for
// big-endian, leading for little-endian (after reversing the byte order).
// Each block is divided down by the radix, remainders become digits, and the
// digit group is left padded with zero digits to the block's digit width.
// Digits index into the charset one-to-one.
//
// For big-endian output the Codec trims the surplus digits produced by the
// zero byte padding down to PadChars(byteCount), optionally replacing them
// with a pad character (the base64 "=" style).
//
// Decoding
//
// Characters absent from the charset are silently skipped, which allows
// separators and formatting characters in the input. The digit sequence is
// padded to whole blocks (at the start for little-endian, at the end
// otherwise), each block is rebuilt via positional weights, and the resulting
// byte groups are concatenated. Little-endian output strips leading zero
// bytes and reverses; big-endian output truncates to PadBytes(charCount).
//
// Radix 10 bypasses blocking entirely: the whole input is one arbitrary
// length integer and the decimal digit characters are canonical.
package baseconv
