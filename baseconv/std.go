package baseconv

// Standard charsets in digit order. Charset length equals the radix.
const (
	StdBase2  = "01"
	StdBase8  = "01234567"
	StdBase10 = "0123456789"
	StdBase16 = "0123456789abcdef"

	// RFC 4648.
	StdBase32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	StdBase64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	StdBase36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	StdBase62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Ascii85: the 85 characters from '!' through 'u'.
	StdBase85 = "!\"#$%&'()*+,-./0123456789:;<=>?@" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`" +
		"abcdefghijklmnopqrstu"
)
