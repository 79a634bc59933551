package baseconv

// Charset is an ordered, duplicate free sequence of characters. Index i maps
// to digit value i and the length defines the radix. A Charset is built once
// and immutable afterwards.
type Charset struct {
	runes []rune
	index map[rune]int
}

// NewCharset builds a charset from s. Duplicate characters are a
// configuration error.
func NewCharset(s string) (cs Charset, err error) {
	defer Error.WrapP(&err)

	runes := []rune(s)
	if len(runes) < 2 {
		return cs, ErrConfig.New("charset needs at least 2 characters, got %d", len(runes))
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return cs, ErrConfig.New("duplicate character %q at index %d", r, i)
		}
		index[r] = i
	}

	return Charset{
		runes: runes,
		index: index,
	}, nil
}

// Len returns the number of characters (the radix).
func (cs Charset) Len() int {
	return len(cs.runes)
}

// Rune returns the character for digit value i.
func (cs Charset) Rune(i int) rune {
	return cs.runes[i]
}

// Index returns the digit value for r and whether r is in the charset.
func (cs Charset) Index(r rune) (int, bool) {
	i, ok := cs.index[r]

	return i, ok
}

// String returns the charset characters in digit order.
func (cs Charset) String() string {
	return string(cs.runes)
}
