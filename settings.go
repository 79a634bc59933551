package radix

// Settings configure input coercion.
type Settings struct {
	// LittleEndian emits numeric byte renderings least significant byte
	// first. Text, raw bytes, and sequences are unaffected.
	LittleEndian bool

	// Signed permits negative values. Without it any negative input is an
	// input type error.
	Signed bool

	// NumberMode coerces floats by their numeric value, which must be
	// integral. Otherwise floats contribute their raw IEEE 754 bits.
	NumberMode bool
}

// TypeHint reports what kind of value ToBytes coerced.
type TypeHint int

const (
	HintBytes TypeHint = iota
	HintText
	HintInt
	HintUint
	HintFloat
	HintBigInt
	HintList
)

// Output returns the natural output type for values with this hint, for
// callers that round-trip without tracking the original type themselves.
func (h TypeHint) Output() OutputType {
	switch h {
	case HintText:
		return Text
	case HintInt:
		return Int64
	case HintUint:
		return Uint64
	case HintFloat:
		return Float64
	case HintBigInt:
		return BigInt
	default:
		return Bytes
	}
}

// OutputType selects the Go value Compile produces from decoded bytes.
type OutputType int

const (
	Bytes OutputType = iota

	Int8
	Int16
	Int32
	Int64

	Uint8
	Uint16
	Uint32
	Uint64

	Float32
	Float64

	BigInt
	BigFloat

	Text
)
