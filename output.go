package radix

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/calebcase/radix/bigint"
)

// Compile turns decoded magnitude bytes into the requested Go value.
//
// Numeric types interpret data as an unsigned magnitude (big-endian unless
// littleEndian is set) with the sign applied afterwards; fixed width types
// error when the value does not fit. Float types take data as raw IEEE 754
// bits and require the exact width. Text requires valid UTF-8.
func Compile(data []byte, typ OutputType, littleEndian, negative bool) (v interface{}, err error) {
	defer Error.WrapP(&err)

	switch typ {
	case Bytes:
		out := make([]byte, len(data))
		copy(out, data)

		return out, nil

	case Text:
		if negative {
			return nil, ErrInputType.New("negative magnitude for text")
		}
		if !utf8.Valid(data) {
			return nil, ErrInputType.New("bytes are not valid UTF-8")
		}

		return string(data), nil

	case Float32:
		if negative {
			return nil, ErrInputType.New("negative magnitude for raw float")
		}
		if len(data) != 4 {
			return nil, ErrInputType.New("float32 needs 4 bytes, have %d", len(data))
		}

		if littleEndian {
			return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
		}

		return math.Float32frombits(binary.BigEndian.Uint32(data)), nil

	case Float64:
		if negative {
			return nil, ErrInputType.New("negative magnitude for raw float")
		}
		if len(data) != 8 {
			return nil, ErrInputType.New("float64 needs 8 bytes, have %d", len(data))
		}

		if littleEndian {
			return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
		}

		return math.Float64frombits(binary.BigEndian.Uint64(data)), nil

	case BigInt:
		return signed(data, littleEndian, negative), nil

	case BigFloat:
		return new(big.Float).SetInt(signed(data, littleEndian, negative)), nil

	case Int8, Int16, Int32, Int64:
		return compileInt(data, typ, littleEndian, negative)

	case Uint8, Uint16, Uint32, Uint64:
		return compileUint(data, typ, littleEndian, negative)
	}

	return nil, ErrInputType.New("unsupported output type %d", typ)
}

func signed(data []byte, littleEndian, negative bool) *big.Int {
	n := bigint.FromBytes(data, littleEndian)
	if negative {
		n.Neg(n)
	}

	return n
}

func compileInt(data []byte, typ OutputType, littleEndian, negative bool) (interface{}, error) {
	n := signed(data, littleEndian, negative)
	if !n.IsInt64() {
		return nil, ErrInputType.New("value %s overflows int64", n)
	}

	i := n.Int64()

	switch typ {
	case Int8:
		if i < math.MinInt8 || i > math.MaxInt8 {
			return nil, ErrInputType.New("value %d overflows int8", i)
		}

		return int8(i), nil
	case Int16:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return nil, ErrInputType.New("value %d overflows int16", i)
		}

		return int16(i), nil
	case Int32:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, ErrInputType.New("value %d overflows int32", i)
		}

		return int32(i), nil
	default:
		return i, nil
	}
}

func compileUint(data []byte, typ OutputType, littleEndian, negative bool) (interface{}, error) {
	if negative {
		return nil, ErrInputType.New("negative magnitude for unsigned type")
	}

	n := bigint.FromBytes(data, littleEndian)
	if !n.IsUint64() {
		return nil, ErrInputType.New("value %s overflows uint64", n)
	}

	u := n.Uint64()

	switch typ {
	case Uint8:
		if u > math.MaxUint8 {
			return nil, ErrInputType.New("value %d overflows uint8", u)
		}

		return uint8(u), nil
	case Uint16:
		if u > math.MaxUint16 {
			return nil, ErrInputType.New("value %d overflows uint16", u)
		}

		return uint16(u), nil
	case Uint32:
		if u > math.MaxUint32 {
			return nil, ErrInputType.New("value %d overflows uint32", u)
		}

		return uint32(u), nil
	default:
		return u, nil
	}
}
