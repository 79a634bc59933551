package radix

import (
	"encoding/binary"
	"math"
	"math/big"
)

// ToBytes coerces v into sign separated magnitude bytes.
//
// Strings contribute their UTF-8 bytes and byte slices a copy of themselves.
// Integers and *big.Int contribute their minimal magnitude with the sign
// split off. Floats must be finite; in number mode they must also be
// integral, otherwise their raw IEEE 754 bits are used. A []interface{}
// coerces each element and concatenates the results.
func ToBytes(v interface{}, s Settings) (data []byte, negative bool, hint TypeHint, err error) {
	defer Error.WrapP(&err)

	switch t := v.(type) {
	case []byte:
		data = make([]byte, len(t))
		copy(data, t)

		return data, false, HintBytes, nil
	case string:
		return []byte(t), false, HintText, nil

	case int:
		return intBytes(int64(t), s)
	case int8:
		return intBytes(int64(t), s)
	case int16:
		return intBytes(int64(t), s)
	case int32:
		return intBytes(int64(t), s)
	case int64:
		return intBytes(t, s)

	case uint:
		return uintBytes(uint64(t), s)
	case uint8:
		return uintBytes(uint64(t), s)
	case uint16:
		return uintBytes(uint64(t), s)
	case uint32:
		return uintBytes(uint64(t), s)
	case uint64:
		return uintBytes(t, s)

	case float32:
		return floatBytes(float64(t), 4, s)
	case float64:
		return floatBytes(t, 8, s)

	case *big.Int:
		if t == nil {
			return nil, false, 0, ErrInputType.New("nil *big.Int")
		}

		negative = t.Sign() < 0
		if negative && !s.Signed {
			return nil, false, 0, ErrInputType.New("negative value %s without signed mode", t)
		}

		data = orient(minimal(new(big.Int).Abs(t)), s)

		return data, negative, HintBigInt, nil

	case []interface{}:
		for _, e := range t {
			d, neg, _, err := ToBytes(e, s)
			if err != nil {
				return nil, false, 0, err
			}
			if neg {
				return nil, false, 0, ErrInputType.New("negative element in sequence")
			}

			data = append(data, d...)
		}

		return data, false, HintList, nil
	}

	return nil, false, 0, ErrInputType.New("unsupported type %T", v)
}

func intBytes(v int64, s Settings) ([]byte, bool, TypeHint, error) {
	negative := v < 0
	if negative && !s.Signed {
		return nil, false, 0, ErrInputType.New("negative value %d without signed mode", v)
	}

	m := new(big.Int).Abs(new(big.Int).SetInt64(v))

	return orient(minimal(m), s), negative, HintInt, nil
}

func uintBytes(v uint64, s Settings) ([]byte, bool, TypeHint, error) {
	return orient(minimal(new(big.Int).SetUint64(v)), s), false, HintUint, nil
}

func floatBytes(f float64, width int, s Settings) ([]byte, bool, TypeHint, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false, 0, ErrInputType.New("non-finite float %v", f)
	}

	if s.NumberMode {
		if math.Trunc(f) != f {
			return nil, false, 0, ErrInputType.New("non-integral float %v in number mode", f)
		}

		negative := f < 0
		if negative && !s.Signed {
			return nil, false, 0, ErrInputType.New("negative value %v without signed mode", f)
		}

		// Exact for any integral float64.
		m, _ := new(big.Float).SetFloat64(math.Abs(f)).Int(nil)

		return orient(minimal(m), s), negative, HintInt, nil
	}

	data := make([]byte, width)
	if width == 4 {
		bits := math.Float32bits(float32(f))
		if s.LittleEndian {
			binary.LittleEndian.PutUint32(data, bits)
		} else {
			binary.BigEndian.PutUint32(data, bits)
		}
	} else {
		bits := math.Float64bits(f)
		if s.LittleEndian {
			binary.LittleEndian.PutUint64(data, bits)
		} else {
			binary.BigEndian.PutUint64(data, bits)
		}
	}

	return data, false, HintFloat, nil
}

// minimal renders a non-negative magnitude as its minimal big-endian bytes,
// with zero as a single zero byte.
func minimal(m *big.Int) []byte {
	b := m.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}

	return b
}

// orient reverses numeric bytes when little-endian rendering is selected.
func orient(data []byte, s Settings) []byte {
	if !s.LittleEndian {
		return data
	}

	r := make([]byte, len(data))
	for i, b := range data {
		r[len(data)-1-i] = b
	}

	return r
}
