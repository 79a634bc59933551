package radix_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix"
)

func TestCompile(t *testing.T) {
	type TC struct {
		name         string
		data         []byte
		typ          radix.OutputType
		littleEndian bool
		negative     bool

		expected interface{}

		Mark error
	}

	tcs := []TC{
		{
			name:     "bytes",
			data:     []byte{0xDE, 0xAD},
			typ:      radix.Bytes,
			expected: []byte{0xDE, 0xAD},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "text",
			data:     []byte("foobar"),
			typ:      radix.Text,
			expected: "foobar",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "int16",
			data:     []byte{0x01, 0x2C},
			typ:      radix.Int16,
			expected: int16(300),
			Mark:     oops.New("unexpected"),
		},
		{
			name:         "int16 little endian",
			data:         []byte{0x2C, 0x01},
			typ:          radix.Int16,
			littleEndian: true,
			expected:     int16(300),
			Mark:         oops.New("unexpected"),
		},
		{
			name:     "negative int16",
			data:     []byte{0x01, 0x2C},
			typ:      radix.Int16,
			negative: true,
			expected: int16(-300),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "int64",
			data:     []byte{0x01, 0x00, 0x00, 0x00, 0x00},
			typ:      radix.Int64,
			expected: int64(1 << 32),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "uint8",
			data:     []byte{0xFF},
			typ:      radix.Uint8,
			expected: uint8(255),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "float64 raw bits",
			data:     []byte{0x3F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			typ:      radix.Float64,
			expected: 1.5,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "float32 raw bits",
			data:     []byte{0x3F, 0xC0, 0x00, 0x00},
			typ:      radix.Float32,
			expected: float32(1.5),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "big int",
			data:     []byte{0x01, 0x00, 0x00},
			typ:      radix.BigInt,
			negative: true,
			expected: big.NewInt(-65536),
			Mark:     oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, err := radix.Compile(tc.data, tc.typ, tc.littleEndian, tc.negative)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.expected, v, tc.Mark)
		})
	}
}

func TestCompileBigFloat(t *testing.T) {
	v, err := radix.Compile([]byte{0x01, 0x00}, radix.BigFloat, false, false)
	require.NoError(t, err)

	f, ok := v.(*big.Float)
	require.True(t, ok)

	i, _ := f.Int64()
	require.Equal(t, int64(256), i)
}

func TestCompileErrors(t *testing.T) {
	type TC struct {
		name     string
		data     []byte
		typ      radix.OutputType
		negative bool
		Mark     error
	}

	tcs := []TC{
		{
			name: "int8 overflow",
			data: []byte{0x01, 0x00},
			typ:  radix.Int8,
			Mark: oops.New("unexpected"),
		},
		{
			name:     "negative unsigned",
			data:     []byte{0x01},
			typ:      radix.Uint8,
			negative: true,
			Mark:     oops.New("unexpected"),
		},
		{
			name: "uint16 overflow",
			data: []byte{0x01, 0x00, 0x00},
			typ:  radix.Uint16,
			Mark: oops.New("unexpected"),
		},
		{
			name: "invalid utf8",
			data: []byte{0xFF, 0xFE},
			typ:  radix.Text,
			Mark: oops.New("unexpected"),
		},
		{
			name: "float width",
			data: []byte{0x00, 0x00},
			typ:  radix.Float64,
			Mark: oops.New("unexpected"),
		},
		{
			name:     "negative raw float",
			data:     []byte{0x3F, 0xC0, 0x00, 0x00},
			typ:      radix.Float32,
			negative: true,
			Mark:     oops.New("unexpected"),
		},
		{
			name: "uint64 overflow",
			data: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			typ:  radix.Uint64,
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := radix.Compile(tc.data, tc.typ, false, tc.negative)
			require.Error(t, err, tc.Mark)
			require.True(t, radix.ErrInputType.Has(err), tc.Mark)
		})
	}
}
