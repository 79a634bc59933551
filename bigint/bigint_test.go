package bigint_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix/bigint"
)

func TestFromBytes(t *testing.T) {
	type TC struct {
		name         string
		data         []byte
		littleEndian bool
		expected     string
		Mark         error
	}

	tcs := []TC{
		{
			name:     "empty",
			data:     []byte{},
			expected: "0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "zero",
			data:     []byte{0x00},
			expected: "0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "big endian",
			data:     []byte{0x01, 0x00},
			expected: "256",
			Mark:     oops.New("unexpected"),
		},
		{
			name:         "little endian",
			data:         []byte{0x01, 0x00},
			littleEndian: true,
			expected:     "1",
			Mark:         oops.New("unexpected"),
		},
		{
			name:         "little endian high",
			data:         []byte{0x00, 0x01},
			littleEndian: true,
			expected:     "256",
			Mark:         oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n := bigint.FromBytes(tc.data, tc.littleEndian)
			require.Equal(t, tc.expected, n.String(), tc.Mark)
		})
	}
}

func TestToBytes(t *testing.T) {
	type TC struct {
		name     string
		n        *big.Int
		byteLen  int
		expected []byte
		err      bool
		Mark     error
	}

	tcs := []TC{
		{
			name:     "zero",
			n:        big.NewInt(0),
			byteLen:  2,
			expected: []byte{0x00, 0x00},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "padded",
			n:        big.NewInt(1),
			byteLen:  4,
			expected: []byte{0x00, 0x00, 0x00, 0x01},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "exact",
			n:        big.NewInt(65535),
			byteLen:  2,
			expected: []byte{0xFF, 0xFF},
			Mark:     oops.New("unexpected"),
		},
		{
			name:    "overflow",
			n:       big.NewInt(65536),
			byteLen: 2,
			err:     true,
			Mark:    oops.New("unexpected"),
		},
		{
			name:    "negative",
			n:       big.NewInt(-1),
			byteLen: 2,
			err:     true,
			Mark:    oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			data, err := bigint.ToBytes(tc.n, tc.byteLen)
			if tc.err {
				require.Error(t, err, tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.expected, data, tc.Mark)
		})
	}
}

func TestDivMod(t *testing.T) {
	type TC struct {
		name    string
		n       *big.Int
		divisor int64
		q       string
		rem     int64
		err     bool
		Mark    error
	}

	tcs := []TC{
		{
			name:    "simple",
			n:       big.NewInt(300),
			divisor: 7,
			q:       "42",
			rem:     6,
			Mark:    oops.New("unexpected"),
		},
		{
			name:    "zero",
			n:       big.NewInt(0),
			divisor: 16,
			q:       "0",
			rem:     0,
			Mark:    oops.New("unexpected"),
		},
		{
			name:    "divisor too small",
			n:       big.NewInt(1),
			divisor: 0,
			err:     true,
			Mark:    oops.New("unexpected"),
		},
		{
			name:    "divisor too large",
			n:       big.NewInt(1),
			divisor: bigint.MaxDivisor + 1,
			err:     true,
			Mark:    oops.New("unexpected"),
		},
		{
			name:    "negative magnitude",
			n:       big.NewInt(-300),
			divisor: 7,
			err:     true,
			Mark:    oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			q, rem, err := bigint.DivMod(tc.n, tc.divisor)
			if tc.err {
				require.Error(t, err, tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.q, q.String(), tc.Mark)
			require.Equal(t, tc.rem, rem, tc.Mark)
		})
	}
}

func TestPow(t *testing.T) {
	require.Equal(t, "1", bigint.Pow(16, 0).String())
	require.Equal(t, "256", bigint.Pow(2, 8).String())
	require.Equal(t, "4096", bigint.Pow(16, 3).String())

	// DivMod is the exact inverse of Pow for single digits.
	q, rem, err := bigint.DivMod(bigint.Pow(85, 4), 85)
	require.NoError(t, err)
	require.Equal(t, bigint.Pow(85, 3).String(), q.String())
	require.Equal(t, int64(0), rem)
}
