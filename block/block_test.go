package block_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/radix/block"
)

func TestSizes(t *testing.T) {
	type TC struct {
		radix int
		bytes int
		digit int
		err   bool
		Mark  error
	}

	tcs := []TC{
		{
			radix: 2,
			bytes: 1,
			digit: 8,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 8,
			bytes: 2,
			digit: 6,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 10,
			bytes: 0,
			digit: 0,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 16,
			bytes: 1,
			digit: 2,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 256,
			bytes: 1,
			digit: 1,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 1,
			err:   true,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 257,
			err:   true,
			Mark:  oops.New("unexpected"),
		},
		{
			radix: 0,
			err:   true,
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run("", func(t *testing.T) {
			bytes, digits, err := block.Sizes(tc.radix)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, block.ErrConfig.Has(err), tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.bytes, bytes, tc.Mark)
			require.Equal(t, tc.digit, digits, tc.Mark)
		})
	}
}

// TestSizesInvariant sweeps every supported radix and checks the pairing is
// minimal and lossless: digitsPerBlock digits in base R cover at least the
// value space of bytesPerBlock bytes, and one fewer digit would not.
func TestSizesInvariant(t *testing.T) {
	for radix := 2; radix <= 256; radix++ {
		if radix == 10 {
			continue
		}

		bytes, digits, err := block.Sizes(radix)
		require.NoError(t, err)
		require.Greater(t, bytes, 0)
		require.Greater(t, digits, 0)

		space := new(big.Int).Lsh(big.NewInt(1), uint(8*bytes))
		covered := new(big.Int).Exp(
			big.NewInt(int64(radix)),
			big.NewInt(int64(digits)),
			nil,
		)
		require.True(t, covered.Cmp(space) >= 0, "radix=%d", radix)

		if digits > 1 {
			smaller := new(big.Int).Exp(
				big.NewInt(int64(radix)),
				big.NewInt(int64(digits-1)),
				nil,
			)
			require.True(t, smaller.Cmp(space) < 0, "radix=%d", radix)
		}
	}
}
