package bigint

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore/internal/testrand"
)

func TestRandom_TopBitSet(t *testing.T) {
	rng := testrand.New("bigint-random")
	for _, bits := range []int{1, 2, 7, 8, 9, 63, 64, 65, 127, 128, 1000} {
		for i := 0; i < 20; i++ {
			x, err := Random(rng, bits)
			require.NoError(t, err)
			if x.BitLen() != bits {
				t.Fatalf("Random(%d).BitLen() = %d", bits, x.BitLen())
			}
			if x.IsNegative() {
				t.Fatalf("Random(%d) is negative", bits)
			}
		}
	}

	z, err := Random(rng, 0)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

func TestRandom_Errors(t *testing.T) {
	_, err := Random(testrand.New("x"), -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Random(iotest.ErrReader(errors.New("no entropy")), 64)
	assert.ErrorContains(t, err, "no entropy")
}

func TestRandomInteger(t *testing.T) {
	rng := testrand.New("bigint-range")
	lo, hi := NewInt(-10), NewInt(10)
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		x, err := RandomInteger(rng, lo, hi)
		require.NoError(t, err)
		if x.Cmp(lo) < 0 || x.Cmp(hi) >= 0 {
			t.Fatalf("RandomInteger() = %s outside [-10, 10)", x)
		}
		seen[x.String()] = true
	}
	assert.Len(t, seen, 20, "every value in the range should appear")
}

func TestRandomInteger_EmptyRange(t *testing.T) {
	rng := testrand.New("x")
	for _, tt := range []struct{ min, max int64 }{{5, 5}, {6, 5}} {
		_, err := RandomInteger(rng, NewInt(tt.min), NewInt(tt.max))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("RandomInteger(%d, %d) error = %v, want ErrInvalidArgument", tt.min, tt.max, err)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, _ := Random(testrand.New("same"), 256)
	b, _ := Random(testrand.New("same"), 256)
	assert.True(t, a.Equal(b))
}
