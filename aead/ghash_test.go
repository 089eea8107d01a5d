package aead

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// gfOne is 1 in GCM's reflected bit order.
const gfOne = uint64(1) << 63

func TestGFMul_Field(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a0, a1 := rapid.Uint64().Draw(rt, "a0"), rapid.Uint64().Draw(rt, "a1")
		b0, b1 := rapid.Uint64().Draw(rt, "b0"), rapid.Uint64().Draw(rt, "b1")
		c0, c1 := rapid.Uint64().Draw(rt, "c0"), rapid.Uint64().Draw(rt, "c1")

		if x0, x1 := gfMul(a0, a1, gfOne, 0); x0 != a0 || x1 != a1 {
			rt.Fatalf("a*1 = %x%x, want %x%x", x0, x1, a0, a1)
		}

		ab0, ab1 := gfMul(a0, a1, b0, b1)
		ba0, ba1 := gfMul(b0, b1, a0, a1)
		if ab0 != ba0 || ab1 != ba1 {
			rt.Fatal("multiplication is not commutative")
		}

		// a*(b+c) = a*b + a*c
		l0, l1 := gfMul(a0, a1, b0^c0, b1^c1)
		ac0, ac1 := gfMul(a0, a1, c0, c1)
		if l0 != ab0^ac0 || l1 != ab1^ac1 {
			rt.Fatal("multiplication does not distribute over addition")
		}
	})
}

func TestGHASH_ChunkingInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(rt, "h")
		data := rapid.SliceOfN(rapid.Byte(), 0, 100).Draw(rt, "data")
		split := rapid.IntRange(0, len(data)).Draw(rt, "split")

		one, _ := NewGHASH(h)
		one.Write(data)
		two, _ := NewGHASH(h)
		two.Write(data[:split])
		two.Write(data[split:])

		if one.Sum(0, uint64(len(data))) != two.Sum(0, uint64(len(data))) {
			rt.Fatalf("split at %d changed the hash", split)
		}
	})
}

func TestGHASH_PadSeparatesFields(t *testing.T) {
	h := counting(1, 16)
	a, _ := NewGHASH(h)
	a.Write([]byte{1, 2, 3})
	a.Pad()
	a.Write([]byte{4})

	b, _ := NewGHASH(h)
	b.Write([]byte{1, 2, 3, 4})

	assert.NotEqual(t, a.Sum(3, 1), b.Sum(3, 1))

	a.Reset()
	b.Reset()
	assert.Equal(t, a.Sum(0, 0), b.Sum(0, 0))
}

func TestNewGHASH_BadKey(t *testing.T) {
	_, err := NewGHASH(make([]byte, 15))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
