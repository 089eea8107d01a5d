package bigint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBitOps(t *testing.T) {
	x := new(Int)
	x.SetBit(0).SetBit(64).SetBit(200)
	assert.Equal(t, 201, x.BitLen())
	assert.Equal(t, uint(1), x.Bit(64))
	assert.Equal(t, uint(0), x.Bit(63))
	assert.Equal(t, uint(0), x.Bit(10000))

	x.ClearBit(200)
	assert.Equal(t, 65, x.BitLen())
	x.ClearBit(5000)
	assert.Equal(t, 65, x.BitLen())

	assert.Equal(t, "1267650600228229401496703205376", PowerOfTwo(100).String())
}

func TestMaskBits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := genInt(10).Draw(rt, "x")
		n := rapid.UintRange(0, 700).Draw(rt, "n")

		mag := new(big.Int).SetBytes(x.Bytes())
		mask := new(big.Int).Lsh(big.NewInt(1), n)
		mask.Sub(mask, big.NewInt(1))
		want := mag.And(mag, mask)
		if x.IsNegative() {
			want.Neg(want)
		}

		got := x.Clone().MaskBits(n)
		if toBig(t, got).Cmp(want) != 0 {
			rt.Fatalf("MaskBits(%d) = %s, want %s", n, got, want)
		}
	})
}

func TestSubstring(t *testing.T) {
	x := MustParse("0x0123456789ABCDEF0123456789ABCDEF")
	tests := []struct {
		offset, length uint
		want           uint32
	}{
		{0, 4, 0xF},
		{0, 32, 0x89ABCDEF},
		{4, 8, 0xDE},
		{60, 8, 0xF0},
		{124, 8, 0x0},
		{3, 5, 0x1D},
		{200, 32, 0},
	}

	for _, tt := range tests {
		got, err := x.Substring(tt.offset, tt.length)
		if err != nil {
			t.Fatalf("Substring(%d, %d) error = %v", tt.offset, tt.length, err)
		}
		if got != tt.want {
			t.Errorf("Substring(%d, %d) = %#x, want %#x", tt.offset, tt.length, got, tt.want)
		}
	}

	if _, err := x.Substring(0, 33); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Substring(0, 33) error = %v, want ErrInvalidArgument", err)
	}
}

func TestByteAccess(t *testing.T) {
	x := MustParse("0x0102030405060708090A")
	assert.Equal(t, byte(0x0a), x.ByteAt(0))
	assert.Equal(t, byte(0x01), x.ByteAt(9))
	assert.Equal(t, byte(0), x.ByteAt(10))
	assert.Equal(t, 10, x.ByteLen())
	assert.Equal(t, Word(0x0102), x.WordAt(1))
	assert.Equal(t, Word(0), x.WordAt(99))
}

func TestTrailingZeroBits(t *testing.T) {
	assert.Equal(t, uint(0), new(Int).TrailingZeroBits())
	assert.Equal(t, uint(0), NewInt(7).TrailingZeroBits())
	assert.Equal(t, uint(130), PowerOfTwo(130).TrailingZeroBits())
	assert.Equal(t, uint(3), NewInt(-24).TrailingZeroBits())
}
