package aead

import (
	"encoding/binary"

	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// ghashR is the reduction constant for x^128 + x^7 + x^2 + x + 1 in GCM's
// reflected bit order.
const ghashR = 0xE1 << 56

// GHASH is the GF(2^128) polynomial hash used by GCM. Input is absorbed in
// 16-byte blocks and Pad closes a partial block with zeros.
type GHASH struct {
	h0, h1 uint64
	y0, y1 uint64
	buf    [block.BlockSize]byte
	n      int
}

// NewGHASH returns a GHASH keyed by the 16-byte subkey h.
func NewGHASH(h []byte) (*GHASH, error) {
	if len(h) != block.BlockSize {
		return nil, coreerr.Argument("aead.NewGHASH", "subkey length %d, want %d", len(h), block.BlockSize)
	}
	return &GHASH{
		h0: binary.BigEndian.Uint64(h[0:]),
		h1: binary.BigEndian.Uint64(h[8:]),
	}, nil
}

// Reset clears the accumulator and any buffered input.
func (g *GHASH) Reset() {
	g.y0, g.y1 = 0, 0
	clear(g.buf[:])
	g.n = 0
}

// Write absorbs p.
func (g *GHASH) Write(p []byte) {
	if g.n > 0 {
		k := copy(g.buf[g.n:], p)
		g.n += k
		p = p[k:]
		if g.n < block.BlockSize {
			return
		}
		g.absorb(g.buf[:])
		g.n = 0
	}
	for len(p) >= block.BlockSize {
		g.absorb(p[:block.BlockSize])
		p = p[block.BlockSize:]
	}
	g.n = copy(g.buf[:], p)
}

// Pad absorbs any partial block, zero filled.
func (g *GHASH) Pad() {
	if g.n == 0 {
		return
	}
	clear(g.buf[g.n:])
	g.absorb(g.buf[:])
	g.n = 0
}

// Sum pads, absorbs the length block for adLen bytes of associated data and
// textLen bytes of text, and returns the hash.
func (g *GHASH) Sum(adLen, textLen uint64) [block.BlockSize]byte {
	g.Pad()
	var lens [block.BlockSize]byte
	binary.BigEndian.PutUint64(lens[0:], adLen*8)
	binary.BigEndian.PutUint64(lens[8:], textLen*8)
	g.absorb(lens[:])

	var out [block.BlockSize]byte
	binary.BigEndian.PutUint64(out[0:], g.y0)
	binary.BigEndian.PutUint64(out[8:], g.y1)
	return out
}

func (g *GHASH) absorb(b []byte) {
	g.y0 ^= binary.BigEndian.Uint64(b[0:])
	g.y1 ^= binary.BigEndian.Uint64(b[8:])
	g.y0, g.y1 = gfMul(g.y0, g.y1, g.h0, g.h1)
}

// gfMul is a bit-serial carryless multiply. Every iteration runs the same
// operations regardless of the operand bits.
func gfMul(x0, x1, h0, h1 uint64) (uint64, uint64) {
	var z0, z1 uint64
	v0, v1 := h0, h1
	for i := 0; i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = x0 >> (63 - i) & 1
		} else {
			bit = x1 >> (127 - i) & 1
		}
		mask := -bit
		z0 ^= v0 & mask
		z1 ^= v1 & mask

		carry := -(v1 & 1)
		v1 = v1>>1 | v0<<63
		v0 = v0>>1 ^ ghashR&carry
	}
	return z0, z1
}
