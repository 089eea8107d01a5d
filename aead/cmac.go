package aead

import (
	"hash"

	"github.com/vaultsandbox/cryptocore/block"
)

// cmac is CMAC (OMAC1) as specified in NIST SP 800-38B and RFC 4493.
type cmac struct {
	c      block.Cipher
	k1, k2 [block.BlockSize]byte
	x      [block.BlockSize]byte
	buf    [block.BlockSize]byte
	n      int
}

// NewCMAC returns CMAC keyed by c as a hash.Hash. Sum does not change the
// running state, so more data may be written afterwards.
func NewCMAC(c block.Cipher) hash.Hash {
	m := &cmac{c: c}
	var l [block.BlockSize]byte
	c.Encrypt(l[:], l[:])
	double(&m.k1, &l)
	double(&m.k2, &m.k1)
	clear(l[:])
	return m
}

// double multiplies by x in GF(2^128) with the polynomial
// x^128 + x^7 + x^2 + x + 1, in big-endian byte order.
func double(dst, src *[block.BlockSize]byte) {
	carry := src[0] >> 7
	for i := 0; i < block.BlockSize-1; i++ {
		dst[i] = src[i]<<1 | src[i+1]>>7
	}
	dst[block.BlockSize-1] = src[block.BlockSize-1]<<1 ^ 0x87&-carry
}

func (m *cmac) Size() int      { return block.BlockSize }
func (m *cmac) BlockSize() int { return block.BlockSize }

func (m *cmac) Reset() {
	clear(m.x[:])
	clear(m.buf[:])
	m.n = 0
}

// Write keeps the most recent full block buffered, since the last block is
// treated differently when the message ends.
func (m *cmac) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		if m.n == block.BlockSize {
			xorInto(m.x[:], m.buf[:])
			m.c.Encrypt(m.x[:], m.x[:])
			m.n = 0
		}
		k := copy(m.buf[m.n:], p)
		m.n += k
		p = p[k:]
	}
	return written, nil
}

func (m *cmac) Sum(in []byte) []byte {
	last := m.buf
	if m.n == block.BlockSize {
		xorInto(last[:], m.k1[:])
	} else {
		last[m.n] = 0x80
		clear(last[m.n+1:])
		xorInto(last[:], m.k2[:])
	}
	tag := m.x
	xorInto(tag[:], last[:])
	m.c.Encrypt(tag[:], tag[:])
	return append(in, tag[:]...)
}

func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}
