package aead

import (
	"crypto/cipher"
	"crypto/subtle"

	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// ctrBatch is the number of counter blocks encrypted per refill, so ciphers
// with a multi-block path see runs of blocks.
const ctrBatch = 8

// ctr is big-endian counter mode. Only the low counterBytes bytes of the
// counter block are incremented, wrapping within that field.
type ctr struct {
	c            block.Cipher
	counterBytes int
	next         [block.BlockSize]byte
	counters     [ctrBatch * block.BlockSize]byte
	ks           [ctrBatch * block.BlockSize]byte
	pos          int
}

// NewCTR returns a counter-mode keystream starting at iv. counterBytes
// selects how many trailing bytes of the block form the counter, from 4 to
// the block size.
func NewCTR(c block.Cipher, iv []byte, counterBytes int) (cipher.Stream, error) {
	if len(iv) != block.BlockSize {
		return nil, coreerr.Argument("aead.NewCTR", "IV length %d, want %d", len(iv), block.BlockSize)
	}
	if counterBytes < 4 || counterBytes > block.BlockSize {
		return nil, coreerr.Argument("aead.NewCTR", "counter width %d out of range", counterBytes)
	}
	s := &ctr{c: c, counterBytes: counterBytes}
	s.setIV(iv)
	return s, nil
}

func (s *ctr) setIV(iv []byte) {
	copy(s.next[:], iv)
	s.pos = len(s.ks)
}

func (s *ctr) increment() {
	for i := block.BlockSize - 1; i >= block.BlockSize-s.counterBytes; i-- {
		s.next[i]++
		if s.next[i] != 0 {
			return
		}
	}
}

func (s *ctr) refill() {
	for i := 0; i < ctrBatch; i++ {
		copy(s.counters[i*block.BlockSize:], s.next[:])
		s.increment()
	}
	s.c.EncryptN(s.ks[:], s.counters[:], ctrBatch)
	s.pos = 0
}

// XORKeyStream implements cipher.Stream.
func (s *ctr) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("aead: output smaller than input")
	}
	for len(src) > 0 {
		if s.pos == len(s.ks) {
			s.refill()
		}
		n := subtle.XORBytes(dst, src, s.ks[s.pos:])
		s.pos += n
		dst, src = dst[n:], src[n:]
	}
}

// wipe clears buffered keystream.
func (s *ctr) wipe() {
	clear(s.ks[:])
	clear(s.counters[:])
	s.pos = len(s.ks)
}
