// Package testrand supplies reproducible randomness for tests.
package testrand

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Reader is a deterministic ChaCha20 keystream. Two readers built from the
// same seed return identical byte sequences.
type Reader struct {
	c *chacha20.Cipher
}

// New returns a Reader keyed by SHA-256 of seed.
func New(seed string) *Reader {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic("testrand: " + err.Error())
	}
	return &Reader{c: c}
}

// Read fills p with keystream bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.c.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = (*Reader)(nil)
