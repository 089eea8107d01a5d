package aead

import (
	"crypto/subtle"
	"fmt"

	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// GCM tag bounds in bytes.
const (
	GCMMinTagSize = 8
	GCMMaxTagSize = 16
)

// gcmStandardNonce is the nonce length that maps directly onto the
// counter block.
const gcmStandardNonce = 12

type gcm struct {
	stream
	c       block.Cipher
	ghash   *GHASH
	ctr     *ctr
	ad      []byte
	ekJ0    [block.BlockSize]byte
	textLen uint64
}

// NewGCM returns GCM over c with a tag of tagSize bytes (8 to 16). Nonces
// of any non-zero length are accepted; 12 bytes is the fast path.
func NewGCM(c block.Cipher, tagSize int, dir Direction) (Mode, error) {
	if c.BlockSize() != block.BlockSize {
		return nil, coreerr.Argument("aead.NewGCM", "cipher block size %d, want %d", c.BlockSize(), block.BlockSize)
	}
	if tagSize < GCMMinTagSize || tagSize > GCMMaxTagSize {
		return nil, coreerr.Argument("aead.NewGCM", "tag size %d out of range [%d, %d]", tagSize, GCMMinTagSize, GCMMaxTagSize)
	}

	var h [block.BlockSize]byte
	c.Encrypt(h[:], h[:])
	g, err := NewGHASH(h[:])
	if err != nil {
		return nil, err
	}
	clear(h[:])

	return &gcm{
		stream: stream{name: fmt.Sprintf("%s/GCM(%d)", c.Name(), tagSize), dir: dir, tagSize: tagSize},
		c:      c,
		ghash:  g,
		ctr:    &ctr{c: c, counterBytes: 4},
	}, nil
}

func (m *gcm) Name() string { return m.name }

func (m *gcm) ValidNonceLength(n int) bool { return n > 0 }

func (m *gcm) SetAssociatedData(ad []byte) error {
	if err := m.requireIdle("SetAssociatedData"); err != nil {
		return err
	}
	m.ad = append(m.ad[:0], ad...)
	return nil
}

func (m *gcm) Start(nonce []byte) error {
	if err := m.requireIdle("Start"); err != nil {
		return err
	}
	if !m.ValidNonceLength(len(nonce)) {
		return coreerr.Argument(m.name+".Start", "invalid nonce length %d", len(nonce))
	}

	var j0 [block.BlockSize]byte
	if len(nonce) == gcmStandardNonce {
		copy(j0[:], nonce)
		j0[block.BlockSize-1] = 1
	} else {
		m.ghash.Reset()
		m.ghash.Write(nonce)
		j0 = m.ghash.Sum(0, uint64(len(nonce)))
	}
	m.c.Encrypt(m.ekJ0[:], j0[:])

	m.ctr.setIV(j0[:])
	m.ctr.increment()

	m.ghash.Reset()
	m.ghash.Write(m.ad)
	m.ghash.Pad()
	m.textLen = 0
	m.started = true
	return nil
}

func (m *gcm) Update(dst, src []byte) ([]byte, error) {
	if err := m.requireStarted("Update"); err != nil {
		return dst, err
	}
	if m.dir == Decrypt {
		m.pending = append(m.pending, src...)
		return dst, nil
	}
	return m.encrypt(dst, src), nil
}

func (m *gcm) encrypt(dst, src []byte) []byte {
	head, out := sliceForAppend(dst, len(src))
	m.ctr.XORKeyStream(out, src)
	m.ghash.Write(out)
	m.textLen += uint64(len(src))
	return head
}

func (m *gcm) tag() [block.BlockSize]byte {
	s := m.ghash.Sum(uint64(len(m.ad)), m.textLen)
	xorInto(s[:], m.ekJ0[:])
	return s
}

func (m *gcm) Finish(dst, src []byte) ([]byte, error) {
	if err := m.requireStarted("Finish"); err != nil {
		return dst, err
	}
	defer m.ctr.wipe()

	if m.dir == Encrypt {
		dst = m.encrypt(dst, src)
		t := m.tag()
		m.started = false
		return append(dst, t[:m.tagSize]...), nil
	}

	text, received, err := m.splitTag(src)
	if err != nil {
		return dst, err
	}
	m.ghash.Write(text)
	m.textLen = uint64(len(text))
	t := m.tag()
	if subtle.ConstantTimeCompare(t[:m.tagSize], received) != 1 {
		m.abandon()
		return dst, &coreerr.IntegrityError{Mode: m.name}
	}

	head, out := sliceForAppend(dst, len(text))
	m.ctr.XORKeyStream(out, text)
	m.abandon()
	return head, nil
}

func (m *gcm) Reset() {
	m.abandon()
	m.ctr.wipe()
	m.ghash.Reset()
	clear(m.ad)
	m.ad = m.ad[:0]
}
