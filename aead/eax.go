package aead

import (
	"crypto/subtle"
	"hash"

	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// EAXMinTagSize is the shortest EAX tag accepted, in bytes.
const EAXMinTagSize = 8

// OMAC tweaks separating the nonce, header and ciphertext MACs.
const (
	tweakNonce = iota
	tweakHeader
	tweakText
)

type eax struct {
	stream
	c        block.Cipher
	mac      hash.Hash
	textMac  hash.Hash
	ctr      *ctr
	nonceMac [block.BlockSize]byte
	adMac    [block.BlockSize]byte
}

// NewEAX returns EAX over c with a tag of tagSize bytes, from 8 to the
// block size. Nonces of any length are accepted.
func NewEAX(c block.Cipher, tagSize int, dir Direction) (Mode, error) {
	if tagSize < EAXMinTagSize || tagSize > c.BlockSize() {
		return nil, coreerr.Argument("aead.NewEAX", "tag size %d out of range [%d, %d]", tagSize, EAXMinTagSize, c.BlockSize())
	}
	m := &eax{
		stream:  stream{name: c.Name() + "/EAX", dir: dir, tagSize: tagSize},
		c:       c,
		mac:     NewCMAC(c),
		textMac: NewCMAC(c),
		ctr:     &ctr{c: c, counterBytes: block.BlockSize},
	}
	m.omac(&m.adMac, tweakHeader, nil)
	return m, nil
}

// omac computes OMAC^t(data): CMAC over a block holding the tweak t
// followed by data.
func (m *eax) omac(out *[block.BlockSize]byte, tweak byte, data []byte) {
	m.mac.Reset()
	m.mac.Write(tweakBlock(tweak))
	m.mac.Write(data)
	m.mac.Sum(out[:0])
}

func tweakBlock(t byte) []byte {
	var b [block.BlockSize]byte
	b[block.BlockSize-1] = t
	return b[:]
}

func (m *eax) Name() string { return m.name }

func (m *eax) ValidNonceLength(int) bool { return true }

func (m *eax) SetAssociatedData(ad []byte) error {
	if err := m.requireIdle("SetAssociatedData"); err != nil {
		return err
	}
	m.omac(&m.adMac, tweakHeader, ad)
	return nil
}

func (m *eax) Start(nonce []byte) error {
	if err := m.requireIdle("Start"); err != nil {
		return err
	}
	m.omac(&m.nonceMac, tweakNonce, nonce)
	m.ctr.setIV(m.nonceMac[:])

	m.textMac.Reset()
	m.textMac.Write(tweakBlock(tweakText))
	m.started = true
	return nil
}

func (m *eax) Update(dst, src []byte) ([]byte, error) {
	if err := m.requireStarted("Update"); err != nil {
		return dst, err
	}
	if m.dir == Decrypt {
		m.pending = append(m.pending, src...)
		return dst, nil
	}
	return m.encrypt(dst, src), nil
}

func (m *eax) encrypt(dst, src []byte) []byte {
	head, out := sliceForAppend(dst, len(src))
	m.ctr.XORKeyStream(out, src)
	m.textMac.Write(out)
	return head
}

func (m *eax) tag() [block.BlockSize]byte {
	var t [block.BlockSize]byte
	m.textMac.Sum(t[:0])
	xorInto(t[:], m.nonceMac[:])
	xorInto(t[:], m.adMac[:])
	return t
}

func (m *eax) Finish(dst, src []byte) ([]byte, error) {
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
	m.textMac.Write(text)
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

func (m *eax) Reset() {
	m.abandon()
	m.ctr.wipe()
	m.textMac.Reset()
	m.omac(&m.adMac, tweakHeader, nil)
}
