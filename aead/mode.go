package aead

import (
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Direction selects whether a Mode encrypts or decrypts.
type Direction int

const (
	// Encrypt seals plaintext and appends a tag.
	Encrypt Direction = iota
	// Decrypt verifies the tag and returns plaintext.
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Mode is a streaming authenticated cipher mode bound to one key and one
// direction.
//
// A message is processed as SetAssociatedData (optional), Start, any number
// of Update calls, then Finish. Associated data stays set for later
// messages until replaced or until Reset. Update and Finish append their
// output to dst and return the extended slice.
//
// When decrypting, Update only buffers: no plaintext is released until
// Finish has verified the tag. On a mismatch Finish wipes its buffers and
// returns dst unchanged with an *IntegrityError.
type Mode interface {
	// Name returns the mode name including the cipher, e.g. "AES-256/GCM(16)".
	Name() string

	// Direction reports whether the mode encrypts or decrypts.
	Direction() Direction

	// TagSize returns the tag length in bytes.
	TagSize() int

	// ValidNonceLength reports whether Start accepts a nonce of n bytes.
	ValidNonceLength(n int) bool

	// SetAssociatedData sets data that is authenticated but not encrypted.
	// It must be called before Start.
	SetAssociatedData(ad []byte) error

	// Start begins a message under nonce.
	Start(nonce []byte) error

	// Update processes src.
	Update(dst, src []byte) ([]byte, error)

	// Finish processes src and completes the message. For encryption the
	// tag is appended. For decryption src must end with the tag.
	Finish(dst, src []byte) ([]byte, error)

	// Reset abandons any message in progress and clears associated data.
	// The key is kept.
	Reset()
}

// Seal encrypts plaintext in one call and returns ciphertext followed by the
// tag. m must be an Encrypt mode.
func Seal(m Mode, nonce, ad, plaintext []byte) ([]byte, error) {
	if m.Direction() != Encrypt {
		return nil, coreerr.State("aead.Seal", "mode is not an encryptor")
	}
	if err := m.SetAssociatedData(ad); err != nil {
		return nil, err
	}
	if err := m.Start(nonce); err != nil {
		return nil, err
	}
	return m.Finish(make([]byte, 0, len(plaintext)+m.TagSize()), plaintext)
}

// Open verifies and decrypts ciphertext (with its tag appended) in one call.
// m must be a Decrypt mode.
func Open(m Mode, nonce, ad, ciphertext []byte) ([]byte, error) {
	if m.Direction() != Decrypt {
		return nil, coreerr.State("aead.Open", "mode is not a decryptor")
	}
	if err := m.SetAssociatedData(ad); err != nil {
		return nil, err
	}
	if err := m.Start(nonce); err != nil {
		return nil, err
	}
	return m.Finish(nil, ciphertext)
}

// sliceForAppend extends in by n bytes, reusing its capacity when it can.
// head is the whole result and tail the new n bytes.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// stream holds the message state shared by GCM and EAX: whether a message
// is open, and the buffered ciphertext while decrypting.
type stream struct {
	name    string
	dir     Direction
	tagSize int
	started bool
	pending []byte
}

func (s *stream) Direction() Direction { return s.dir }
func (s *stream) TagSize() int         { return s.tagSize }

func (s *stream) requireStarted(op string) error {
	if !s.started {
		return coreerr.State(s.name+"."+op, "Start has not been called")
	}
	return nil
}

func (s *stream) requireIdle(op string) error {
	if s.started {
		return coreerr.State(s.name+"."+op, "message in progress")
	}
	return nil
}

// splitTag takes the buffered ciphertext plus src and separates the tag.
func (s *stream) splitTag(src []byte) (text, tag []byte, err error) {
	s.pending = append(s.pending, src...)
	if len(s.pending) < s.tagSize {
		s.abandon()
		return nil, nil, &coreerr.IntegrityError{Mode: s.name}
	}
	cut := len(s.pending) - s.tagSize
	return s.pending[:cut], s.pending[cut:], nil
}

func (s *stream) abandon() {
	clear(s.pending)
	s.pending = s.pending[:0]
	s.started = false
}
