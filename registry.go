package cryptocore

import (
	"slices"
	"sync"

	"github.com/vaultsandbox/cryptocore/aead"
	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// CipherFactory builds a keyed block cipher.
type CipherFactory func(key []byte) (block.Cipher, error)

// ModeFactory builds an AEAD mode over a keyed cipher.
type ModeFactory func(c block.Cipher, tagSize int, dir aead.Direction) (aead.Mode, error)

// Registry maps algorithm identifiers to constructors. It is passed to an
// Engine explicitly; there is no process-wide instance. A Registry is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	ciphers map[Cipher]CipherFactory
	modes   map[Mode]ModeFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ciphers: make(map[Cipher]CipherFactory),
		modes:   make(map[Mode]ModeFactory),
	}
}

// DefaultRegistry returns a registry holding the software AES variants,
// Serpent, GCM and EAX.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Cipher{AES128, AES192, AES256} {
		r.RegisterCipher(c, fixedKeyAES(c, block.NewAES))
	}
	r.RegisterCipher(Serpent, block.NewSerpent)
	r.RegisterMode(GCM, aead.NewGCM)
	r.RegisterMode(EAX, aead.NewEAX)
	return r
}

// fixedKeyAES pins an AES constructor to the key size of c.
func fixedKeyAES(c Cipher, newAES CipherFactory) CipherFactory {
	want := c.KeySize()
	return func(key []byte) (block.Cipher, error) {
		if len(key) != want {
			return nil, coreerr.Argument("cryptocore."+c.String(), "key length %d, want %d", len(key), want)
		}
		return newAES(key)
	}
}

// RegisterCipher sets the constructor for c, replacing any previous one.
func (r *Registry) RegisterCipher(c Cipher, f CipherFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ciphers[c] = f
}

// RegisterMode sets the constructor for m, replacing any previous one.
func (r *Registry) RegisterMode(m Mode, f ModeFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes[m] = f
}

// NewCipher keys a new instance of c.
func (r *Registry) NewCipher(c Cipher, key []byte) (block.Cipher, error) {
	r.mu.RLock()
	f, ok := r.ciphers[c]
	r.mu.RUnlock()
	if !ok {
		return nil, coreerr.Argument("cryptocore.NewCipher", "cipher %s not registered", c)
	}
	return f(key)
}

// NewMode keys the cipher named by spec and wraps it in the spec's mode.
func (r *Registry) NewMode(spec AlgorithmSpec, key []byte, dir aead.Direction) (aead.Mode, error) {
	r.mu.RLock()
	f, ok := r.modes[spec.Mode]
	r.mu.RUnlock()
	if !ok {
		return nil, coreerr.Argument("cryptocore.NewMode", "mode %s not registered", spec.Mode)
	}
	c, err := r.NewCipher(spec.Cipher, key)
	if err != nil {
		return nil, err
	}
	return f(c, spec.tagSize(), dir)
}

// Ciphers returns the registered cipher identifiers in ascending order.
func (r *Registry) Ciphers() []Cipher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Cipher, 0, len(r.ciphers))
	for c := range r.ciphers {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
