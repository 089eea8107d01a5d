package cryptocore

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vaultsandbox/cryptocore/aead"
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/block"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/modular"
	"github.com/vaultsandbox/cryptocore/numtheory"
)

// Engine ties an algorithm registry to an entropy source and primality
// policy. An Engine holds no per-message state and is safe for concurrent
// use if its random source is.
type Engine struct {
	cfg engineConfig
}

// New returns an Engine configured by opts.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		random:         rand.Reader,
		primalityLevel: defaultPrimalityLevel,
		tagSize:        defaultTagSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.random == nil {
		return nil, coreerr.Argument("cryptocore.New", "nil random source")
	}
	if cfg.primalityLevel < numtheory.QuickCheck || cfg.primalityLevel > numtheory.Verify {
		return nil, coreerr.Argument("cryptocore.New", "primality level %d out of range [0, 2]", int(cfg.primalityLevel))
	}
	if cfg.tagSize < aead.GCMMinTagSize || cfg.tagSize > block.BlockSize {
		return nil, coreerr.Argument("cryptocore.New", "tag size %d out of range [%d, %d]", cfg.tagSize, aead.GCMMinTagSize, block.BlockSize)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
		if cfg.hardwareAES {
			for _, c := range []Cipher{AES128, AES192, AES256} {
				cfg.registry.RegisterCipher(c, fixedKeyAES(c, block.NewPreferredAES))
			}
		}
	}
	return &Engine{cfg: cfg}, nil
}

// Registry returns the engine's algorithm registry.
func (e *Engine) Registry() *Registry {
	return e.cfg.registry
}

// Random returns the engine's entropy source.
func (e *Engine) Random() io.Reader {
	return e.cfg.random
}

func (e *Engine) resolve(spec AlgorithmSpec) AlgorithmSpec {
	if spec.TagSize == 0 {
		spec.TagSize = e.cfg.tagSize
	}
	return spec
}

// NewAEAD returns a streaming AEAD mode for spec keyed with key.
func (e *Engine) NewAEAD(spec AlgorithmSpec, key []byte, dir aead.Direction) (aead.Mode, error) {
	return e.cfg.registry.NewMode(e.resolve(spec), key, dir)
}

// Seal encrypts and authenticates plaintext, returning ciphertext with the
// tag appended.
func (e *Engine) Seal(spec AlgorithmSpec, key, nonce, ad, plaintext []byte) ([]byte, error) {
	m, err := e.NewAEAD(spec, key, aead.Encrypt)
	if err != nil {
		return nil, err
	}
	return aead.Seal(m, nonce, ad, plaintext)
}

// Open verifies and decrypts the output of Seal. A modified ciphertext, tag,
// nonce or associated data yields an error matching ErrIntegrityFailure.
func (e *Engine) Open(spec AlgorithmSpec, key, nonce, ad, ciphertext []byte) ([]byte, error) {
	m, err := e.NewAEAD(spec, key, aead.Decrypt)
	if err != nil {
		return nil, err
	}
	return aead.Open(m, nonce, ad, ciphertext)
}

// NewNonce returns n random bytes from the engine's entropy source.
func (e *Engine) NewNonce(n int) ([]byte, error) {
	nonce := make([]byte, n)
	if _, err := io.ReadFull(e.cfg.random, nonce); err != nil {
		return nil, fmt.Errorf("cryptocore: read nonce: %w", err)
	}
	return nonce, nil
}

// PowerMod returns base^exp mod m. Odd moduli use Montgomery
// multiplication.
func (e *Engine) PowerMod(base, exp, m *bigint.Int, opts ...modular.Option) (*bigint.Int, error) {
	return modular.Exp(base, exp, m, opts...)
}

// IsPrime tests n at the engine's primality level.
func (e *Engine) IsPrime(n *bigint.Int) (bool, error) {
	return numtheory.IsPrime(n, e.cfg.random, e.cfg.primalityLevel)
}

// RandomPrime returns a random prime of exactly bits bits.
func (e *Engine) RandomPrime(bits int) (*bigint.Int, error) {
	return numtheory.RandomPrimeAtLevel(e.cfg.random, bits, bigint.NewInt(1), 1, 2, e.cfg.primalityLevel)
}

// RandomSafePrime returns a random prime p of exactly bits bits with
// (p-1)/2 also prime.
func (e *Engine) RandomSafePrime(bits int) (*bigint.Int, error) {
	return numtheory.RandomSafePrimeAtLevel(e.cfg.random, bits, e.cfg.primalityLevel)
}
