package cryptocore

import (
	"io"

	"github.com/vaultsandbox/cryptocore/numtheory"
)

const (
	defaultPrimalityLevel = numtheory.Check
	defaultTagSize        = DefaultTagSize
)

// engineConfig holds configuration for an Engine.
type engineConfig struct {
	random         io.Reader
	primalityLevel numtheory.Level
	hardwareAES    bool
	registry       *Registry
	tagSize        int
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithRandom sets the entropy source used for nonces, primality witnesses
// and prime generation. Default: crypto/rand.Reader
func WithRandom(r io.Reader) Option {
	return func(c *engineConfig) {
		c.random = r
	}
}

// WithPrimalityLevel sets the assurance level for IsPrime, RandomPrime and
// RandomSafePrime: 0 is a quick check, 1 a standard check and 2
// verification grade.
// Default: 1
func WithPrimalityLevel(level int) Option {
	return func(c *engineConfig) {
		c.primalityLevel = numtheory.Level(level)
	}
}

// WithHardwareAES makes the default registry build AES on crypto/aes when
// the CPU has AES instructions, falling back to the software tables
// otherwise. Has no effect together with WithRegistry.
func WithHardwareAES(enabled bool) Option {
	return func(c *engineConfig) {
		c.hardwareAES = enabled
	}
}

// WithRegistry replaces the default algorithm registry.
func WithRegistry(r *Registry) Option {
	return func(c *engineConfig) {
		c.registry = r
	}
}

// WithTagSize sets the tag length used when an AlgorithmSpec leaves
// TagSize zero. Default: 16
func WithTagSize(n int) Option {
	return func(c *engineConfig) {
		c.tagSize = n
	}
}
