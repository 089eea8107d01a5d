package modular

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// config holds the settings shared by the exponentiators.
type config struct {
	hints             Usage
	windowBits        int
	disableMontgomery bool
}

// Option configures an exponentiator.
type Option func(*config)

// WithHints adds usage hints.
func WithHints(h Usage) Option {
	return func(c *config) {
		c.hints |= h
	}
}

// WithFixedBase marks the base as reused across many exponents, which
// favours a larger precomputed table.
func WithFixedBase() Option {
	return WithHints(BaseIsFixed)
}

// WithFixedExponent marks the exponent as reused across many bases.
func WithFixedExponent() Option {
	return WithHints(ExpIsFixed)
}

// WithLargeExponent marks the exponent as large relative to the modulus.
func WithLargeExponent() Option {
	return WithHints(ExpIsLarge)
}

// WithSmallBase marks the base as small.
func WithSmallBase() Option {
	return WithHints(BaseIsSmall)
}

// WithWindowBits forces the window width instead of deriving it from the
// exponent size. n must be between 1 and MaxWindowBits.
func WithWindowBits(n int) Option {
	return func(c *config) {
		c.windowBits = n
	}
}

// WithoutMontgomery makes NewPowerMod use the fixed-window exponentiator for
// odd moduli too.
func WithoutMontgomery() Option {
	return func(c *config) {
		c.disableMontgomery = true
	}
}

func newConfig(op string, opts []Option) (config, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.windowBits < 0 || c.windowBits > MaxWindowBits {
		return c, coreerr.Argument(op, "window bits %d outside [1, %d]", c.windowBits, MaxWindowBits)
	}
	return c, nil
}

// window returns the forced width or the heuristic choice.
func (c *config) window(expBits, baseBits int) int {
	if c.windowBits > 0 {
		return c.windowBits
	}
	return WindowBits(expBits, baseBits, c.hints)
}
