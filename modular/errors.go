package modular

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Errors returned by this package. They are the same values exported by the
// root cryptocore package.
var (
	// ErrInvalidArgument is returned for a non-positive modulus, an even
	// modulus passed to NewMontgomery, or a negative exponent.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrInvalidState is returned by Execute before both SetBase and
	// SetExponent have been called.
	ErrInvalidState = coreerr.ErrInvalidState
)
