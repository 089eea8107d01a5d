package numtheory

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Errors returned by this package. They are the same values exported by the
// root cryptocore package.
var (
	// ErrInvalidArgument is returned for out-of-domain input such as a
	// negative value passed to InverseMod or a prime request of one bit.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrDivideByZero is returned by InverseMod for a zero modulus.
	ErrDivideByZero = coreerr.ErrDivideByZero
)
