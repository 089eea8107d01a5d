package bigint

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Errors returned by this package. They are the same values exported by the
// root cryptocore package.
var (
	// ErrInvalidArgument is returned for malformed or out-of-range input.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrDivideByZero is returned for division or reduction by zero.
	ErrDivideByZero = coreerr.ErrDivideByZero

	// ErrDecoding is returned when a digit is not valid for the base.
	ErrDecoding = coreerr.ErrDecoding
)
