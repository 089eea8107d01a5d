package cryptocore

import (
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidArgument is returned for malformed or out-of-range input,
	// such as a bad key length, an unknown algorithm name, or a negative
	// exponent.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrDivideByZero is returned for division or reduction by zero.
	ErrDivideByZero = coreerr.ErrDivideByZero

	// ErrDecoding is returned when an encoded integer or padding is malformed.
	ErrDecoding = coreerr.ErrDecoding

	// ErrIntegrityFailure is returned when an authentication tag does not verify.
	ErrIntegrityFailure = coreerr.ErrIntegrityFailure

	// ErrInvalidState is returned when an object is used out of order.
	ErrInvalidState = coreerr.ErrInvalidState

	// ErrInternal is returned when an internal consistency check fails.
	ErrInternal = coreerr.ErrInternal
)

// CoreError is implemented by all typed errors returned by this module.
type CoreError interface {
	error
	CoreError() // marker method
}

type (
	// ArgumentError describes a rejected input. It matches ErrInvalidArgument.
	ArgumentError = coreerr.ArgumentError

	// DecodingError reports the position of a bad character. It matches
	// ErrDecoding and ErrInvalidArgument.
	DecodingError = coreerr.DecodingError

	// IntegrityError reports a failed tag check. It matches ErrIntegrityFailure
	// and never carries plaintext.
	IntegrityError = coreerr.IntegrityError

	// StateError reports a call made out of order. It matches ErrInvalidState.
	StateError = coreerr.StateError
)

var (
	_ CoreError = (*ArgumentError)(nil)
	_ CoreError = (*DecodingError)(nil)
	_ CoreError = (*IntegrityError)(nil)
	_ CoreError = (*StateError)(nil)
)
