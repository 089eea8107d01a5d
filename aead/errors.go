package aead

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Errors returned by this package. They are the same values exported by the
// root cryptocore package.
var (
	// ErrInvalidArgument is returned for a bad tag size or nonce length.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrIntegrityFailure is returned by Finish and Open when the tag does
	// not verify. No plaintext accompanies it.
	ErrIntegrityFailure = coreerr.ErrIntegrityFailure

	// ErrInvalidState is returned for calls made out of order, such as
	// Update before Start.
	ErrInvalidState = coreerr.ErrInvalidState
)
