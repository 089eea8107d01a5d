package block

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Errors returned by this package. They are the same values exported by the
// root cryptocore package.
var (
	// ErrInvalidArgument is returned for an unsupported key length.
	ErrInvalidArgument = coreerr.ErrInvalidArgument

	// ErrDecoding is returned by Unpad for malformed padding.
	ErrDecoding = coreerr.ErrDecoding
)
