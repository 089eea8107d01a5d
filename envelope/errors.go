package envelope

import "errors"

var (
	// ErrInvalidSecretKeySize is returned when a KEM secret key has the wrong size.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a KEM public key has the wrong size.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext has the wrong size.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrSignerMismatch is returned when the payload's signing key differs
	// from the pinned key.
	ErrSignerMismatch = errors.New("signer public key mismatch: payload key differs from pinned key")

	// ErrDecryptionFailed is returned when the AEAD layer rejects the
	// payload. The error also matches cryptocore.ErrIntegrityFailure when
	// the tag did not verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPayload is returned when a payload field is missing or not
	// valid base64url.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidAlgorithm is returned when a payload names an unsupported
	// algorithm.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)
