package envelope

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

const (
	// Version is the payload format version written by Seal.
	Version = 1

	// DefaultContext is the HKDF and transcript context string used when
	// none is configured.
	DefaultContext = "cryptocore:envelope:v1"

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = mlkem768.PublicKeySize
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = mlkem768.PrivateKeySize
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = mlkem768.CiphertextSize

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = mldsa65.PublicKeySize
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = mldsa65.SignatureSize

	// NonceSize is the AEAD nonce length Seal generates.
	NonceSize = 12

	// publicKeyOffset is where circl embeds the public key inside an
	// ML-KEM-768 secret key.
	publicKeyOffset = 1152
)

// Algorithm names recorded in a payload's suite.
const (
	KEMName = "ML-KEM-768"
	SigName = "ML-DSA-65"
	KDFName = "HKDF-SHA-512"
)
