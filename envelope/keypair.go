package envelope

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// randReader is the default random source. Nil means crypto/rand.
var randReader io.Reader

func kemScheme() kem.Scheme { return mlkem768.Scheme() }

// Keypair is an ML-KEM-768 keypair for receiving payloads.
type Keypair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeypair creates a new ML-KEM-768 keypair from rng, or from
// crypto/rand when rng is nil.
func GenerateKeypair(rng io.Reader) (*Keypair, error) {
	if rng == nil {
		rng = randReader
	}
	pub, priv, err := mlkem768.GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &Keypair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: ToBase64URL(pubBytes),
	}, nil
}

// KeypairFromSecretKey rebuilds a keypair from the secret key, which
// embeds the public key.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	if len(secretKey) != MLKEMSecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}
	if _, err := kemScheme().UnmarshalBinaryPrivateKey(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}

	publicKey := make([]byte, MLKEMPublicKeySize)
	copy(publicKey, secretKey[publicKeyOffset:publicKeyOffset+MLKEMPublicKeySize])

	return &Keypair{
		PublicKey:    publicKey,
		SecretKey:    secretKey,
		PublicKeyB64: ToBase64URL(publicKey),
	}, nil
}

// Validate reports whether the keypair has consistent sizes and encoding.
func (k *Keypair) Validate() bool {
	if k == nil || k.PublicKeyB64 == "" {
		return false
	}
	if len(k.PublicKey) != MLKEMPublicKeySize || len(k.SecretKey) != MLKEMSecretKeySize {
		return false
	}
	decoded, err := FromBase64URL(k.PublicKeyB64)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(decoded, k.PublicKey) == 1
}

// Decapsulate recovers the shared secret from a KEM ciphertext.
func (k *Keypair) Decapsulate(ctKem []byte) ([]byte, error) {
	if len(ctKem) != MLKEMCiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}
	sk, err := kemScheme().UnmarshalBinaryPrivateKey(k.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("unmarshal secret key: %w", err)
	}
	return kemScheme().Decapsulate(sk, ctKem)
}

// encapsulate draws a seed from rng and encapsulates to publicKey.
func encapsulate(publicKey []byte, rng io.Reader) (ctKem, shared []byte, err error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}
	s := kemScheme()
	pk, err := s.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("unmarshal public key: %w", err)
	}
	seed := make([]byte, s.EncapsulationSeedSize())
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, fmt.Errorf("read encapsulation seed: %w", err)
	}
	defer clear(seed)
	return s.EncapsulateDeterministically(pk, seed)
}

// SigningKey is an ML-DSA-65 key used to sign payloads.
type SigningKey struct {
	priv *mldsa65.PrivateKey
	// PublicKey is the raw ML-DSA-65 public key bytes.
	PublicKey []byte
}

// GenerateSigningKey creates a new ML-DSA-65 signing key from rng, or from
// crypto/rand when rng is nil.
func GenerateSigningKey(rng io.Reader) (*SigningKey, error) {
	if rng == nil {
		rng = randReader
	}
	pub, priv, err := mldsa65.GenerateKey(rng)
	if err != nil {
		return nil, err
	}
	pubBytes, _ := pub.MarshalBinary()
	return &SigningKey{priv: priv, PublicKey: pubBytes}, nil
}

// MarshalBinary returns the packed private key.
func (s *SigningKey) MarshalBinary() ([]byte, error) {
	return s.priv.MarshalBinary()
}

// SigningKeyFromBytes unpacks a key produced by SigningKey.MarshalBinary.
func SigningKeyFromBytes(b []byte) (*SigningKey, error) {
	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("unmarshal signing key: %w", err)
	}
	pub, ok := priv.Public().(*mldsa65.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unmarshal signing key: unexpected public key type")
	}
	pubBytes, _ := pub.MarshalBinary()
	return &SigningKey{priv: &priv, PublicKey: pubBytes}, nil
}

func (s *SigningKey) sign(message []byte) ([]byte, error) {
	sig := make([]byte, MLDSASignatureSize)
	if err := mldsa65.SignTo(s.priv, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}
