package envelope

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"github.com/vaultsandbox/cryptocore"
)

// Seal encrypts plaintext to the ML-KEM-768 public key recipient and signs
// the result with signer.
//
// The steps are:
//  1. ML-KEM-768 encapsulation to a fresh shared secret
//  2. HKDF-SHA-512 key derivation bound to the KEM ciphertext and aad
//  3. AEAD encryption under a random nonce
//  4. ML-DSA-65 signature over the transcript
func Seal(recipient []byte, signer *SigningKey, plaintext, aad []byte, opts ...Option) (*Payload, error) {
	if signer == nil {
		return nil, fmt.Errorf("%w: nil signer", cryptocore.ErrInvalidArgument)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	eng := cfg.engine

	ctKem, shared, err := encapsulate(recipient, eng.Random())
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}
	defer clear(shared)

	key, err := deriveKey(shared, ctKem, aad, cfg.context, cfg.suite.Cipher.KeySize())
	if err != nil {
		return nil, err
	}
	defer clear(key)

	nonce, err := eng.NewNonce(NonceSize)
	if err != nil {
		return nil, err
	}
	ciphertext, err := eng.Seal(cfg.suite, key, nonce, aad, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	algs := AlgorithmSuite{KEM: KEMName, Sig: SigName, AEAD: cfg.suite.String(), KDF: KDFName}
	d := &decoded{ctKem: ctKem, nonce: nonce, aad: aad, ciphertext: ciphertext, sigPk: signer.PublicKey}
	sig, err := signer.sign(buildTranscript(Version, algs, cfg.context, d))
	if err != nil {
		return nil, err
	}

	return &Payload{
		V:          Version,
		Algs:       algs,
		CtKem:      ToBase64URL(ctKem),
		Nonce:      ToBase64URL(nonce),
		AAD:        ToBase64URL(aad),
		Ciphertext: ToBase64URL(ciphertext),
		Sig:        ToBase64URL(sig),
		SigPk:      ToBase64URL(signer.PublicKey),
	}, nil
}

// VerifySignature checks the ML-DSA-65 signature on payload.
// It MUST be called, and succeed, before Open.
func VerifySignature(payload *Payload, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	d, err := payload.decode()
	if err != nil {
		return err
	}

	if cfg.pinned != nil && subtle.ConstantTimeCompare(cfg.pinned, d.sigPk) != 1 {
		return ErrSignerMismatch
	}

	var pk mldsa65.PublicKey
	if err := pk.UnmarshalBinary(d.sigPk); err != nil {
		return fmt.Errorf("%w: unmarshal public key: %v", ErrSignatureVerificationFailed, err)
	}
	if !mldsa65.Verify(&pk, buildTranscript(payload.V, payload.Algs, cfg.context, d), nil, d.sig) {
		return ErrSignatureVerificationFailed
	}
	return nil
}

// Open decrypts payload with keypair. It does NOT verify the signature;
// call VerifySignature first.
func Open(payload *Payload, keypair *Keypair, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	spec, err := payload.suite()
	if err != nil {
		return nil, err
	}
	d, err := payload.decode()
	if err != nil {
		return nil, err
	}

	shared, err := keypair.Decapsulate(d.ctKem)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}
	defer clear(shared)

	key, err := deriveKey(shared, d.ctKem, d.aad, cfg.context, spec.Cipher.KeySize())
	if err != nil {
		return nil, err
	}
	defer clear(key)

	plaintext, err := cfg.engine.Open(spec, key, d.nonce, d.aad, d.ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// suite checks the fixed algorithms and parses the AEAD name.
func (p *Payload) suite() (cryptocore.AlgorithmSpec, error) {
	if p.Algs.KEM != KEMName || p.Algs.Sig != SigName || p.Algs.KDF != KDFName {
		return cryptocore.AlgorithmSpec{}, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, p.Algs)
	}
	spec, err := cryptocore.ParseAlgorithm(p.Algs.AEAD)
	if err != nil {
		return cryptocore.AlgorithmSpec{}, errors.Join(ErrInvalidAlgorithm, err)
	}
	return spec, nil
}
