// Package envelope seals messages to a post-quantum public key and signs
// them, using the cryptocore engine for the symmetric layer.
//
// # Algorithm Suite
//
//   - ML-KEM-768 (NIST FIPS 203): key encapsulation for a fresh shared
//     secret per payload.
//
//   - HKDF-SHA-512 (RFC 5869): derives the AEAD key from the shared secret,
//     salted with SHA-256 of the KEM ciphertext and bound to the context
//     string and associated data.
//
//   - AEAD: AES-256/GCM by default. Any cipher and mode registered with the
//     engine can be selected with [WithAlgorithm]; the choice is recorded in
//     the payload and read back by [Open].
//
//   - ML-DSA-65 (NIST FIPS 204): signs the transcript of version, suite,
//     context and every raw field.
//
// # Critical Security Notes
//
// Signature verification MUST be performed BEFORE decryption. Always use
// [VerifySignature] before [Open]:
//
//	if err := envelope.VerifySignature(payload, envelope.WithPinnedSigner(pk)); err != nil {
//	    return nil, fmt.Errorf("signature verification failed: %w", err)
//	}
//	plaintext, err := envelope.Open(payload, keypair)
//
// Nonces are drawn at random for every payload and every payload carries
// its own KEM ciphertext, so no key is ever used twice.
//
// # Key Management
//
// Use [GenerateKeypair] for a recipient keypair and [GenerateSigningKey]
// for a signer. The KEM secret key embeds the public key, which
// [KeypairFromSecretKey] extracts. Secret keys should never be logged or
// stored in version control.
package envelope
