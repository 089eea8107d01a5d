// Package aead implements authenticated encryption over block.Cipher.
//
// # Modes
//
// [NewGCM] and [NewEAX] return a [Mode], a streaming state machine bound to
// a key and a [Direction]. The one-shot helpers cover the common case:
//
//	enc, _ := aead.NewGCM(c, 16, aead.Encrypt)
//	ct, err := aead.Seal(enc, nonce, ad, plaintext)
//
//	dec, _ := aead.NewGCM(c, 16, aead.Decrypt)
//	pt, err := aead.Open(dec, nonce, ad, ct)
//	if errors.Is(err, aead.ErrIntegrityFailure) {
//	    // reject the message
//	}
//
// Decryption never releases plaintext before the tag is verified, and tag
// comparison is constant time.
//
// # Building blocks
//
// [NewCTR] is big-endian counter mode with a configurable counter width.
// [NewCMAC] is CMAC (OMAC1) exposed as a hash.Hash. [GHASH] is GCM's
// polynomial hash, computed with a bit-serial multiply that performs the
// same operations for every input.
package aead
