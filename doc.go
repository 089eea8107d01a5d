// Package cryptocore is a cryptographic core: arbitrary-precision integer
// arithmetic with modular exponentiation and number theory, and block
// ciphers with authenticated encryption modes.
//
// The root package ties these together behind an [Engine], configured with
// functional options and an explicit algorithm [Registry]. The building
// blocks live in their own packages and can be used directly:
//
//   - [github.com/vaultsandbox/cryptocore/bigint]: signed big integers
//   - [github.com/vaultsandbox/cryptocore/modular]: Barrett reduction and
//     Montgomery or fixed-window exponentiation
//   - [github.com/vaultsandbox/cryptocore/numtheory]: GCD, inverses, Jacobi
//     symbols, square roots, primality testing and prime generation
//   - [github.com/vaultsandbox/cryptocore/block]: AES, Serpent and padding
//   - [github.com/vaultsandbox/cryptocore/aead]: CTR, CMAC, GCM and EAX
//   - [github.com/vaultsandbox/cryptocore/envelope]: post-quantum sealed
//     payloads built on the above
//
// Basic usage:
//
//	eng, err := cryptocore.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spec := cryptocore.AlgorithmSpec{Cipher: cryptocore.AES256, Mode: cryptocore.GCM}
//	nonce, _ := eng.NewNonce(12)
//	ct, err := eng.Seal(spec, key, nonce, header, plaintext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pt, err := eng.Open(spec, key, nonce, header, ct)
//	if errors.Is(err, cryptocore.ErrIntegrityFailure) {
//	    // ciphertext, nonce or header was modified
//	}
//
// # Errors
//
// Every package returns errors that match one of the sentinels declared
// here with errors.Is, and typed errors implement [CoreError]. Bad input
// matches [ErrInvalidArgument], division by zero [ErrDivideByZero], a
// failed tag check [ErrIntegrityFailure] and calls made out of order
// [ErrInvalidState].
//
// # Timing
//
// Montgomery multiplication, the exponentiation window lookup, GHASH and tag
// comparison run in time independent of secret values. Division, decimal
// conversion, primality testing and the software AES tables do not.
package cryptocore
