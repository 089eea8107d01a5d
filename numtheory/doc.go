// Package numtheory implements number-theoretic algorithms over bigint.Int.
//
// # Divisibility
//
// [GCD] and [LCM] use the binary algorithm. [InverseMod] runs the binary
// extended GCD and returns 0 when no inverse exists, so callers must check
// the result rather than an error.
//
// # Primality
//
// [IsPrime] answers exactly for values up to 65521 and otherwise runs
// Miller-Rabin, first with base 2 and then with random bases whose count
// depends on the candidate size and the requested [Level]:
//
//	ok, err := numtheory.IsPrime(n, rand.Reader, numtheory.Verify)
//
// [RandomPrime] draws a random odd start with its top two bits set, walks
// forward in steps of the requested modulus and filters candidates through
// an incremental sieve over the small-prime table before testing them.
//
// None of these functions run in constant time.
package numtheory
