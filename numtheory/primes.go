package numtheory

// PrimeTableSize is the number of odd primes below 65536.
const PrimeTableSize = 6541

// Primes holds the odd primes 3, 5, ..., 65521 in increasing order. It is
// shared and must not be modified.
var Primes = sieveOddPrimes(1 << 16)

// sieveOddPrimes returns the odd primes below limit.
func sieveOddPrimes(limit int) []uint16 {
	composite := make([]bool, limit)
	out := make([]uint16, 0, PrimeTableSize)
	for i := 3; i < limit; i += 2 {
		if composite[i] {
			continue
		}
		out = append(out, uint16(i))
		for j := i * i; j < limit; j += 2 * i {
			composite[j] = true
		}
	}
	return out
}
