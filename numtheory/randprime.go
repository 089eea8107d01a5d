package numtheory

import (
	"fmt"
	"io"

	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// maxSieveSteps bounds how far RandomPrime walks from one random start.
const maxSieveSteps = 4096

// RandomPrime returns a random prime p of exactly bits bits with
// p = equiv (mod modulo) and gcd(p-1, coprime) = 1. Pass coprime = 1,
// equiv = 1 and modulo = 2 for no constraint. Candidates are accepted at
// the Check level.
func RandomPrime(rng io.Reader, bits int, coprime *bigint.Int, equiv, modulo uint64) (*bigint.Int, error) {
	return RandomPrimeAtLevel(rng, bits, coprime, equiv, modulo, Check)
}

// RandomPrimeAtLevel is RandomPrime with candidates tested by IsPrime at
// level.
func RandomPrimeAtLevel(rng io.Reader, bits int, coprime *bigint.Int, equiv, modulo uint64, level Level) (*bigint.Int, error) {
	const op = "numtheory.RandomPrime"
	if bits <= 1 {
		return nil, coreerr.Argument(op, "cannot make a prime of %d bits", bits)
	}
	switch bits {
	case 2, 3, 4:
		pair := [...][2]int64{2: {2, 3}, 3: {5, 7}, 4: {11, 13}}[bits]
		var b [1]byte
		if _, err := io.ReadFull(rng, b[:]); err != nil {
			return nil, fmt.Errorf("%s: read entropy: %w", op, err)
		}
		return bigint.NewInt(pair[b[0]&1]), nil
	}

	if coprime == nil || coprime.Sign() <= 0 {
		return nil, coreerr.Argument(op, "coprime must be > 0")
	}
	if modulo == 0 || modulo%2 == 1 {
		return nil, coreerr.Argument(op, "modulo must be even and non-zero, got %d", modulo)
	}
	if equiv >= modulo || equiv%2 == 0 {
		return nil, coreerr.Argument(op, "equiv must be odd and < modulo, got %d", equiv)
	}

	sieve := make([]uint64, min(bits/2, PrimeTableSize))
	one := bigint.NewInt(1)
	step := bigint.NewUint(modulo)

	for {
		p, err := bigint.Random(rng, bits)
		if err != nil {
			return nil, err
		}
		p.SetBit(uint(bits - 2)).SetBit(0)

		r, err := p.ModWord(modulo)
		if err != nil {
			return nil, err
		}
		if r != equiv {
			p.AddAssign(bigint.NewUint(modulo - r + equiv))
		}

		for j := range sieve {
			sieve[j], _ = p.ModWord(uint64(Primes[j]))
		}

		for counter := 0; counter < maxSieveSteps && p.BitLen() <= bits; counter++ {
			p.AddAssign(step)
			if p.BitLen() > bits {
				break
			}

			passes := true
			for j := range sieve {
				q := uint64(Primes[j])
				sieve[j] = (sieve[j] + modulo%q) % q
				if sieve[j] == 0 {
					passes = false
				}
			}
			if !passes || !GCD(p.Sub(one), coprime).Equal(one) {
				continue
			}

			ok, err := IsPrime(p, rng, level)
			if err != nil {
				return nil, err
			}
			if ok {
				return p, nil
			}
		}
	}
}

// RandomSafePrime returns a random prime p of bits bits such that (p-1)/2
// is also prime. bits must exceed 64.
func RandomSafePrime(rng io.Reader, bits int) (*bigint.Int, error) {
	return RandomSafePrimeAtLevel(rng, bits, Check)
}

// RandomSafePrimeAtLevel is RandomSafePrime with both p and (p-1)/2 tested
// at level.
func RandomSafePrimeAtLevel(rng io.Reader, bits int, level Level) (*bigint.Int, error) {
	if bits <= 64 {
		return nil, coreerr.Argument("numtheory.RandomSafePrime", "cannot make a safe prime of %d bits", bits)
	}
	for {
		q, err := RandomPrimeAtLevel(rng, bits-1, bigint.NewInt(1), 1, 2, level)
		if err != nil {
			return nil, err
		}
		p := q.Lsh(1).Inc()
		ok, err := IsPrime(p, rng, level)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}
