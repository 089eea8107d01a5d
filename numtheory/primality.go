package numtheory

import (
	"io"

	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/modular"
)

// Level selects how many Miller-Rabin rounds IsPrime runs.
type Level int

const (
	// QuickCheck runs a quarter of the Check rounds, at least one.
	QuickCheck Level = iota
	// Check is suitable for primes generated locally.
	Check
	// Verify is suitable for primes received from someone else.
	Verify
)

func (l Level) String() string {
	switch l {
	case QuickCheck:
		return "quick"
	case Check:
		return "check"
	case Verify:
		return "verify"
	default:
		return "unknown"
	}
}

// nonceBits caps the size of random Miller-Rabin bases.
const nonceBits = 128

var roundTable = []struct {
	bits   int
	verify int
	check  int
}{
	{50, 55, 25}, {100, 38, 22}, {160, 32, 18}, {163, 31, 17},
	{168, 30, 16}, {177, 29, 16}, {181, 28, 15}, {185, 27, 15},
	{190, 26, 15}, {195, 25, 14}, {201, 24, 14}, {208, 23, 14},
	{215, 22, 13}, {222, 21, 13}, {231, 20, 13}, {241, 19, 12},
	{252, 18, 12}, {264, 17, 12}, {278, 16, 11}, {294, 15, 10},
	{313, 14, 9}, {334, 13, 8}, {360, 12, 8}, {392, 11, 7},
	{430, 10, 7}, {479, 9, 6}, {542, 8, 6}, {626, 7, 5},
	{746, 6, 4}, {926, 5, 3}, {1232, 4, 2}, {1853, 3, 2},
}

// MillerRabinRounds returns the number of random-base rounds run for a
// candidate of the given bit length at level.
func MillerRabinRounds(bits int, level Level) int {
	for _, row := range roundTable {
		if bits > row.bits {
			continue
		}
		switch {
		case level >= Verify:
			return row.verify
		case level == Check:
			return row.check
		default:
			return max(row.check/4, 1)
		}
	}
	if level > QuickCheck {
		return 2
	}
	return 1
}

// MillerRabin tests bases against a fixed odd modulus n >= 3. It caches
// n-1 = d*2^s and an exponentiator for a^d mod n.
type MillerRabin struct {
	n       *bigint.Int
	nMinus1 *bigint.Int
	s       uint
	pow     *modular.FixedExponentPowerMod
	reducer *modular.Reducer
}

// NewMillerRabin prepares witness tests against n.
func NewMillerRabin(n *bigint.Int) (*MillerRabin, error) {
	if n.IsEven() || n.Cmp(bigint.NewInt(3)) < 0 {
		return nil, coreerr.Argument("numtheory.NewMillerRabin", "modulus must be odd and >= 3, got %s", n)
	}
	nMinus1 := n.Sub(bigint.NewInt(1))
	s := LowZeroBits(nMinus1)

	pow, err := modular.NewFixedExponentPowerMod(n, nMinus1.Rsh(s))
	if err != nil {
		return nil, err
	}
	red, err := modular.NewReducer(n)
	if err != nil {
		return nil, err
	}
	return &MillerRabin{n: n.Clone(), nMinus1: nMinus1, s: s, pow: pow, reducer: red}, nil
}

// IsWitness reports whether a proves n composite. a must be in [2, n-1).
func (m *MillerRabin) IsWitness(a *bigint.Int) (bool, error) {
	if a.Cmp(bigint.NewInt(2)) < 0 || a.Cmp(m.nMinus1) >= 0 {
		return false, coreerr.Argument("numtheory.IsWitness", "base %s outside [2, n-1)", a)
	}

	y, err := m.pow.Exp(a)
	if err != nil {
		return false, err
	}
	one := bigint.NewInt(1)
	if y.Equal(one) || y.Equal(m.nMinus1) {
		return false, nil
	}

	for i := uint(1); i < m.s; i++ {
		y = m.reducer.Square(y)
		if y.Equal(one) {
			// non-trivial square root of 1
			return true, nil
		}
		if y.Equal(m.nMinus1) {
			return false, nil
		}
	}
	return true, nil
}

// IsPrime reports whether n is probably prime. Values up to 65521 are
// answered exactly from the small-prime table. Larger values are tested
// with base 2 and then MillerRabinRounds random bases drawn from rng.
func IsPrime(n *bigint.Int, rng io.Reader, level Level) (bool, error) {
	if n.Equal(bigint.NewInt(2)) {
		return true, nil
	}
	if n.Cmp(bigint.NewInt(1)) <= 0 || n.IsEven() {
		return false, nil
	}

	if n.Cmp(bigint.NewUint(uint64(Primes[len(Primes)-1]))) <= 0 {
		v := n.Uint64()
		for _, p := range Primes {
			if v == uint64(p) {
				return true, nil
			}
			if v < uint64(p) {
				return false, nil
			}
		}
		return false, nil
	}

	level = min(level, Verify)
	bits := n.BitLen()
	nb := min(bits-2, nonceBits)

	mr, err := NewMillerRabin(n)
	if err != nil {
		return false, err
	}
	if w, err := mr.IsWitness(bigint.NewInt(2)); err != nil || w {
		return false, err
	}

	two := bigint.NewInt(2)
	for i := MillerRabinRounds(bits, level); i > 0; i-- {
		var nonce *bigint.Int
		for nonce == nil || nonce.Cmp(two) < 0 || nonce.Cmp(mr.nMinus1) >= 0 {
			if nonce, err = bigint.Random(rng, nb); err != nil {
				return false, err
			}
		}
		if w, err := mr.IsWitness(nonce); err != nil || w {
			return false, err
		}
	}
	return true, nil
}

// QuickCheckPrime is IsPrime at the QuickCheck level.
func QuickCheckPrime(n *bigint.Int, rng io.Reader) (bool, error) {
	return IsPrime(n, rng, QuickCheck)
}

// CheckPrime is IsPrime at the Check level.
func CheckPrime(n *bigint.Int, rng io.Reader) (bool, error) {
	return IsPrime(n, rng, Check)
}

// VerifyPrime is IsPrime at the Verify level.
func VerifyPrime(n *bigint.Int, rng io.Reader) (bool, error) {
	return IsPrime(n, rng, Verify)
}
