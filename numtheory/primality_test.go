package numtheory

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/testrand"
)

func TestPrimesTable(t *testing.T) {
	require.Len(t, Primes, PrimeTableSize)
	assert.Equal(t, uint16(3), Primes[0])
	assert.Equal(t, uint16(65521), Primes[len(Primes)-1])

	for i, p := range Primes {
		if !big.NewInt(int64(p)).ProbablyPrime(0) {
			t.Fatalf("Primes[%d] = %d is not prime", i, p)
		}
		if i > 0 && Primes[i-1] >= p {
			t.Fatalf("Primes not increasing at %d", i)
		}
	}
}

func TestMillerRabinRounds(t *testing.T) {
	tests := []struct {
		bits  int
		level Level
		want  int
	}{
		{32, Verify, 55},
		{32, Check, 25},
		{32, QuickCheck, 6},
		{50, Check, 25},
		{51, Check, 22},
		{512, Verify, 8},
		{512, Check, 6},
		{1024, QuickCheck, 1},
		{1853, Verify, 3},
		{2048, Verify, 2},
		{2048, Check, 2},
		{2048, QuickCheck, 1},
		{100, Level(7), 38},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", tt.bits, tt.level), func(t *testing.T) {
			if got := MillerRabinRounds(tt.bits, tt.level); got != tt.want {
				t.Errorf("MillerRabinRounds(%d, %s) = %d, want %d", tt.bits, tt.level, got, tt.want)
			}
		})
	}
}

func TestIsPrime_SmallValues(t *testing.T) {
	rng := testrand.New("small")
	for v := int64(-5); v <= 70000; v++ {
		got, err := IsPrime(bigint.NewInt(v), rng, QuickCheck)
		require.NoError(t, err)
		want := v > 1 && big.NewInt(v).ProbablyPrime(0)
		if got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestIsPrime_Known(t *testing.T) {
	tests := []struct {
		name string
		n    string
		want bool
	}{
		{"mersenne 127", "0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", true},
		{"curve25519 field", "57896044618658097711785492504343953926634992332820282019728792003956564819949", true},
		{"fermat 65537", "65537", true},
		{"F5 composite", "4294967297", false},
		{"carmichael 561", "561", false},
		{"carmichael 1105", "1105", false},
		{"carmichael 1729", "1729", false},
		{"carmichael 101101", "101101", false},
		{"carmichael 252601", "252601", false},
		{"carmichael 294409", "294409", false},
		{"carmichael 56052361", "56052361", false},
		{"square of prime", "4295098369", false},
		{"square of mersenne prime", "4611686014132420609", false},
	}

	rng := testrand.New("known")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, level := range []Level{QuickCheck, Check, Verify} {
				got, err := IsPrime(bigint.MustParse(tt.n), rng, level)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, "level %s", level)
			}
		})
	}
}

// 3215031751 = 151 * 751 * 28351 passes the base-2 test, so only the
// random bases can reject it.
func TestIsPrime_StrongPseudoprime(t *testing.T) {
	n := bigint.NewInt(3215031751)
	mr, err := NewMillerRabin(n)
	require.NoError(t, err)
	w, err := mr.IsWitness(bigint.NewInt(2))
	require.NoError(t, err)
	require.False(t, w, "base 2 should not witness 3215031751")

	rng := testrand.New("spsp")
	for i := 0; i < 1000; i++ {
		ok, err := IsPrime(n, rng, Check)
		require.NoError(t, err)
		if ok {
			t.Fatalf("trial %d accepted 3215031751", i)
		}
	}
}

func TestIsPrime_MatchesBig(t *testing.T) {
	rng := testrand.New("match")
	for i := 0; i < 300; i++ {
		n, err := bigint.Random(rng, 96)
		require.NoError(t, err)
		n.SetBit(0)
		got, err := IsPrime(n, rng, Check)
		require.NoError(t, err)
		if want := toBig(t, n).ProbablyPrime(20); got != want {
			t.Fatalf("IsPrime(%s) = %v, want %v", n, got, want)
		}
	}
}

func TestMillerRabin_Errors(t *testing.T) {
	_, err := NewMillerRabin(bigint.NewInt(10))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewMillerRabin(bigint.NewInt(1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	mr, err := NewMillerRabin(bigint.NewInt(101))
	require.NoError(t, err)
	_, err = mr.IsWitness(bigint.NewInt(1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = mr.IsWitness(bigint.NewInt(100))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestLevelWrappers(t *testing.T) {
	rng := testrand.New("wrappers")
	p := bigint.MustParse("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	for name, fn := range map[string]func(*bigint.Int, io.Reader) (bool, error){
		"quick":  QuickCheckPrime,
		"check":  CheckPrime,
		"verify": VerifyPrime,
	} {
		ok, err := fn(p, rng)
		require.NoError(t, err, name)
		assert.True(t, ok, name)
	}
}

func BenchmarkIsPrime1024(b *testing.B) {
	rng := testrand.New("bench")
	p, err := RandomPrime(rng, 1024, bigint.NewInt(1), 1, 2)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = IsPrime(p, rng, Check)
	}
}
