package cryptocore

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"io"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vaultsandbox/cryptocore/aead"
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/testrand"
)

func newTestEngine(t testing.TB, opts ...Option) *Engine {
	t.Helper()
	e, err := New(append([]Option{WithRandom(testrand.New(t.Name()))}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestNew_Defaults(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.NotNil(t, e.Random())
	assert.NotNil(t, e.Registry())
	assert.Equal(t, defaultTagSize, e.cfg.tagSize)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"nil random", []Option{WithRandom(nil)}},
		{"level too low", []Option{WithPrimalityLevel(-1)}},
		{"level too high", []Option{WithPrimalityLevel(3)}},
		{"tag too short", []Option{WithTagSize(4)}},
		{"tag too long", []Option{WithTagSize(17)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("New() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestEngine_SealOpen(t *testing.T) {
	e := newTestEngine(t)
	specs := []AlgorithmSpec{
		{Cipher: AES128, Mode: GCM},
		{Cipher: AES192, Mode: GCM, TagSize: 12},
		{Cipher: AES256, Mode: GCM},
		{Cipher: AES256, Mode: EAX},
		{Cipher: Serpent, Mode: GCM},
		{Cipher: Serpent, Mode: EAX, TagSize: 8},
	}

	for _, spec := range specs {
		t.Run(spec.String(), func(t *testing.T) {
			key, err := e.NewNonce(spec.Cipher.KeySize())
			require.NoError(t, err)
			nonce, err := e.NewNonce(12)
			require.NoError(t, err)
			pt := []byte("a message of some length, longer than a single block")

			ct, err := e.Seal(spec, key, nonce, []byte("ad"), pt)
			require.NoError(t, err)
			assert.Len(t, ct, len(pt)+spec.tagSize())

			got, err := e.Open(spec, key, nonce, []byte("ad"), ct)
			require.NoError(t, err)
			assert.Equal(t, pt, got)

			ct[0] ^= 0x80
			_, err = e.Open(spec, key, nonce, []byte("ad"), ct)
			assert.True(t, errors.Is(err, ErrIntegrityFailure), "tampered ciphertext: %v", err)
			var ie *IntegrityError
			assert.True(t, errors.As(err, &ie))
		})
	}
}

func TestEngine_AES256GCMMatchesStdlib(t *testing.T) {
	e := newTestEngine(t, WithHardwareAES(true))
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(rt, "key")
		nonce := rapid.SliceOfN(rapid.Byte(), 12, 12).Draw(rt, "nonce")
		ad := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "ad")
		pt := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(rt, "pt")

		got, err := e.Seal(AlgorithmSpec{Cipher: AES256, Mode: GCM}, key, nonce, ad, pt)
		if err != nil {
			rt.Fatalf("Seal: %v", err)
		}
		b, _ := aes.NewCipher(key)
		g, _ := cipher.NewGCM(b)
		if want := g.Seal(nil, nonce, pt, ad); !bytes.Equal(got, want) {
			rt.Fatalf("Seal = %x, want %x", got, want)
		}
	})
}

func TestEngine_DefaultTagSizeOption(t *testing.T) {
	e := newTestEngine(t, WithTagSize(12))
	ct, err := e.Seal(AlgorithmSpec{Cipher: AES128, Mode: EAX}, make([]byte, 16), nil, nil, []byte("x"))
	require.NoError(t, err)
	assert.Len(t, ct, 13)

	m, err := e.NewAEAD(AlgorithmSpec{Cipher: AES128, Mode: GCM, TagSize: 16}, make([]byte, 16), aead.Encrypt)
	require.NoError(t, err)
	assert.Equal(t, 16, m.TagSize())
}

func TestEngine_BadKey(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Seal(AlgorithmSpec{Cipher: AES256, Mode: GCM}, make([]byte, 16), make([]byte, 12), nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = e.Open(AlgorithmSpec{Cipher: Serpent, Mode: EAX}, make([]byte, 7), nil, nil, make([]byte, 16))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestEngine_NewNonce_EntropyFailure(t *testing.T) {
	e := newTestEngine(t, WithRandom(iotest.ErrReader(errors.New("no entropy"))))
	_, err := e.NewNonce(12)
	assert.ErrorContains(t, err, "no entropy")
}

func TestEngine_PowerMod(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		base, exp, mod string
	}{
		{"4", "13", "497"},
		{"2", "0x10001", "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{"123456789", "987654321", "0x10000000000000000"},
		{"-3", "5", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.mod, func(t *testing.T) {
			got, err := e.PowerMod(bigint.MustParse(tt.base), bigint.MustParse(tt.exp), bigint.MustParse(tt.mod))
			require.NoError(t, err)

			b, _ := new(big.Int).SetString(tt.base, 0)
			x, _ := new(big.Int).SetString(tt.exp, 0)
			m, _ := new(big.Int).SetString(tt.mod, 0)
			want := new(big.Int).Exp(new(big.Int).Mod(b, m), x, m)
			assert.Equal(t, want.String(), got.String())
		})
	}

	_, err := e.PowerMod(bigint.NewInt(2), bigint.NewInt(-1), bigint.NewInt(7))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = e.PowerMod(bigint.NewInt(2), bigint.NewInt(1), bigint.NewInt(0))
	assert.Error(t, err)
}

func TestEngine_Primes(t *testing.T) {
	e := newTestEngine(t, WithPrimalityLevel(2))

	p, err := e.RandomPrime(128)
	require.NoError(t, err)
	assert.Equal(t, 128, p.BitLen())
	ok, err := e.IsPrime(p)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.IsPrime(bigint.MustParse("561"))
	require.NoError(t, err)
	assert.False(t, ok, "561 is a Carmichael number")

	b, _ := new(big.Int).SetString(p.String(), 10)
	assert.True(t, b.ProbablyPrime(20))
}

type byteCounter struct {
	r io.Reader
	n int
}

func (c *byteCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func TestEngine_RandomPrimeUsesLevel(t *testing.T) {
	draw := func(level int) int {
		rng := &byteCounter{r: testrand.New("prime-level")}
		e, err := New(WithRandom(rng), WithPrimalityLevel(level))
		require.NoError(t, err)
		p, err := e.RandomPrime(128)
		require.NoError(t, err)
		require.Equal(t, 128, p.BitLen())
		return rng.n
	}
	quick, verify := draw(0), draw(2)
	assert.Less(t, quick, verify, "verification level should run more Miller-Rabin rounds")
}

func TestEngine_RandomSafePrime(t *testing.T) {
	if testing.Short() {
		t.Skip("safe prime search is slow")
	}
	e := newTestEngine(t)
	p, err := e.RandomSafePrime(80)
	require.NoError(t, err)
	q := p.Rsh(1)
	b, _ := new(big.Int).SetString(q.String(), 10)
	assert.True(t, b.ProbablyPrime(20), "(p-1)/2 = %s is not prime", q)
}

func BenchmarkEngine_Seal(b *testing.B) {
	e := newTestEngine(b)
	spec := AlgorithmSpec{Cipher: AES256, Mode: GCM}
	key, nonce, pt := make([]byte, 32), make([]byte, 12), make([]byte, 1024)
	b.SetBytes(int64(len(pt)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Seal(spec, key, nonce, nil, pt)
	}
}
