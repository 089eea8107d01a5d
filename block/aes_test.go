package block

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// FIPS-197 appendix C.
func TestAES_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"AES-128", "000102030405060708090a0b0c0d0e0f", "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{"AES-192", "000102030405060708090a0b0c0d0e0f1011121314151617", "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{"AES-256", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "8ea2b7ca516745bfeafc49904b496089"},
	}
	pt := mustHex(t, "00112233445566778899aabbccddeeff")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewAES(mustHex(t, tt.key))
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Name())
			assert.Equal(t, BlockSize, c.BlockSize())

			ct := make([]byte, BlockSize)
			c.Encrypt(ct, pt)
			if got := hex.EncodeToString(ct); got != tt.want {
				t.Errorf("Encrypt() = %s, want %s", got, tt.want)
			}

			back := make([]byte, BlockSize)
			c.Decrypt(back, ct)
			if !bytes.Equal(back, pt) {
				t.Errorf("Decrypt() = %x, want %x", back, pt)
			}
		})
	}
}

func TestAES_MatchesStdlib(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keyLen := rapid.SampledFrom([]int{16, 24, 32}).Draw(rt, "keyLen")
		key := rapid.SliceOfN(rapid.Byte(), keyLen, keyLen).Draw(rt, "key")
		n := rapid.IntRange(0, 6).Draw(rt, "blocks")
		src := rapid.SliceOfN(rapid.Byte(), n*BlockSize, n*BlockSize).Draw(rt, "src")

		ours, err := NewAES(key)
		if err != nil {
			rt.Fatalf("NewAES: %v", err)
		}
		ref, _ := aes.NewCipher(key)

		got := make([]byte, len(src))
		want := make([]byte, len(src))
		ours.EncryptN(got, src, n)
		for i := 0; i < len(src); i += BlockSize {
			ref.Encrypt(want[i:], src[i:])
		}
		if !bytes.Equal(got, want) {
			rt.Fatalf("EncryptN = %x, want %x", got, want)
		}

		ours.DecryptN(got, got, n)
		if !bytes.Equal(got, src) {
			rt.Fatalf("in-place DecryptN did not invert EncryptN")
		}
	})
}

func TestAES_InvalidKey(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 33} {
		if _, err := NewAES(make([]byte, n)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewAES(%d bytes) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestAES_ShortBufferPanics(t *testing.T) {
	c, err := NewAES(make([]byte, 16))
	require.NoError(t, err)
	assert.Panics(t, func() { c.Encrypt(make([]byte, 16), make([]byte, 15)) })
	assert.Panics(t, func() { c.EncryptN(make([]byte, 16), make([]byte, 32), 2) })
}

func TestSboxTables(t *testing.T) {
	assert.Equal(t, byte(0x63), aesSbox[0x00])
	assert.Equal(t, byte(0x7c), aesSbox[0x01])
	assert.Equal(t, byte(0x16), aesSbox[0xff])
	assert.Equal(t, byte(0xed), aesSbox[0x53])
	for i := range 256 {
		if aesInvSbox[aesSbox[i]] != byte(i) {
			t.Fatalf("aesInvSbox is not the inverse of aesSbox at %#x", i)
		}
	}
	assert.Equal(t, [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}, rcon)
}

func TestHardwareAES(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	if !HardwareAESAvailable() {
		_, err := NewHardwareAES(key)
		assert.True(t, errors.Is(err, ErrHardwareUnavailable))

		c, err := NewPreferredAES(key)
		require.NoError(t, err)
		assert.Equal(t, "AES-128", c.Name())
		return
	}

	hw, err := NewHardwareAES(key)
	require.NoError(t, err)
	sw, err := NewAES(key)
	require.NoError(t, err)
	assert.Equal(t, sw.Name(), hw.Name())
	assert.Equal(t, 16, hw.KeySize())

	src := bytes.Repeat([]byte{0x5a, 0xa5, 0x01}, 32)[:5*BlockSize]
	a := make([]byte, len(src))
	b := make([]byte, len(src))
	hw.EncryptN(a, src, 5)
	sw.EncryptN(b, src, 5)
	assert.Equal(t, b, a)

	_, err = NewHardwareAES(make([]byte, 7))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func BenchmarkAESEncrypt(b *testing.B) {
	c, _ := NewAES(make([]byte, 32))
	buf := make([]byte, 64*BlockSize)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.EncryptN(buf, buf, 64)
	}
}
