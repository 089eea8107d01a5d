package aead

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore/block"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func newAES(t testing.TB, key []byte) block.Cipher {
	t.Helper()
	c, err := block.NewAES(key)
	require.NoError(t, err)
	return c
}

func newSerpent(t testing.TB, key []byte) block.Cipher {
	t.Helper()
	c, err := block.NewSerpent(key)
	require.NoError(t, err)
	return c
}

// counting returns n bytes 0, 1, 2, ... starting at from.
func counting(from, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(from + i)
	}
	return b
}

// chunked feeds src through Update in pieces of the given sizes and Finish
// with the rest.
func chunked(t testing.TB, m Mode, src []byte, sizes []int) []byte {
	t.Helper()
	var out []byte
	var err error
	for _, n := range sizes {
		n = min(n, len(src))
		out, err = m.Update(out, src[:n])
		require.NoError(t, err)
		src = src[n:]
	}
	out, err = m.Finish(out, src)
	require.NoError(t, err)
	return out
}
