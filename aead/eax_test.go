package aead

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Vectors from the EAX paper (Bellare, Rogaway, Wagner), appendix.
func TestEAX_KnownAnswers(t *testing.T) {
	tests := []struct {
		key, nonce, header, msg string
		want                    string
	}{
		{
			key:    "233952DEE4D5ED5F9B9C6D6FF80FF478",
			nonce:  "62EC67F9C3A4A407FCB2A8C49031A8B3",
			header: "6BFB914FD07EAE6B",
			msg:    "",
			want:   "e037830e8389f27b025a2d6527e79d01",
		},
		{
			key:    "91945D3F4DCBEE0BF45EF52255F095A4",
			nonce:  "BECAF043B0A23D843194BA972C66DEBD",
			header: "FA3BFD4806EB53FA",
			msg:    "F7FB",
			want:   "19dd5c4c9331049d0bdab0277408f67967e5",
		},
		{
			key:    "01F74AD64077F2E704C0F60ADA3DD523",
			nonce:  "70C3DB4F0D26368400A10ED05D2BFF5E",
			header: "234A3463C1264AC6",
			msg:    "1A47CB4933",
			want:   "d851d5bae03a59f238a23e39199dc9266626c40f80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.key[:8], func(t *testing.T) {
			c := newAES(t, mustHex(t, tt.key))
			enc, err := NewEAX(c, 16, Encrypt)
			require.NoError(t, err)
			ct, err := Seal(enc, mustHex(t, tt.nonce), mustHex(t, tt.header), mustHex(t, tt.msg))
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(ct))

			dec, err := NewEAX(c, 16, Decrypt)
			require.NoError(t, err)
			pt, err := Open(dec, mustHex(t, tt.nonce), mustHex(t, tt.header), ct)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.msg), append([]byte{}, pt...))
		})
	}
}

func TestEAX_Serpent(t *testing.T) {
	enc, err := NewEAX(newSerpent(t, counting(0, 32)), 16, Encrypt)
	require.NoError(t, err)
	assert.Equal(t, "Serpent/EAX", enc.Name())

	ct, err := Seal(enc, counting(0, 16), []byte("header"), []byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	assert.Equal(t, "4e2cc072dd7974a0d9785b99f261c1b9a799eab907d3cbadec7dc9598a7a3f8edbe6b3d52744c9b56a0a9868506cd2ce2fa8610a92bffc102aa9eb", hex.EncodeToString(ct))
}

func TestEAX_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(rt, "key")
		nonce := rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(rt, "nonce")
		ad := rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(rt, "ad")
		pt := rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(rt, "pt")
		tagSize := rapid.IntRange(EAXMinTagSize, 16).Draw(rt, "tagSize")
		sizes := rapid.SliceOfN(rapid.IntRange(0, 40), 0, 6).Draw(rt, "sizes")
		c := newAES(t, key)

		enc, _ := NewEAX(c, tagSize, Encrypt)
		ct, err := Seal(enc, nonce, ad, pt)
		if err != nil {
			rt.Fatalf("Seal: %v", err)
		}
		if len(ct) != len(pt)+tagSize {
			rt.Fatalf("len(ct) = %d, want %d", len(ct), len(pt)+tagSize)
		}

		enc2, _ := NewEAX(c, tagSize, Encrypt)
		if err := enc2.SetAssociatedData(ad); err != nil {
			rt.Fatalf("SetAssociatedData: %v", err)
		}
		if err := enc2.Start(nonce); err != nil {
			rt.Fatalf("Start: %v", err)
		}
		if got := chunked(t, enc2, pt, sizes); !bytes.Equal(got, ct) {
			rt.Fatalf("chunked %v = %x, want %x", sizes, got, ct)
		}

		dec, _ := NewEAX(c, tagSize, Decrypt)
		got, err := Open(dec, nonce, ad, ct)
		if err != nil {
			rt.Fatalf("Open: %v", err)
		}
		if !bytes.Equal(got, pt) {
			rt.Fatalf("Open = %x, want %x", got, pt)
		}
	})
}

func TestEAX_Tampering(t *testing.T) {
	c := newAES(t, counting(0, 16))
	nonce := counting(9, 16)
	enc, _ := NewEAX(c, 16, Encrypt)
	ct, err := Seal(enc, nonce, []byte("hdr"), []byte("payload"))
	require.NoError(t, err)

	dec, _ := NewEAX(c, 16, Decrypt)
	for i := 0; i < len(ct)*8; i++ {
		bad := bytes.Clone(ct)
		bad[i/8] ^= 1 << (i % 8)
		dst := []byte("x")
		require.NoError(t, dec.SetAssociatedData([]byte("hdr")))
		require.NoError(t, dec.Start(nonce))
		out, err := dec.Finish(dst, bad)
		if !errors.Is(err, ErrIntegrityFailure) {
			t.Fatalf("bit %d flipped: error = %v, want ErrIntegrityFailure", i, err)
		}
		if string(out) != "x" {
			t.Fatalf("bit %d flipped: dst modified to %q", i, out)
		}
	}

	_, err = Open(dec, nonce, []byte("hdx"), ct)
	assert.True(t, errors.Is(err, ErrIntegrityFailure))
	_, err = Open(dec, nonce, []byte("hdr"), ct[:10])
	assert.True(t, errors.Is(err, ErrIntegrityFailure))

	got, err := Open(dec, nonce, []byte("hdr"), ct)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestEAX_ResetClearsAssociatedData(t *testing.T) {
	c := newAES(t, make([]byte, 16))
	m, _ := NewEAX(c, 16, Encrypt)
	plain, err := Seal(m, nil, nil, []byte("m"))
	require.NoError(t, err)

	require.NoError(t, m.SetAssociatedData([]byte("ad")))
	m.Reset()
	require.NoError(t, m.Start(nil))
	got, err := m.Finish(nil, []byte("m"))
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestEAX_Errors(t *testing.T) {
	c := newAES(t, make([]byte, 16))
	for _, n := range []int{0, 7, 17} {
		_, err := NewEAX(c, n, Encrypt)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "tag size %d: %v", n, err)
	}

	m, err := NewEAX(c, 16, Decrypt)
	require.NoError(t, err)
	assert.Equal(t, Decrypt, m.Direction())
	assert.True(t, m.ValidNonceLength(0))

	_, err = m.Update(nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidState))
	require.NoError(t, m.Start([]byte("n")))
	assert.True(t, errors.Is(m.SetAssociatedData([]byte("late")), ErrInvalidState))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "encrypt", Encrypt.String())
	assert.Equal(t, "decrypt", Decrypt.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
