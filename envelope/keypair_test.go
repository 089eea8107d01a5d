package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore/internal/testrand"
)

func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair(nil)
	require.NoError(t, err)
	assert.Len(t, kp.PublicKey, MLKEMPublicKeySize)
	assert.Len(t, kp.SecretKey, MLKEMSecretKeySize)
	assert.True(t, kp.Validate())
}

func TestGenerateKeypair_Deterministic(t *testing.T) {
	a, err := GenerateKeypair(testrand.New("kp"))
	require.NoError(t, err)
	b, err := GenerateKeypair(testrand.New("kp"))
	require.NoError(t, err)
	assert.Equal(t, a.SecretKey, b.SecretKey)
}

func TestKeypairFromSecretKey(t *testing.T) {
	kp, err := GenerateKeypair(testrand.New("from secret"))
	require.NoError(t, err)

	restored, err := KeypairFromSecretKey(kp.SecretKey)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey, restored.PublicKey)
	assert.Equal(t, kp.PublicKeyB64, restored.PublicKeyB64)

	_, err = KeypairFromSecretKey(kp.SecretKey[:10])
	assert.True(t, errors.Is(err, ErrInvalidSecretKeySize))
}

func TestKeypair_Validate(t *testing.T) {
	kp, err := GenerateKeypair(testrand.New("validate"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(k *Keypair)
	}{
		{"short public key", func(k *Keypair) { k.PublicKey = k.PublicKey[:10] }},
		{"short secret key", func(k *Keypair) { k.SecretKey = k.SecretKey[:10] }},
		{"empty encoding", func(k *Keypair) { k.PublicKeyB64 = "" }},
		{"mismatched encoding", func(k *Keypair) { k.PublicKeyB64 = ToBase64URL(make([]byte, MLKEMPublicKeySize)) }},
		{"bad encoding", func(k *Keypair) { k.PublicKeyB64 = "***" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := *kp
			tt.mutate(&k)
			assert.False(t, k.Validate())
		})
	}
	var nilKP *Keypair
	assert.False(t, nilKP.Validate())
}

func TestEncapsulateDecapsulate(t *testing.T) {
	kp, err := GenerateKeypair(testrand.New("kem"))
	require.NoError(t, err)

	ct, shared, err := encapsulate(kp.PublicKey, testrand.New("seed"))
	require.NoError(t, err)
	assert.Len(t, ct, MLKEMCiphertextSize)

	got, err := kp.Decapsulate(ct)
	require.NoError(t, err)
	assert.Equal(t, shared, got)

	_, err = kp.Decapsulate(ct[:5])
	assert.True(t, errors.Is(err, ErrInvalidCiphertextSize))
}

func TestSigningKey_MarshalRoundTrip(t *testing.T) {
	sk, err := GenerateSigningKey(testrand.New("signer"))
	require.NoError(t, err)
	assert.Len(t, sk.PublicKey, MLDSAPublicKeySize)

	raw, err := sk.MarshalBinary()
	require.NoError(t, err)
	back, err := SigningKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, sk.PublicKey, back.PublicKey)

	sigA, err := sk.sign([]byte("msg"))
	require.NoError(t, err)
	sigB, err := back.sign([]byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, sigA, sigB)

	_, err = SigningKeyFromBytes([]byte("short"))
	assert.Error(t, err)
}

func TestDeriveKey(t *testing.T) {
	secret := make([]byte, 32)
	a, err := deriveKey(secret, []byte("ct"), []byte("ad"), DefaultContext, 32)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, _ := deriveKey(secret, []byte("ct"), []byte("ae"), DefaultContext, 32)
	c, _ := deriveKey(secret, []byte("cu"), []byte("ad"), DefaultContext, 32)
	d, _ := deriveKey(secret, []byte("ct"), []byte("ad"), "other", 32)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)

	e, _ := deriveKey(secret, []byte("ct"), []byte("ad"), DefaultContext, 16)
	assert.Equal(t, a[:16], e)
}
