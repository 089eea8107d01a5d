package envelope

import (
	"encoding/json"
	"fmt"
)

// Payload is a sealed, signed message. All byte fields are base64url
// without padding so the payload serializes directly to JSON.
type Payload struct {
	// V is the format version.
	V int `json:"v"`
	// Algs names the algorithms used.
	Algs AlgorithmSuite `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext.
	CtKem string `json:"ct_kem"`
	// Nonce is the AEAD nonce.
	Nonce string `json:"nonce"`
	// AAD is the associated data, authenticated but not encrypted.
	AAD string `json:"aad"`
	// Ciphertext is the AEAD output with its tag appended.
	Ciphertext string `json:"ciphertext"`
	// Sig is the ML-DSA-65 signature over the transcript.
	Sig string `json:"sig"`
	// SigPk is the signer's ML-DSA-65 public key.
	SigPk string `json:"sig_pk"`
}

// AlgorithmSuite names the algorithms of a payload.
type AlgorithmSuite struct {
	// KEM is the key encapsulation mechanism, e.g. "ML-KEM-768".
	KEM string `json:"kem"`
	// Sig is the signature algorithm, e.g. "ML-DSA-65".
	Sig string `json:"sig"`
	// AEAD is the cipher and mode, e.g. "AES-256/GCM".
	AEAD string `json:"aead"`
	// KDF is the key derivation function, e.g. "HKDF-SHA-512".
	KDF string `json:"kdf"`
}

func (a AlgorithmSuite) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", a.KEM, a.Sig, a.AEAD, a.KDF)
}

// ParsePayload decodes a JSON payload.
func ParsePayload(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &p, nil
}

// decoded holds the raw bytes of a payload's fields.
type decoded struct {
	ctKem, nonce, aad, ciphertext, sig, sigPk []byte
}

func (p *Payload) decode() (*decoded, error) {
	var d decoded
	fields := []struct {
		name string
		in   string
		out  *[]byte
	}{
		{"ct_kem", p.CtKem, &d.ctKem},
		{"nonce", p.Nonce, &d.nonce},
		{"aad", p.AAD, &d.aad},
		{"ciphertext", p.Ciphertext, &d.ciphertext},
		{"sig", p.Sig, &d.sig},
		{"sig_pk", p.SigPk, &d.sigPk},
	}
	for _, f := range fields {
		b, err := FromBase64URL(f.in)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidPayload, f.name, err)
		}
		*f.out = b
	}
	return &d, nil
}

// buildTranscript returns the signed bytes: version, suite, context, then
// each raw field in order.
func buildTranscript(version int, algs AlgorithmSuite, context string, d *decoded) []byte {
	suite := algs.String()
	n := 1 + len(suite) + len(context) + len(d.ctKem) + len(d.nonce) + len(d.aad) + len(d.ciphertext) + len(d.sigPk)
	transcript := make([]byte, 0, n)
	transcript = append(transcript, byte(version))
	transcript = append(transcript, suite...)
	transcript = append(transcript, context...)
	transcript = append(transcript, d.ctKem...)
	transcript = append(transcript, d.nonce...)
	transcript = append(transcript, d.aad...)
	transcript = append(transcript, d.ciphertext...)
	transcript = append(transcript, d.sigPk...)
	return transcript
}
