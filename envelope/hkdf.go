package envelope

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// deriveKey runs HKDF-SHA-512 over the KEM shared secret.
//
//   - Salt: SHA-256 of the KEM ciphertext
//   - Info: context || AAD length (4 bytes BE) || AAD
func deriveKey(sharedSecret, ctKem, aad []byte, context string, length int) ([]byte, error) {
	salt := sha256.Sum256(ctKem)

	info := make([]byte, 0, len(context)+4+len(aad))
	info = append(info, context...)
	info = binary.BigEndian.AppendUint32(info, uint32(len(aad)))
	info = append(info, aad...)

	reader := hkdf.New(sha512.New, sharedSecret, salt[:], info)
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
