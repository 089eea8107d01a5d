package block

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/sys/cpu"
)

// ErrHardwareUnavailable is returned by NewHardwareAES on CPUs without AES
// instructions.
var ErrHardwareUnavailable = errors.New("hardware AES not available")

// HardwareAESAvailable reports whether the CPU provides AES instructions
// that crypto/aes uses for a constant-time implementation.
func HardwareAESAvailable() bool {
	return (cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ) || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

type hardwareAES struct {
	b       cipher.Block
	keySize int
}

// NewHardwareAES returns AES backed by crypto/aes. It fails with
// ErrHardwareUnavailable when HardwareAESAvailable is false, so callers
// never silently get a table-driven fallback.
func NewHardwareAES(key []byte) (Cipher, error) {
	if !HardwareAESAvailable() {
		return nil, ErrHardwareUnavailable
	}
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return &hardwareAES{b: b, keySize: len(key)}, nil
}

// NewPreferredAES returns hardware AES when available and the software
// implementation otherwise.
func NewPreferredAES(key []byte) (Cipher, error) {
	if HardwareAESAvailable() {
		return NewHardwareAES(key)
	}
	return NewAES(key)
}

func (h *hardwareAES) Name() string   { return fmt.Sprintf("AES-%d", h.keySize*8) }
func (h *hardwareAES) BlockSize() int { return BlockSize }
func (h *hardwareAES) KeySize() int   { return h.keySize }

func (h *hardwareAES) Encrypt(dst, src []byte) { h.b.Encrypt(dst, src) }
func (h *hardwareAES) Decrypt(dst, src []byte) { h.b.Decrypt(dst, src) }

func (h *hardwareAES) EncryptN(dst, src []byte, n int) {
	checkBlocks("aes", dst, src, n)
	for i := 0; i < n*BlockSize; i += BlockSize {
		h.b.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

func (h *hardwareAES) DecryptN(dst, src []byte, n int) {
	checkBlocks("aes", dst, src, n)
	for i := 0; i < n*BlockSize; i += BlockSize {
		h.b.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}
