package block

import (
	"crypto/cipher"
	"fmt"
)

// BlockSize is the block size in bytes of every cipher in this package.
const BlockSize = 16

// Cipher is a keyed 128-bit block cipher. It satisfies crypto/cipher.Block
// and adds multi-block entry points that let an implementation process
// several blocks per pass.
//
// In every method dst and src must either be the same slice or not overlap.
// Short buffers panic, as with crypto/cipher.Block.
type Cipher interface {
	cipher.Block

	// Name returns the algorithm name, e.g. "AES-256" or "Serpent".
	Name() string

	// KeySize returns the key length in bytes.
	KeySize() int

	// EncryptN encrypts n consecutive blocks from src into dst.
	EncryptN(dst, src []byte, n int)

	// DecryptN decrypts n consecutive blocks from src into dst.
	DecryptN(dst, src []byte, n int)
}

func checkBlocks(name string, dst, src []byte, n int) {
	if n < 0 {
		panic(fmt.Sprintf("block/%s: negative block count", name))
	}
	if len(src) < n*BlockSize {
		panic(fmt.Sprintf("block/%s: input not full blocks", name))
	}
	if len(dst) < n*BlockSize {
		panic(fmt.Sprintf("block/%s: output not full blocks", name))
	}
}
