// Package block provides 128-bit block ciphers and padding schemes.
//
// # Ciphers
//
// Every cipher implements [Cipher], which embeds crypto/cipher.Block and
// adds EncryptN and DecryptN for runs of blocks:
//
//	c, err := block.NewSerpent(key)
//	if err != nil {
//	    return err
//	}
//	c.EncryptN(dst, src, len(src)/block.BlockSize)
//
// [NewAES] is a table-driven software AES whose tables are generated at
// start-up. Its memory access pattern depends on the key and data. Use
// [NewHardwareAES] or [NewPreferredAES] where timing matters.
//
// [NewSerpent] is bitsliced: each S-box is a fixed sequence of boolean
// operations on four words. The same round code runs on a single block and
// on four blocks at once through a four-lane vector type.
//
// # Padding
//
// [PKCS7], [ANSIX923] and [OneAndZeros] implement [Padding] for callers that
// need block-aligned messages. The AEAD modes do not use padding.
package block
