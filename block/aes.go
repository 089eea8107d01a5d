package block

import (
	"encoding/binary"
	"fmt"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// aesCipher is the table-driven software AES. Table reads are indexed by
// secret data, so it is not constant time; prefer NewHardwareAES when
// HardwareAESAvailable reports true.
type aesCipher struct {
	enc []uint32
	dec []uint32
}

// NewAES returns software AES-128, AES-192 or AES-256 selected by the key
// length.
func NewAES(key []byte) (Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, coreerr.Argument("block.NewAES", "invalid key size %d", len(key))
	}
	n := len(key) + 28
	c := &aesCipher{enc: make([]uint32, n), dec: make([]uint32, n)}
	expandKey(key, c.enc, c.dec)
	return c, nil
}

func (c *aesCipher) Name() string   { return fmt.Sprintf("AES-%d", c.KeySize()*8) }
func (c *aesCipher) BlockSize() int { return BlockSize }
func (c *aesCipher) KeySize() int   { return len(c.enc) - 28 }

func (c *aesCipher) Encrypt(dst, src []byte) {
	checkBlocks("aes", dst, src, 1)
	encryptBlock(c.enc, dst, src)
}

func (c *aesCipher) Decrypt(dst, src []byte) {
	checkBlocks("aes", dst, src, 1)
	decryptBlock(c.dec, dst, src)
}

func (c *aesCipher) EncryptN(dst, src []byte, n int) {
	checkBlocks("aes", dst, src, n)
	for i := 0; i < n*BlockSize; i += BlockSize {
		encryptBlock(c.enc, dst[i:], src[i:])
	}
}

func (c *aesCipher) DecryptN(dst, src []byte, n int) {
	checkBlocks("aes", dst, src, n)
	for i := 0; i < n*BlockSize; i += BlockSize {
		decryptBlock(c.dec, dst[i:], src[i:])
	}
}

func subw(w uint32) uint32 {
	return uint32(aesSbox[w>>24])<<24 |
		uint32(aesSbox[w>>16&0xff])<<16 |
		uint32(aesSbox[w>>8&0xff])<<8 |
		uint32(aesSbox[w&0xff])
}

func rotw(w uint32) uint32 { return w<<8 | w>>24 }

// expandKey fills enc with the encryption schedule and dec with the
// equivalent inverse-cipher schedule: round keys in reverse order with
// InvMixColumns applied to all but the first and last.
func expandKey(key []byte, enc, dec []uint32) {
	nk := len(key) / 4
	i := 0
	for ; i < nk; i++ {
		enc[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for ; i < len(enc); i++ {
		t := enc[i-1]
		switch {
		case i%nk == 0:
			t = subw(rotw(t)) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			t = subw(t)
		}
		enc[i] = enc[i-nk] ^ t
	}

	n := len(enc)
	for i := 0; i < n; i += 4 {
		ei := n - i - 4
		for j := 0; j < 4; j++ {
			x := enc[ei+j]
			if i > 0 && i+4 < n {
				x = td0[aesSbox[x>>24]] ^ td1[aesSbox[x>>16&0xff]] ^ td2[aesSbox[x>>8&0xff]] ^ td3[aesSbox[x&0xff]]
			}
			dec[i+j] = x
		}
	}
}

func encryptBlock(xk []uint32, dst, src []byte) {
	_ = src[15]
	s0 := binary.BigEndian.Uint32(src[0:]) ^ xk[0]
	s1 := binary.BigEndian.Uint32(src[4:]) ^ xk[1]
	s2 := binary.BigEndian.Uint32(src[8:]) ^ xk[2]
	s3 := binary.BigEndian.Uint32(src[12:]) ^ xk[3]

	rounds := len(xk)/4 - 2
	k := 4
	for r := 0; r < rounds; r++ {
		t0 := xk[k+0] ^ te0[s0>>24] ^ te1[s1>>16&0xff] ^ te2[s2>>8&0xff] ^ te3[s3&0xff]
		t1 := xk[k+1] ^ te0[s1>>24] ^ te1[s2>>16&0xff] ^ te2[s3>>8&0xff] ^ te3[s0&0xff]
		t2 := xk[k+2] ^ te0[s2>>24] ^ te1[s3>>16&0xff] ^ te2[s0>>8&0xff] ^ te3[s1&0xff]
		t3 := xk[k+3] ^ te0[s3>>24] ^ te1[s0>>16&0xff] ^ te2[s1>>8&0xff] ^ te3[s2&0xff]
		s0, s1, s2, s3 = t0, t1, t2, t3
		k += 4
	}

	// Final round: SubBytes and ShiftRows only.
	o0 := uint32(aesSbox[s0>>24])<<24 | uint32(aesSbox[s1>>16&0xff])<<16 | uint32(aesSbox[s2>>8&0xff])<<8 | uint32(aesSbox[s3&0xff])
	o1 := uint32(aesSbox[s1>>24])<<24 | uint32(aesSbox[s2>>16&0xff])<<16 | uint32(aesSbox[s3>>8&0xff])<<8 | uint32(aesSbox[s0&0xff])
	o2 := uint32(aesSbox[s2>>24])<<24 | uint32(aesSbox[s3>>16&0xff])<<16 | uint32(aesSbox[s0>>8&0xff])<<8 | uint32(aesSbox[s1&0xff])
	o3 := uint32(aesSbox[s3>>24])<<24 | uint32(aesSbox[s0>>16&0xff])<<16 | uint32(aesSbox[s1>>8&0xff])<<8 | uint32(aesSbox[s2&0xff])

	_ = dst[15]
	binary.BigEndian.PutUint32(dst[0:], o0^xk[k+0])
	binary.BigEndian.PutUint32(dst[4:], o1^xk[k+1])
	binary.BigEndian.PutUint32(dst[8:], o2^xk[k+2])
	binary.BigEndian.PutUint32(dst[12:], o3^xk[k+3])
}

func decryptBlock(xk []uint32, dst, src []byte) {
	_ = src[15]
	s0 := binary.BigEndian.Uint32(src[0:]) ^ xk[0]
	s1 := binary.BigEndian.Uint32(src[4:]) ^ xk[1]
	s2 := binary.BigEndian.Uint32(src[8:]) ^ xk[2]
	s3 := binary.BigEndian.Uint32(src[12:]) ^ xk[3]

	rounds := len(xk)/4 - 2
	k := 4
	for r := 0; r < rounds; r++ {
		t0 := xk[k+0] ^ td0[s0>>24] ^ td1[s3>>16&0xff] ^ td2[s2>>8&0xff] ^ td3[s1&0xff]
		t1 := xk[k+1] ^ td0[s1>>24] ^ td1[s0>>16&0xff] ^ td2[s3>>8&0xff] ^ td3[s2&0xff]
		t2 := xk[k+2] ^ td0[s2>>24] ^ td1[s1>>16&0xff] ^ td2[s0>>8&0xff] ^ td3[s3&0xff]
		t3 := xk[k+3] ^ td0[s3>>24] ^ td1[s2>>16&0xff] ^ td2[s1>>8&0xff] ^ td3[s0&0xff]
		s0, s1, s2, s3 = t0, t1, t2, t3
		k += 4
	}

	o0 := uint32(aesInvSbox[s0>>24])<<24 | uint32(aesInvSbox[s3>>16&0xff])<<16 | uint32(aesInvSbox[s2>>8&0xff])<<8 | uint32(aesInvSbox[s1&0xff])
	o1 := uint32(aesInvSbox[s1>>24])<<24 | uint32(aesInvSbox[s0>>16&0xff])<<16 | uint32(aesInvSbox[s3>>8&0xff])<<8 | uint32(aesInvSbox[s2&0xff])
	o2 := uint32(aesInvSbox[s2>>24])<<24 | uint32(aesInvSbox[s1>>16&0xff])<<16 | uint32(aesInvSbox[s0>>8&0xff])<<8 | uint32(aesInvSbox[s3&0xff])
	o3 := uint32(aesInvSbox[s3>>24])<<24 | uint32(aesInvSbox[s2>>16&0xff])<<16 | uint32(aesInvSbox[s1>>8&0xff])<<8 | uint32(aesInvSbox[s0&0xff])

	_ = dst[15]
	binary.BigEndian.PutUint32(dst[0:], o0^xk[k+0])
	binary.BigEndian.PutUint32(dst[4:], o1^xk[k+1])
	binary.BigEndian.PutUint32(dst[8:], o2^xk[k+2])
	binary.BigEndian.PutUint32(dst[12:], o3^xk[k+3])
}
