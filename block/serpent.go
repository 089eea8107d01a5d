package block

//go:generate go run gen_sboxes.go

import (
	"encoding/binary"
	"math/bits"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/internal/simd"
)

// phi is the fractional part of the golden ratio used by the key schedule.
const phi = 0x9E3779B9

// serpentRounds is the number of S-box rounds.
const serpentRounds = 32

type serpent struct {
	rk      [4 * (serpentRounds + 1)]uint32
	keySize int
}

// NewSerpent returns Serpent keyed with a 16, 24 or 32 byte key. Blocks and
// key bytes are read as little-endian words.
func NewSerpent(key []byte) (Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, coreerr.Argument("block.NewSerpent", "invalid key size %d", len(key))
	}
	s := &serpent{keySize: len(key)}
	s.expandKey(key)
	return s, nil
}

func (s *serpent) Name() string   { return "Serpent" }
func (s *serpent) BlockSize() int { return BlockSize }
func (s *serpent) KeySize() int   { return s.keySize }

func (s *serpent) expandKey(key []byte) {
	var w [8 + len(s.rk)]uint32
	for i, b := range key {
		w[i/4] |= uint32(b) << (8 * (i % 4))
	}
	if len(key) < 32 {
		w[len(key)/4] |= 1 << (8 * (len(key) % 4))
	}
	for i := 8; i < len(w); i++ {
		w[i] = bits.RotateLeft32(w[i-8]^w[i-5]^w[i-3]^w[i-1]^phi^uint32(i-8), 11)
	}

	pre := w[8:]
	for i := 0; i <= serpentRounds; i++ {
		a, b, c, d := word32(pre[4*i]), word32(pre[4*i+1]), word32(pre[4*i+2]), word32(pre[4*i+3])
		a, b, c, d = sboxByIndex(((3-i)%8+8)%8, a, b, c, d)
		s.rk[4*i], s.rk[4*i+1], s.rk[4*i+2], s.rk[4*i+3] = uint32(a), uint32(b), uint32(c), uint32(d)
	}
	clear(w[:])
}

func sboxByIndex(i int, a, b, c, d word32) (word32, word32, word32, word32) {
	switch i {
	case 0:
		return sbox0(a, b, c, d)
	case 1:
		return sbox1(a, b, c, d)
	case 2:
		return sbox2(a, b, c, d)
	case 3:
		return sbox3(a, b, c, d)
	case 4:
		return sbox4(a, b, c, d)
	case 5:
		return sbox5(a, b, c, d)
	case 6:
		return sbox6(a, b, c, d)
	default:
		return sbox7(a, b, c, d)
	}
}

func (s *serpent) Encrypt(dst, src []byte) {
	checkBlocks("serpent", dst, src, 1)
	x0, x1, x2, x3 := load4(src)
	x0, x1, x2, x3 = serpentEncrypt(&s.rk, x0, x1, x2, x3)
	store4(dst, x0, x1, x2, x3)
}

func (s *serpent) Decrypt(dst, src []byte) {
	checkBlocks("serpent", dst, src, 1)
	x0, x1, x2, x3 := load4(src)
	x0, x1, x2, x3 = serpentDecrypt(&s.rk, x0, x1, x2, x3)
	store4(dst, x0, x1, x2, x3)
}

// EncryptN processes four blocks per pass on the vector path and finishes
// any remainder one block at a time.
func (s *serpent) EncryptN(dst, src []byte, n int) {
	checkBlocks("serpent", dst, src, n)
	i := 0
	for ; i+simd.Lanes <= n; i += simd.Lanes {
		off := i * BlockSize
		x0, x1, x2, x3 := loadVec(src[off:])
		x0, x1, x2, x3 = serpentEncrypt(&s.rk, x0, x1, x2, x3)
		storeVec(dst[off:], x0, x1, x2, x3)
	}
	for ; i < n; i++ {
		off := i * BlockSize
		s.Encrypt(dst[off:off+BlockSize], src[off:off+BlockSize])
	}
}

func (s *serpent) DecryptN(dst, src []byte, n int) {
	checkBlocks("serpent", dst, src, n)
	i := 0
	for ; i+simd.Lanes <= n; i += simd.Lanes {
		off := i * BlockSize
		x0, x1, x2, x3 := loadVec(src[off:])
		x0, x1, x2, x3 = serpentDecrypt(&s.rk, x0, x1, x2, x3)
		storeVec(dst[off:], x0, x1, x2, x3)
	}
	for ; i < n; i++ {
		off := i * BlockSize
		s.Decrypt(dst[off:off+BlockSize], src[off:off+BlockSize])
	}
}

func load4(b []byte) (word32, word32, word32, word32) {
	_ = b[15]
	return word32(binary.LittleEndian.Uint32(b[0:])),
		word32(binary.LittleEndian.Uint32(b[4:])),
		word32(binary.LittleEndian.Uint32(b[8:])),
		word32(binary.LittleEndian.Uint32(b[12:]))
}

func store4(b []byte, x0, x1, x2, x3 word32) {
	_ = b[15]
	binary.LittleEndian.PutUint32(b[0:], uint32(x0))
	binary.LittleEndian.PutUint32(b[4:], uint32(x1))
	binary.LittleEndian.PutUint32(b[8:], uint32(x2))
	binary.LittleEndian.PutUint32(b[12:], uint32(x3))
}

// loadVec reads four consecutive blocks and transposes them so the i-th
// result holds word i of every block.
func loadVec(b []byte) (simd.Vec4x32, simd.Vec4x32, simd.Vec4x32, simd.Vec4x32) {
	return simd.Transpose(
		simd.LoadLE(b[0:]),
		simd.LoadLE(b[16:]),
		simd.LoadLE(b[32:]),
		simd.LoadLE(b[48:]),
	)
}

func storeVec(b []byte, x0, x1, x2, x3 simd.Vec4x32) {
	a, c, d, e := simd.Transpose(x0, x1, x2, x3)
	a.StoreLE(b[0:])
	c.StoreLE(b[16:])
	d.StoreLE(b[32:])
	e.StoreLE(b[48:])
}

func mix[L lane[L]](rk *[4 * (serpentRounds + 1)]uint32, r int, x0, x1, x2, x3 L) (L, L, L, L) {
	k := rk[4*r : 4*r+4]
	return x0.XorWord(k[0]), x1.XorWord(k[1]), x2.XorWord(k[2]), x3.XorWord(k[3])
}

func transform[L lane[L]](x0, x1, x2, x3 L) (L, L, L, L) {
	x0 = x0.RotL(13)
	x2 = x2.RotL(3)
	x1 = x1.Xor(x0).Xor(x2)
	x3 = x3.Xor(x2).Xor(x0.Shl(3))
	x1 = x1.RotL(1)
	x3 = x3.RotL(7)
	x0 = x0.Xor(x1).Xor(x3)
	x2 = x2.Xor(x3).Xor(x1.Shl(7))
	x0 = x0.RotL(5)
	x2 = x2.RotL(22)
	return x0, x1, x2, x3
}

func inverseTransform[L lane[L]](x0, x1, x2, x3 L) (L, L, L, L) {
	x2 = x2.RotL(-22)
	x0 = x0.RotL(-5)
	x2 = x2.Xor(x3).Xor(x1.Shl(7))
	x0 = x0.Xor(x1).Xor(x3)
	x3 = x3.RotL(-7)
	x1 = x1.RotL(-1)
	x3 = x3.Xor(x2).Xor(x0.Shl(3))
	x1 = x1.Xor(x0).Xor(x2)
	x2 = x2.RotL(-3)
	x0 = x0.RotL(-13)
	return x0, x1, x2, x3
}

func serpentEncrypt[L lane[L]](rk *[4 * (serpentRounds + 1)]uint32, x0, x1, x2, x3 L) (L, L, L, L) {
	for r := 0; r < serpentRounds; r += 8 {
		x0, x1, x2, x3 = mix(rk, r, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox0(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+1, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox1(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+2, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox2(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+3, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox3(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+4, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox4(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+5, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox5(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+6, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox6(x0, x1, x2, x3)
		x0, x1, x2, x3 = transform(x0, x1, x2, x3)

		x0, x1, x2, x3 = mix(rk, r+7, x0, x1, x2, x3)
		x0, x1, x2, x3 = sbox7(x0, x1, x2, x3)
		if r+8 < serpentRounds {
			x0, x1, x2, x3 = transform(x0, x1, x2, x3)
		}
	}
	return mix(rk, serpentRounds, x0, x1, x2, x3)
}

func serpentDecrypt[L lane[L]](rk *[4 * (serpentRounds + 1)]uint32, x0, x1, x2, x3 L) (L, L, L, L) {
	x0, x1, x2, x3 = mix(rk, serpentRounds, x0, x1, x2, x3)
	for r := serpentRounds - 8; r >= 0; r -= 8 {
		if r+8 < serpentRounds {
			x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		}
		x0, x1, x2, x3 = sboxInv7(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+7, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv6(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+6, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv5(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+5, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv4(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+4, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv3(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+3, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv2(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+2, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv1(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r+1, x0, x1, x2, x3)

		x0, x1, x2, x3 = inverseTransform(x0, x1, x2, x3)
		x0, x1, x2, x3 = sboxInv0(x0, x1, x2, x3)
		x0, x1, x2, x3 = mix(rk, r, x0, x1, x2, x3)
	}
	return x0, x1, x2, x3
}
