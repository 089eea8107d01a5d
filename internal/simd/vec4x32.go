// Package simd provides a portable four-lane vector of 32-bit words.
//
// Vec4x32 holds one 32-bit word from each of four independent blocks so a
// bitsliced cipher can process four blocks per pass. Every operation acts
// lane by lane; there is no cross-lane arithmetic except Transpose.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// Lanes is the number of 32-bit lanes in a Vec4x32.
const Lanes = 4

// Vec4x32 is four 32-bit lanes.
type Vec4x32 [Lanes]uint32

// Splat returns a vector with every lane set to w.
func Splat(w uint32) Vec4x32 {
	return Vec4x32{w, w, w, w}
}

// LoadLE reads four little-endian words from b.
func LoadLE(b []byte) Vec4x32 {
	_ = b[15]
	return Vec4x32{
		binary.LittleEndian.Uint32(b[0:]),
		binary.LittleEndian.Uint32(b[4:]),
		binary.LittleEndian.Uint32(b[8:]),
		binary.LittleEndian.Uint32(b[12:]),
	}
}

// StoreLE writes the four lanes to b as little-endian words.
func (v Vec4x32) StoreLE(b []byte) {
	_ = b[15]
	binary.LittleEndian.PutUint32(b[0:], v[0])
	binary.LittleEndian.PutUint32(b[4:], v[1])
	binary.LittleEndian.PutUint32(b[8:], v[2])
	binary.LittleEndian.PutUint32(b[12:], v[3])
}

func (v Vec4x32) Xor(o Vec4x32) Vec4x32 {
	return Vec4x32{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

func (v Vec4x32) And(o Vec4x32) Vec4x32 {
	return Vec4x32{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

func (v Vec4x32) Or(o Vec4x32) Vec4x32 {
	return Vec4x32{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]}
}

// AndNot returns v &^ o.
func (v Vec4x32) AndNot(o Vec4x32) Vec4x32 {
	return Vec4x32{v[0] &^ o[0], v[1] &^ o[1], v[2] &^ o[2], v[3] &^ o[3]}
}

func (v Vec4x32) Not() Vec4x32 {
	return Vec4x32{^v[0], ^v[1], ^v[2], ^v[3]}
}

// Add adds lane by lane modulo 2^32.
func (v Vec4x32) Add(o Vec4x32) Vec4x32 {
	return Vec4x32{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// XorWord XORs w into every lane.
func (v Vec4x32) XorWord(w uint32) Vec4x32 {
	return Vec4x32{v[0] ^ w, v[1] ^ w, v[2] ^ w, v[3] ^ w}
}

func (v Vec4x32) RotL(n int) Vec4x32 {
	return Vec4x32{
		bits.RotateLeft32(v[0], n),
		bits.RotateLeft32(v[1], n),
		bits.RotateLeft32(v[2], n),
		bits.RotateLeft32(v[3], n),
	}
}

func (v Vec4x32) RotR(n int) Vec4x32 {
	return v.RotL(-n)
}

func (v Vec4x32) Shl(n uint) Vec4x32 {
	return Vec4x32{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

func (v Vec4x32) Shr(n uint) Vec4x32 {
	return Vec4x32{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

// Transpose treats a, b, c and d as the rows of a 4x4 word matrix and
// returns its columns. Loading four blocks and transposing leaves word i of
// every block in the i-th result.
func Transpose(a, b, c, d Vec4x32) (Vec4x32, Vec4x32, Vec4x32, Vec4x32) {
	return Vec4x32{a[0], b[0], c[0], d[0]},
		Vec4x32{a[1], b[1], c[1], d[1]},
		Vec4x32{a[2], b[2], c[2], d[2]},
		Vec4x32{a[3], b[3], c[3], d[3]}
}
