package block

import "math/bits"

// lane is a 32-bit word or a vector of them. The Serpent rounds are written
// once against it and instantiated for one block or four.
type lane[L any] interface {
	Xor(L) L
	And(L) L
	Not() L
	RotL(int) L
	Shl(uint) L
	XorWord(uint32) L
}

// word32 is the single-block lane.
type word32 uint32

func (w word32) Xor(o word32) word32     { return w ^ o }
func (w word32) And(o word32) word32     { return w & o }
func (w word32) Not() word32             { return ^w }
func (w word32) RotL(n int) word32       { return word32(bits.RotateLeft32(uint32(w), n)) }
func (w word32) Shl(n uint) word32       { return w << n }
func (w word32) XorWord(k uint32) word32 { return w ^ word32(k) }
