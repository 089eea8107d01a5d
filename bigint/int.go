package bigint

import (
	"math/bits"

	"github.com/vaultsandbox/cryptocore/internal/mp"
)

// Word is one 64-bit limb.
type Word = mp.Word

// WordBits is the width of a Word in bits.
const WordBits = mp.WordBits

// Int is a signed arbitrary-precision integer. The zero value is 0.
//
// Limbs are stored least significant first and the slice may carry zero
// words above the significant length. Zero is always non-negative.
//
// Methods without the Assign suffix return a fresh value and leave their
// operands alone; the Assign forms, Inc, Dec, SetBit, ClearBit and MaskBits
// modify the receiver and return it.
type Int struct {
	neg   bool
	limbs []Word
}

// alloc returns a zeroed limb slice of at least n words, rounded up to a
// multiple of eight.
func alloc(n int) []Word {
	return make([]Word, (n+7)&^7)
}

// NewInt returns x as an Int.
func NewInt(x int64) *Int {
	z := NewUint(uint64(x))
	if x < 0 {
		z.limbs[0] = uint64(-x)
		z.neg = true
	}
	return z
}

// NewUint returns x as an Int.
func NewUint(x uint64) *Int {
	z := &Int{limbs: alloc(1)}
	z.limbs[0] = x
	return z
}

// FromWords returns the non-negative Int whose limbs, least significant
// first, are ws. The words are copied.
func FromWords(ws []Word) *Int {
	z := &Int{limbs: alloc(len(ws))}
	copy(z.limbs, ws)
	return z
}

// PowerOfTwo returns 2^n.
func PowerOfTwo(n uint) *Int {
	z := &Int{}
	z.SetBit(n)
	return z
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	z := &Int{neg: x.neg, limbs: alloc(x.SigWords())}
	copy(z.limbs, x.limbs)
	return z
}

// Set copies y into x and returns x.
func (x *Int) Set(y *Int) *Int {
	if x == y {
		return x
	}
	sw := y.SigWords()
	x.growTo(sw)
	clear(x.limbs)
	copy(x.limbs, y.limbs[:sw])
	x.neg = y.neg
	return x
}

// Swap exchanges the values of x and y.
func (x *Int) Swap(y *Int) {
	x.neg, y.neg = y.neg, x.neg
	x.limbs, y.limbs = y.limbs, x.limbs
}

// Clear zeroes every limb in place, keeping the allocation, and makes x 0.
func (x *Int) Clear() {
	clear(x.limbs)
	x.neg = false
}

// growTo extends the limb slice to hold at least n words.
func (x *Int) growTo(n int) {
	if len(x.limbs) >= n {
		return
	}
	grown := alloc(n)
	copy(grown, x.limbs)
	x.limbs = grown
}

// norm keeps zero non-negative.
func (x *Int) norm() *Int {
	if x.neg && x.SigWords() == 0 {
		x.neg = false
	}
	return x
}

// Size returns the number of allocated limbs.
func (x *Int) Size() int {
	return len(x.limbs)
}

// SigWords returns the number of limbs up to and including the most
// significant nonzero one.
func (x *Int) SigWords() int {
	return mp.SigWords(x.limbs)
}

// WordAt returns limb i, or 0 when i is beyond the allocation.
func (x *Int) WordAt(i int) Word {
	if i < 0 || i >= len(x.limbs) {
		return 0
	}
	return x.limbs[i]
}

// Bits returns the limbs of |x|, least significant first. The slice aliases
// x and is intended for packages that run word-level kernels over an Int.
func (x *Int) Bits() []Word {
	return x.limbs
}

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return x.SigWords() == 0
}

// IsNegative reports whether x < 0.
func (x *Int) IsNegative() bool {
	return x.neg && !x.IsZero()
}

// IsEven reports whether x is even.
func (x *Int) IsEven() bool {
	return x.WordAt(0)&1 == 0
}

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool {
	return x.WordAt(0)&1 == 1
}

// BitLen returns the length of |x| in bits; 0 has length 0.
func (x *Int) BitLen() int {
	sw := x.SigWords()
	if sw == 0 {
		return 0
	}
	return (sw-1)*WordBits + bits.Len64(x.limbs[sw-1])
}

// ByteLen returns the length of |x| in bytes.
func (x *Int) ByteLen() int {
	return (x.BitLen() + 7) / 8
}

// ByteAt returns byte n of |x|, counting from the least significant, or 0
// beyond the end.
func (x *Int) ByteAt(n int) byte {
	return byte(x.WordAt(n/mp.WordBytes) >> (8 * uint(n%mp.WordBytes)))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := mp.Cmp(x.limbs, y.limbs)
	if xs < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return mp.Cmp(x.limbs, y.limbs)
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := x.Clone()
	z.neg = !z.neg
	return z.norm()
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	z := x.Clone()
	z.neg = false
	return z
}

// Int64 returns x as an int64. The result is undefined when |x| >= 2^63.
func (x *Int) Int64() int64 {
	v := int64(x.WordAt(0))
	if x.IsNegative() {
		return -v
	}
	return v
}

// Uint64 returns the low word of |x|.
func (x *Int) Uint64() uint64 {
	return x.WordAt(0)
}
