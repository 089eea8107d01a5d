package mp

import "math/bits"

// Word is one limb of a multi-precision number.
type Word = uint64

const (
	// WordBits is the width of a Word in bits.
	WordBits = 64
	// WordBytes is the width of a Word in bytes.
	WordBytes = WordBits / 8
	// WordMax is the largest Word value.
	WordMax Word = 1<<WordBits - 1
	// WordTopBit has only the most significant bit of a Word set.
	WordTopBit Word = 1 << (WordBits - 1)
)

// WordAdd returns x + y + carry and the carry out. carry must be 0 or 1.
func WordAdd(x, y, carry Word) (sum, carryOut Word) {
	return bits.Add64(x, y, carry)
}

// WordSub returns x - y - borrow and the borrow out. borrow must be 0 or 1.
func WordSub(x, y, borrow Word) (diff, borrowOut Word) {
	return bits.Sub64(x, y, borrow)
}

// WordMadd2 returns the double-width value a*b + c as (lo, hi).
func WordMadd2(a, b, c Word) (lo, hi Word) {
	hi, lo = bits.Mul64(a, b)
	var cc Word
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	return lo, hi
}

// WordMadd3 returns the double-width value a*b + c + d as (lo, hi).
// The result cannot overflow two words.
func WordMadd3(a, b, c, d Word) (lo, hi Word) {
	hi, lo = bits.Mul64(a, b)
	var cc Word
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	lo, cc = bits.Add64(lo, d, 0)
	hi += cc
	return lo, hi
}

// word3MulAdd adds x*y to the three-word accumulator (w2, w1, w0).
func word3MulAdd(w2, w1, w0, x, y Word) (Word, Word, Word) {
	hi, lo := bits.Mul64(x, y)
	var c Word
	w0, c = bits.Add64(w0, lo, 0)
	w1, c = bits.Add64(w1, hi, c)
	w2 += c
	return w2, w1, w0
}

// word3MulAdd2 adds 2*x*y to the three-word accumulator (w2, w1, w0).
func word3MulAdd2(w2, w1, w0, x, y Word) (Word, Word, Word) {
	hi, lo := bits.Mul64(x, y)
	top := hi >> (WordBits - 1)
	hi = hi<<1 | lo>>(WordBits-1)
	lo <<= 1
	var c Word
	w0, c = bits.Add64(w0, lo, 0)
	w1, c = bits.Add64(w1, hi, c)
	w2, _ = bits.Add64(w2, top, c)
	return w2, w1, w0
}

// Word8Add2 sets x[0:8] += y[0:8] with carry-in, returning the carry out.
func Word8Add2(x, y []Word, carry Word) Word {
	_, _ = x[7], y[7]
	x[0], carry = bits.Add64(x[0], y[0], carry)
	x[1], carry = bits.Add64(x[1], y[1], carry)
	x[2], carry = bits.Add64(x[2], y[2], carry)
	x[3], carry = bits.Add64(x[3], y[3], carry)
	x[4], carry = bits.Add64(x[4], y[4], carry)
	x[5], carry = bits.Add64(x[5], y[5], carry)
	x[6], carry = bits.Add64(x[6], y[6], carry)
	x[7], carry = bits.Add64(x[7], y[7], carry)
	return carry
}

// Word8Add3 sets z[0:8] = x[0:8] + y[0:8] with carry-in, returning the carry out.
func Word8Add3(z, x, y []Word, carry Word) Word {
	_, _, _ = z[7], x[7], y[7]
	z[0], carry = bits.Add64(x[0], y[0], carry)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	z[4], carry = bits.Add64(x[4], y[4], carry)
	z[5], carry = bits.Add64(x[5], y[5], carry)
	z[6], carry = bits.Add64(x[6], y[6], carry)
	z[7], carry = bits.Add64(x[7], y[7], carry)
	return carry
}

// Word8Sub2 sets x[0:8] -= y[0:8] with borrow-in, returning the borrow out.
func Word8Sub2(x, y []Word, borrow Word) Word {
	_, _ = x[7], y[7]
	x[0], borrow = bits.Sub64(x[0], y[0], borrow)
	x[1], borrow = bits.Sub64(x[1], y[1], borrow)
	x[2], borrow = bits.Sub64(x[2], y[2], borrow)
	x[3], borrow = bits.Sub64(x[3], y[3], borrow)
	x[4], borrow = bits.Sub64(x[4], y[4], borrow)
	x[5], borrow = bits.Sub64(x[5], y[5], borrow)
	x[6], borrow = bits.Sub64(x[6], y[6], borrow)
	x[7], borrow = bits.Sub64(x[7], y[7], borrow)
	return borrow
}

// Word8Sub2Rev sets x[0:8] = y[0:8] - x[0:8] with borrow-in, returning the borrow out.
func Word8Sub2Rev(x, y []Word, borrow Word) Word {
	_, _ = x[7], y[7]
	x[0], borrow = bits.Sub64(y[0], x[0], borrow)
	x[1], borrow = bits.Sub64(y[1], x[1], borrow)
	x[2], borrow = bits.Sub64(y[2], x[2], borrow)
	x[3], borrow = bits.Sub64(y[3], x[3], borrow)
	x[4], borrow = bits.Sub64(y[4], x[4], borrow)
	x[5], borrow = bits.Sub64(y[5], x[5], borrow)
	x[6], borrow = bits.Sub64(y[6], x[6], borrow)
	x[7], borrow = bits.Sub64(y[7], x[7], borrow)
	return borrow
}

// Word8Sub3 sets z[0:8] = x[0:8] - y[0:8] with borrow-in, returning the borrow out.
func Word8Sub3(z, x, y []Word, borrow Word) Word {
	_, _, _ = z[7], x[7], y[7]
	z[0], borrow = bits.Sub64(x[0], y[0], borrow)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	z[4], borrow = bits.Sub64(x[4], y[4], borrow)
	z[5], borrow = bits.Sub64(x[5], y[5], borrow)
	z[6], borrow = bits.Sub64(x[6], y[6], borrow)
	z[7], borrow = bits.Sub64(x[7], y[7], borrow)
	return borrow
}

// Word8LinMul2 sets x[0:8] = x[0:8]*y + carry, returning the high word.
func Word8LinMul2(x []Word, y, carry Word) Word {
	_ = x[7]
	x[0], carry = WordMadd2(x[0], y, carry)
	x[1], carry = WordMadd2(x[1], y, carry)
	x[2], carry = WordMadd2(x[2], y, carry)
	x[3], carry = WordMadd2(x[3], y, carry)
	x[4], carry = WordMadd2(x[4], y, carry)
	x[5], carry = WordMadd2(x[5], y, carry)
	x[6], carry = WordMadd2(x[6], y, carry)
	x[7], carry = WordMadd2(x[7], y, carry)
	return carry
}

// Word8LinMul3 sets z[0:8] = x[0:8]*y + carry, returning the high word.
func Word8LinMul3(z, x []Word, y, carry Word) Word {
	_, _ = z[7], x[7]
	z[0], carry = WordMadd2(x[0], y, carry)
	z[1], carry = WordMadd2(x[1], y, carry)
	z[2], carry = WordMadd2(x[2], y, carry)
	z[3], carry = WordMadd2(x[3], y, carry)
	z[4], carry = WordMadd2(x[4], y, carry)
	z[5], carry = WordMadd2(x[5], y, carry)
	z[6], carry = WordMadd2(x[6], y, carry)
	z[7], carry = WordMadd2(x[7], y, carry)
	return carry
}

// Word8Madd3 sets z[0:8] = x[0:8]*y + z[0:8] + carry, returning the high word.
func Word8Madd3(z, x []Word, y, carry Word) Word {
	_, _ = z[7], x[7]
	z[0], carry = WordMadd3(x[0], y, z[0], carry)
	z[1], carry = WordMadd3(x[1], y, z[1], carry)
	z[2], carry = WordMadd3(x[2], y, z[2], carry)
	z[3], carry = WordMadd3(x[3], y, z[3], carry)
	z[4], carry = WordMadd3(x[4], y, z[4], carry)
	z[5], carry = WordMadd3(x[5], y, z[5], carry)
	z[6], carry = WordMadd3(x[6], y, z[6], carry)
	z[7], carry = WordMadd3(x[7], y, z[7], carry)
	return carry
}
