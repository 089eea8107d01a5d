package mp

import "math/bits"

// SigWords returns the number of words in x below its topmost nonzero word.
func SigWords(x []Word) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}

// Add2 sets x += y, propagating the carry through all of x. len(x) must be
// at least len(y). The carry out of the top word of x is returned.
func Add2(x, y []Word) Word {
	if len(x) < len(y) {
		panic("mp: Add2 destination shorter than addend")
	}
	n8 := len(y) &^ 7
	var carry Word
	for i := 0; i < n8; i += 8 {
		carry = Word8Add2(x[i:i+8], y[i:i+8], carry)
	}
	for i := n8; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	for i := len(y); i < len(x); i++ {
		x[i], carry = bits.Add64(x[i], 0, carry)
	}
	return carry
}

// Add3 sets z[0:max] = x + y where max = max(len(x), len(y)) and returns the
// carry out. z must hold at least max words.
func Add3(z, x, y []Word) Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(z) < len(x) {
		panic("mp: Add3 destination too short")
	}
	n8 := len(y) &^ 7
	var carry Word
	for i := 0; i < n8; i += 8 {
		carry = Word8Add3(z[i:i+8], x[i:i+8], y[i:i+8], carry)
	}
	for i := n8; i < len(y); i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	for i := len(y); i < len(x); i++ {
		z[i], carry = bits.Add64(x[i], 0, carry)
	}
	return carry
}

// Sub2 sets x -= y, propagating the borrow through all of x. len(x) must be
// at least len(y). The borrow out of the top word is returned.
func Sub2(x, y []Word) Word {
	if len(x) < len(y) {
		panic("mp: Sub2 destination shorter than subtrahend")
	}
	n8 := len(y) &^ 7
	var borrow Word
	for i := 0; i < n8; i += 8 {
		borrow = Word8Sub2(x[i:i+8], y[i:i+8], borrow)
	}
	for i := n8; i < len(y); i++ {
		x[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	for i := len(y); i < len(x); i++ {
		x[i], borrow = bits.Sub64(x[i], 0, borrow)
	}
	return borrow
}

// Sub2Rev sets x = y - x. x and y must have equal length.
func Sub2Rev(x, y []Word) Word {
	if len(x) != len(y) {
		panic("mp: Sub2Rev length mismatch")
	}
	n8 := len(y) &^ 7
	var borrow Word
	for i := 0; i < n8; i += 8 {
		borrow = Word8Sub2Rev(x[i:i+8], y[i:i+8], borrow)
	}
	for i := n8; i < len(y); i++ {
		x[i], borrow = bits.Sub64(y[i], x[i], borrow)
	}
	return borrow
}

// Sub3 sets z[0:len(x)] = x - y and returns the borrow. len(x) must be at
// least len(y).
func Sub3(z, x, y []Word) Word {
	if len(x) < len(y) || len(z) < len(x) {
		panic("mp: Sub3 operand sizes")
	}
	n8 := len(y) &^ 7
	var borrow Word
	for i := 0; i < n8; i += 8 {
		borrow = Word8Sub3(z[i:i+8], x[i:i+8], y[i:i+8], borrow)
	}
	for i := n8; i < len(y); i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	for i := len(y); i < len(x); i++ {
		z[i], borrow = bits.Sub64(x[i], 0, borrow)
	}
	return borrow
}

// Shl1 shifts the low xSize words of x left in place by wordShift words and
// bitShift bits. x must hold xSize+wordShift words, plus one more when
// bitShift is nonzero.
func Shl1(x []Word, xSize, wordShift int, bitShift uint) {
	if wordShift > 0 {
		copy(x[wordShift:wordShift+xSize], x[:xSize])
		clear(x[:wordShift])
	}
	if bitShift > 0 {
		var carry Word
		for j := wordShift; j < xSize+wordShift; j++ {
			w := x[j]
			x[j] = w<<bitShift | carry
			carry = w >> (WordBits - bitShift)
		}
		x[xSize+wordShift] = carry
	}
}

// Shr1 shifts the low xSize words of x right in place by wordShift words and
// bitShift bits, zero filling from the top.
func Shr1(x []Word, xSize, wordShift int, bitShift uint) {
	if xSize <= wordShift {
		clear(x[:xSize])
		return
	}
	if wordShift > 0 {
		copy(x, x[wordShift:xSize])
		clear(x[xSize-wordShift : xSize])
	}
	if bitShift > 0 {
		var carry Word
		for top := xSize - wordShift; top > 0; top-- {
			w := x[top-1]
			x[top-1] = w>>bitShift | carry
			carry = w << (WordBits - bitShift)
		}
	}
}

// Shl2 sets y = x << (wordShift*WordBits + bitShift). y must hold
// len(x)+wordShift words, plus one more when bitShift is nonzero; the low
// wordShift words of y are cleared.
func Shl2(y, x []Word, wordShift int, bitShift uint) {
	clear(y[:wordShift])
	copy(y[wordShift:], x)
	if bitShift > 0 {
		var carry Word
		for j := wordShift; j < len(x)+wordShift; j++ {
			w := y[j]
			y[j] = w<<bitShift | carry
			carry = w >> (WordBits - bitShift)
		}
		y[len(x)+wordShift] = carry
	}
}

// Shr2 sets y = x >> (wordShift*WordBits + bitShift). y must hold
// len(x)-wordShift words.
func Shr2(y, x []Word, wordShift int, bitShift uint) {
	if len(x) <= wordShift {
		return
	}
	n := len(x) - wordShift
	copy(y[:n], x[wordShift:])
	if bitShift > 0 {
		var carry Word
		for j := n; j > 0; j-- {
			w := y[j-1]
			y[j-1] = w>>bitShift | carry
			carry = w << (WordBits - bitShift)
		}
	}
}

// LinMul2 sets x *= y and returns the word carried out of the top.
func LinMul2(x []Word, y Word) Word {
	n8 := len(x) &^ 7
	var carry Word
	for i := 0; i < n8; i += 8 {
		carry = Word8LinMul2(x[i:i+8], y, carry)
	}
	for i := n8; i < len(x); i++ {
		x[i], carry = WordMadd2(x[i], y, carry)
	}
	return carry
}

// LinMul3 sets z[0:len(x)+1] = x * y. z must hold len(x)+1 words.
func LinMul3(z, x []Word, y Word) {
	if len(z) <= len(x) {
		panic("mp: LinMul3 destination too short")
	}
	n8 := len(x) &^ 7
	var carry Word
	for i := 0; i < n8; i += 8 {
		carry = Word8LinMul3(z[i:i+8], x[i:i+8], y, carry)
	}
	for i := n8; i < len(x); i++ {
		z[i], carry = WordMadd2(x[i], y, carry)
	}
	z[len(x)] = carry
}

// Cmp compares x and y as unsigned magnitudes, treating the shorter operand
// as zero padded, and returns -1, 0 or +1.
func Cmp(x, y []Word) int {
	if len(x) < len(y) {
		return -Cmp(y, x)
	}
	for n := len(x); n > len(y); n-- {
		if x[n-1] != 0 {
			return 1
		}
	}
	for j := len(y); j > 0; j-- {
		if x[j-1] > y[j-1] {
			return 1
		}
		if x[j-1] < y[j-1] {
			return -1
		}
	}
	return 0
}

// DivOp returns floor((n1*2^64 + n0) / d) truncated to one word, computed by
// bit-serial restoring division. d must be nonzero; callers keep n1 < d for
// an exact quotient.
func DivOp(n1, n0, d Word) Word {
	if d == 0 {
		panic("mp: DivOp division by zero")
	}
	high := n1 % d
	var quotient Word
	for i := 0; i < WordBits; i++ {
		highTop := high & WordTopBit
		high <<= 1
		high |= (n0 >> (WordBits - 1 - i)) & 1
		quotient <<= 1
		if highTop != 0 || high >= d {
			high -= d
			quotient |= 1
		}
	}
	return quotient
}

// ModOp returns (n1*2^64 + n0) mod d. d must be nonzero.
func ModOp(n1, n0, d Word) Word {
	q := DivOp(n1, n0, d)
	lo, _ := WordMadd2(q, d, 0)
	return n0 - lo
}
