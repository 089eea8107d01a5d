package mp

import "math/bits"

// Choice is a constant-time boolean: 1 for true, 0 for false.
type Choice Word

const (
	Yes = Choice(1)
	No  = Choice(0)
)

// Not inverts c.
func Not(c Choice) Choice { return 1 ^ c }

// mask expands c to all zeros or all ones.
func (c Choice) mask() Word { return -Word(c) }

// CtSelect returns x if on == 1 and y if on == 0, without branching.
func CtSelect(on Choice, x, y Word) Word {
	return y ^ (on.mask() & (y ^ x))
}

// CtEq returns 1 if x == y and 0 otherwise, without branching.
func CtEq(x, y Word) Choice {
	_, c1 := bits.Sub64(x, y, 0)
	_, c2 := bits.Sub64(y, x, 0)
	return Not(Choice(c1 | c2))
}

// CtGeq returns 1 if x >= y and 0 otherwise, without branching.
func CtGeq(x, y Word) Choice {
	_, borrow := bits.Sub64(x, y, 0)
	return Not(Choice(borrow))
}

// CtIsZero returns 1 if every word of x is zero.
func CtIsZero(x []Word) Choice {
	var acc Word
	for _, w := range x {
		acc |= w
	}
	return CtEq(acc, 0)
}

// CtAssign sets x = y when on == 1 and leaves x unchanged otherwise.
// len(y) must be at least len(x).
func CtAssign(on Choice, x, y []Word) {
	y = y[:len(x)]
	for i := range x {
		x[i] = CtSelect(on, y[i], x[i])
	}
}

// CtLookup copies table[idx] into dst, touching every entry so the memory
// access pattern is independent of idx. Every entry must be at least
// len(dst) words.
func CtLookup(dst []Word, table [][]Word, idx int) {
	clear(dst)
	for i, entry := range table {
		CtAssign(CtEq(Word(i), Word(idx)), dst, entry)
	}
}
