package bigint

import "github.com/vaultsandbox/cryptocore/internal/mp"

// addMag returns |x| + |y| as a fresh limb slice.
func addMag(x, y []Word) []Word {
	xs, ys := mp.SigWords(x), mp.SigWords(y)
	z := alloc(max(xs, ys) + 1)
	z[max(xs, ys)] = mp.Add3(z, x[:xs], y[:ys])
	return z
}

// subMag returns |x| - |y|; the caller guarantees |x| >= |y|.
func subMag(x, y []Word) []Word {
	xs, ys := mp.SigWords(x), mp.SigWords(y)
	z := alloc(xs)
	mp.Sub3(z, x[:xs], y[:ys])
	return z
}

// addSigned returns x + (-1)^yNeg * |y|.
func addSigned(x *Int, y []Word, yNeg bool) *Int {
	if x.neg == yNeg {
		return &Int{neg: x.neg, limbs: addMag(x.limbs, y)}
	}
	switch c := mp.Cmp(x.limbs, y); {
	case c == 0:
		return &Int{}
	case c > 0:
		return (&Int{neg: x.neg, limbs: subMag(x.limbs, y)}).norm()
	default:
		return (&Int{neg: yNeg, limbs: subMag(y, x.limbs)}).norm()
	}
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	return addSigned(x, y.limbs, y.neg).norm()
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return addSigned(x, y.limbs, !y.neg).norm()
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	xs, ys := x.SigWords(), y.SigWords()
	if xs == 0 || ys == 0 {
		return &Int{}
	}
	z := &Int{neg: x.neg != y.neg, limbs: alloc(xs + ys)}
	ws := make([]Word, len(z.limbs))
	mp.Mul(z.limbs, ws, x.limbs, xs, y.limbs, ys)
	return z.norm()
}

// MulWord returns x * y.
func (x *Int) MulWord(y Word) *Int {
	xs := x.SigWords()
	if xs == 0 || y == 0 {
		return &Int{}
	}
	z := &Int{neg: x.neg, limbs: alloc(xs + 1)}
	mp.LinMul3(z.limbs, x.limbs[:xs], y)
	return z
}

// Square returns x * x.
func (x *Int) Square() *Int {
	xs := x.SigWords()
	if xs == 0 {
		return &Int{}
	}
	z := &Int{limbs: alloc(2 * xs)}
	ws := make([]Word, len(z.limbs))
	mp.Sqr(z.limbs, ws, x.limbs, xs)
	return z
}

// Lsh returns x << n. The sign is kept.
func (x *Int) Lsh(n uint) *Int {
	xs := x.SigWords()
	if xs == 0 {
		return &Int{}
	}
	wordShift, bitShift := int(n/WordBits), n%WordBits
	z := &Int{neg: x.neg, limbs: alloc(xs + wordShift + 1)}
	mp.Shl2(z.limbs, x.limbs[:xs], wordShift, bitShift)
	return z
}

// Rsh returns the magnitude of x shifted right by n bits, carrying x's sign.
// This truncates toward zero, so NewInt(-5).Rsh(1) is -2.
func (x *Int) Rsh(n uint) *Int {
	if x.BitLen() <= int(n) {
		return &Int{}
	}
	xs := x.SigWords()
	wordShift, bitShift := int(n/WordBits), n%WordBits
	z := &Int{neg: x.neg, limbs: alloc(xs - wordShift)}
	mp.Shr2(z.limbs, x.limbs[:xs], wordShift, bitShift)
	return z.norm()
}

// AddAssign sets x = x + y and returns x.
func (x *Int) AddAssign(y *Int) *Int {
	return x.Set(x.Add(y))
}

// SubAssign sets x = x - y and returns x.
func (x *Int) SubAssign(y *Int) *Int {
	return x.Set(x.Sub(y))
}

// MulAssign sets x = x * y and returns x.
func (x *Int) MulAssign(y *Int) *Int {
	return x.Set(x.Mul(y))
}

// LshAssign sets x = x << n and returns x.
func (x *Int) LshAssign(n uint) *Int {
	return x.Set(x.Lsh(n))
}

// RshAssign sets x = x >> n, with Rsh's rounding, and returns x.
func (x *Int) RshAssign(n uint) *Int {
	return x.Set(x.Rsh(n))
}

// Inc adds one to x and returns x.
func (x *Int) Inc() *Int {
	return x.Set(addSigned(x, []Word{1}, false))
}

// Dec subtracts one from x and returns x.
func (x *Int) Dec() *Int {
	return x.Set(addSigned(x, []Word{1}, true))
}
