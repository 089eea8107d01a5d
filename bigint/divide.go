package bigint

import (
	"math/bits"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/internal/mp"
)

// DivMod returns the quotient and remainder of x / y such that x = q*y + r
// and 0 <= r < |y|. Division by zero returns ErrDivideByZero.
func (x *Int) DivMod(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, coreerr.ErrDivideByZero
	}

	if y.SigWords() == 1 {
		var rw Word
		q, rw = divideWord(x.limbs, y.limbs[0])
		r = NewUint(rw)
	} else {
		q, r = divideMag(x.Abs(), y.Abs())
	}
	q.neg = x.neg
	q.norm()

	// The magnitude division leaves r with x's sign implied; fold it into a
	// non-negative remainder.
	if x.IsNegative() && !r.IsZero() {
		q.Dec()
		r = y.Abs().Sub(r)
	}
	if y.IsNegative() {
		q.neg = !q.neg
		q.norm()
	}
	return q, r, nil
}

// Div returns the quotient of DivMod.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y in [0, |y|).
func (x *Int) Mod(y *Int) (*Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivAssign sets x to the quotient of x / y and returns x.
func (x *Int) DivAssign(y *Int) (*Int, error) {
	q, err := x.Div(y)
	if err != nil {
		return x, err
	}
	return x.Set(q), nil
}

// ModAssign sets x = x mod y and returns x.
func (x *Int) ModAssign(y *Int) (*Int, error) {
	r, err := x.Mod(y)
	if err != nil {
		return x, err
	}
	return x.Set(r), nil
}

// ModWord returns x mod y in [0, y).
func (x *Int) ModWord(y Word) (Word, error) {
	if y == 0 {
		return 0, coreerr.ErrDivideByZero
	}
	var rem Word
	if y&(y-1) == 0 {
		rem = x.WordAt(0) & (y - 1)
	} else {
		for i := x.SigWords(); i > 0; i-- {
			rem = mp.ModOp(rem, x.limbs[i-1], y)
		}
	}
	if x.IsNegative() && rem != 0 {
		return y - rem, nil
	}
	return rem, nil
}

// divideWord divides the magnitude x by the single word d.
func divideWord(x []Word, d Word) (*Int, Word) {
	xs := mp.SigWords(x)
	q := &Int{limbs: alloc(xs)}
	var rem Word
	for i := xs; i > 0; i-- {
		qi := mp.DivOp(rem, x[i-1], d)
		lo, _ := mp.WordMadd2(qi, d, 0)
		rem = x[i-1] - lo
		q.limbs[i-1] = qi
	}
	return q, rem
}

// divideMag is schoolbook long division of non-negative x by y, where y has
// at least two significant words.
func divideMag(x, y *Int) (q, r *Int) {
	if x.CmpAbs(y) < 0 {
		return &Int{}, x.Clone()
	}

	// Normalise so the top bit of y's leading word is set; each quotient
	// digit estimate is then off by at most two.
	shift := uint(bits.LeadingZeros64(y.limbs[y.SigWords()-1]))
	y = y.Lsh(shift)
	r = x.Lsh(shift)

	n := r.SigWords() - 1
	t := y.SigWords() - 1

	q = &Int{limbs: alloc(n - t + 1)}

	temp := y.Lsh(uint(WordBits * (n - t)))
	for r.Cmp(temp) >= 0 {
		r.SubAssign(temp)
		q.limbs[n-t]++
	}

	yt, yt1 := y.limbs[t], y.WordAt(t-1)
	for j := n; j != t; j-- {
		xj0, xj1, xj2 := r.WordAt(j), r.WordAt(j-1), r.WordAt(j-2)

		var qd Word
		if xj0 == yt {
			qd = mp.WordMax
		} else {
			qd = mp.DivOp(xj0, xj1, yt)
		}
		for divisionCheck(qd, yt, yt1, xj0, xj1, xj2) {
			qd--
		}

		shiftWords := uint(WordBits * (j - t - 1))
		r.SubAssign(y.MulWord(qd).Lsh(shiftWords))
		if r.IsNegative() {
			r.AddAssign(y.Lsh(shiftWords))
			qd--
		}
		q.limbs[j-t-1] = qd
	}

	return q.norm(), r.Rsh(shift)
}

// divisionCheck reports whether q*(y2:y1) exceeds (x3:x2:x1), meaning the
// quotient digit estimate q is too large.
func divisionCheck(q, y2, y1, x3, x2, x1 Word) bool {
	p0, c := mp.WordMadd2(q, y1, 0)
	p1, p2 := mp.WordMadd2(q, y2, c)
	return mp.Cmp([]Word{x1, x2, x3}, []Word{p0, p1, p2}) < 0
}
