package numtheory

import (
	"github.com/vaultsandbox/cryptocore/bigint"
)

// LowZeroBits returns the number of trailing zero bits of |n|, or 0 for 0.
func LowZeroBits(n *bigint.Int) uint {
	return n.TrailingZeroBits()
}

// GCD returns the non-negative greatest common divisor of a and b using
// Stein's binary algorithm. GCD(a, 0) is |a| and GCD(0, 0) is 0.
func GCD(a, b *bigint.Int) *bigint.Int {
	switch {
	case a.IsZero():
		return b.Abs()
	case b.IsZero():
		return a.Abs()
	}
	one := bigint.NewInt(1)
	if a.CmpAbs(one) == 0 || b.CmpAbs(one) == 0 {
		return one
	}

	x, y := a.Abs(), b.Abs()
	shift := min(LowZeroBits(x), LowZeroBits(y))
	x.RshAssign(shift)
	y.RshAssign(shift)

	for !x.IsZero() {
		x.RshAssign(LowZeroBits(x))
		y.RshAssign(LowZeroBits(y))
		if x.Cmp(y) >= 0 {
			x.SubAssign(y).RshAssign(1)
		} else {
			y.SubAssign(x).RshAssign(1)
		}
	}
	return y.LshAssign(shift)
}

// LCM returns the non-negative least common multiple of a and b, or 0 when
// either is 0.
func LCM(a, b *bigint.Int) *bigint.Int {
	if a.IsZero() || b.IsZero() {
		return new(bigint.Int)
	}
	q, _ := a.Mul(b).Abs().Div(GCD(a, b))
	return q
}
