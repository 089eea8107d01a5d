package numtheory

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// InverseMod returns x in [0, mod) with n*x = 1 (mod mod), or 0 when no
// inverse exists. mod == 0 returns ErrDivideByZero and negative arguments
// return ErrInvalidArgument.
func InverseMod(n, mod *bigint.Int) (*bigint.Int, error) {
	if mod.IsZero() {
		return nil, coreerr.ErrDivideByZero
	}
	if mod.IsNegative() || n.IsNegative() {
		return nil, coreerr.Argument("numtheory.InverseMod", "arguments must be non-negative")
	}
	zero := new(bigint.Int)
	if n.IsZero() || (n.IsEven() && mod.IsEven()) || mod.Equal(bigint.NewInt(1)) {
		return zero, nil
	}

	if n.CmpAbs(mod) >= 0 {
		n, _ = n.Mod(mod)
		if n.IsZero() {
			return zero, nil
		}
	}

	var d *bigint.Int
	if mod.IsOdd() {
		d = inverseOddModulus(n, mod)
	} else {
		d = inverseGeneral(n, mod)
	}
	if d == nil {
		return zero, nil
	}

	for d.IsNegative() {
		d.AddAssign(mod)
	}
	for d.Cmp(mod) >= 0 {
		d.SubAssign(mod)
	}
	return d, nil
}

// inverseOddModulus runs the binary extended GCD keeping only the
// coefficients of n. With u = B*n and v = D*n (mod m), an odd m makes every
// halving exact after adding m to an odd coefficient.
func inverseOddModulus(n, mod *bigint.Int) *bigint.Int {
	u, v := mod.Clone(), n.Clone()
	b, d := new(bigint.Int), bigint.NewInt(1)

	for !u.IsZero() {
		for u.IsEven() {
			u.RshAssign(1)
			if b.IsOdd() {
				b.AddAssign(mod)
			}
			halve(b)
		}
		for v.IsEven() {
			v.RshAssign(1)
			if d.IsOdd() {
				d.AddAssign(mod)
			}
			halve(d)
		}
		if u.Cmp(v) >= 0 {
			u.SubAssign(v)
			b.SubAssign(d)
		} else {
			v.SubAssign(u)
			d.SubAssign(b)
		}
	}

	if !v.Equal(bigint.NewInt(1)) {
		return nil
	}
	return d
}

// inverseGeneral tracks all four coefficients of u = A*m + B*n and
// v = C*m + D*n.
func inverseGeneral(n, mod *bigint.Int) *bigint.Int {
	u, v := mod.Clone(), n.Clone()
	a, b := bigint.NewInt(1), new(bigint.Int)
	c, d := new(bigint.Int), bigint.NewInt(1)

	for !u.IsZero() {
		zeros := LowZeroBits(u)
		u.RshAssign(zeros)
		for i := uint(0); i < zeros; i++ {
			if a.IsOdd() || b.IsOdd() {
				a.AddAssign(n)
				b.SubAssign(mod)
			}
			halve(a)
			halve(b)
		}

		zeros = LowZeroBits(v)
		v.RshAssign(zeros)
		for i := uint(0); i < zeros; i++ {
			if c.IsOdd() || d.IsOdd() {
				c.AddAssign(n)
				d.SubAssign(mod)
			}
			halve(c)
			halve(d)
		}

		if u.Cmp(v) >= 0 {
			u.SubAssign(v)
			a.SubAssign(c)
			b.SubAssign(d)
		} else {
			v.SubAssign(u)
			c.SubAssign(a)
			d.SubAssign(b)
		}
	}

	if !v.Equal(bigint.NewInt(1)) {
		return nil
	}
	return d
}

// halve divides an even value by two. Rsh truncates toward zero, which is
// exact here.
func halve(x *bigint.Int) {
	x.RshAssign(1)
}
