package numtheory

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/modular"
)

// Jacobi returns the Jacobi symbol (a/n) as -1, 0 or 1. a must be
// non-negative and n odd and greater than one.
func Jacobi(a, n *bigint.Int) (int, error) {
	if a.IsNegative() {
		return 0, coreerr.Argument("numtheory.Jacobi", "first argument must be non-negative")
	}
	if n.IsEven() || n.Cmp(bigint.NewInt(2)) < 0 {
		return 0, coreerr.Argument("numtheory.Jacobi", "second argument must be odd and > 1")
	}

	x, y := a.Clone(), n.Clone()
	j := 1
	one := bigint.NewInt(1)
	for y.Cmp(one) > 0 {
		x, _ = x.Mod(y)
		if x.Cmp(y.Rsh(1)) > 0 {
			x = y.Sub(x)
			if mod4(y) == 3 {
				j = -j
			}
		}
		if x.IsZero() {
			return 0, nil
		}

		shifts := LowZeroBits(x)
		x.RshAssign(shifts)
		if shifts%2 == 1 {
			if r := y.WordAt(0) & 7; r == 3 || r == 5 {
				j = -j
			}
		}
		if mod4(x) == 3 && mod4(y) == 3 {
			j = -j
		}
		x, y = y, x
	}
	return j, nil
}

func mod4(x *bigint.Int) bigint.Word {
	return x.WordAt(0) & 3
}

// IsPerfectSquare returns the integer square root of c when c is a perfect
// square and 0 otherwise. c must be at least 1.
func IsPerfectSquare(c *bigint.Int) (*bigint.Int, error) {
	one := bigint.NewInt(1)
	if c.Cmp(one) < 0 {
		return nil, coreerr.Argument("numtheory.IsPerfectSquare", "argument must be >= 1")
	}
	if c.Equal(one) {
		return one, nil
	}

	m := uint(c.BitLen()+1) / 2
	bound := c.Add(bigint.PowerOfTwo(m))
	x := bigint.PowerOfTwo(m).Dec()
	x2 := x.Square()
	for {
		x, _ = x2.Add(c).Div(x.Lsh(1))
		x2 = x.Square()
		if x2.Cmp(bound) < 0 {
			break
		}
	}
	if x2.Equal(c) {
		return x, nil
	}
	return new(bigint.Int), nil
}

// SquareRootMod returns r with r*r = a (mod p) for a prime p using
// Tonelli-Shanks, or -1 when a is not a quadratic residue. The result is
// only meaningful when p is prime.
func SquareRootMod(a, p *bigint.Int) (*bigint.Int, error) {
	const op = "numtheory.SquareRootMod"
	if a.IsNegative() {
		return nil, coreerr.Argument(op, "value must be non-negative")
	}
	if a.IsZero() {
		return new(bigint.Int), nil
	}
	one := bigint.NewInt(1)
	if a.Equal(one) {
		return one, nil
	}
	if p.Cmp(bigint.NewInt(2)) < 0 {
		return nil, coreerr.Argument(op, "prime must be > 1")
	}
	if p.Equal(bigint.NewInt(2)) {
		return a.Mod(p)
	}
	if p.IsEven() {
		return nil, coreerr.Argument(op, "prime must be odd")
	}

	if j, err := Jacobi(a, p); err != nil {
		return nil, err
	} else if j != 1 {
		return bigint.NewInt(-1), nil
	}

	if mod4(p) == 3 {
		return modular.Exp(a, p.Add(one).Rsh(2), p)
	}

	s := LowZeroBits(p.Sub(one))
	q := p.Rsh(s).Dec().Rsh(1)

	red, err := modular.NewReducer(p)
	if err != nil {
		return nil, err
	}
	r, err := modular.Exp(a, q, p)
	if err != nil {
		return nil, err
	}
	n := red.Multiply(a, red.Square(r))
	r = red.Multiply(r, a)
	if n.Equal(one) {
		return r, nil
	}

	// Smallest quadratic non-residue.
	z := bigint.NewInt(2)
	for {
		j, err := Jacobi(z, p)
		if err != nil {
			return nil, err
		}
		if j != 1 {
			break
		}
		z.Inc()
	}

	c, err := modular.Exp(z, q.Lsh(1).Inc(), p)
	if err != nil {
		return nil, err
	}
	for n.Cmp(one) > 0 {
		t := n
		i := uint(0)
		for !t.Equal(one) {
			t = red.Square(t)
			i++
			if i >= s {
				return bigint.NewInt(-1), nil
			}
		}
		c, err = modular.Exp(c, bigint.PowerOfTwo(s-i-1), p)
		if err != nil {
			return nil, err
		}
		r = red.Multiply(r, c)
		c = red.Square(c)
		n = red.Multiply(n, c)
		s = i
	}
	return r, nil
}
