package modular

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Reducer reduces integers modulo a fixed positive modulus by Barrett's
// method. It precomputes mu = floor(2^(2*64*k) / n) for a k-word modulus n
// so inputs below n^2 need two multiplications instead of a division.
//
// A Reducer is immutable after construction and safe for concurrent use.
type Reducer struct {
	modulus  *bigint.Int
	modulus2 *bigint.Int
	mu       *bigint.Int
	words    int
}

// NewReducer returns a Reducer for mod. mod must be positive.
func NewReducer(mod *bigint.Int) (*Reducer, error) {
	if mod.Sign() <= 0 {
		return nil, coreerr.Argument("modular.NewReducer", "modulus must be positive, got %s", mod)
	}

	words := mod.SigWords()
	mu, err := bigint.PowerOfTwo(uint(2 * bigint.WordBits * words)).Div(mod)
	if err != nil {
		return nil, err
	}
	return &Reducer{
		modulus:  mod.Clone(),
		modulus2: mod.Square(),
		mu:       mu,
		words:    words,
	}, nil
}

// Modulus returns a copy of the modulus.
func (r *Reducer) Modulus() *bigint.Int {
	return r.modulus.Clone()
}

// Reduce returns x mod n in [0, n).
func (r *Reducer) Reduce(x *bigint.Int) *bigint.Int {
	if x.SigWords() < r.words || x.CmpAbs(r.modulus) < 0 {
		if x.IsNegative() {
			return x.Add(r.modulus)
		}
		return x.Clone()
	}

	if x.CmpAbs(r.modulus2) >= 0 {
		// Outside the Barrett range; fall back to division.
		m, _ := x.Mod(r.modulus)
		return m
	}

	width := uint(bigint.WordBits * (r.words + 1))

	t1 := x.Abs().
		Rsh(uint(bigint.WordBits * (r.words - 1))).
		Mul(r.mu).
		Rsh(width).
		Mul(r.modulus).
		MaskBits(width)

	t2 := x.Abs().MaskBits(width)
	t2.SubAssign(t1)
	if t2.IsNegative() {
		t2.AddAssign(bigint.PowerOfTwo(width))
	}
	for t2.Cmp(r.modulus) >= 0 {
		t2.SubAssign(r.modulus)
	}

	if x.IsNegative() && !t2.IsZero() {
		return r.modulus.Sub(t2)
	}
	return t2
}

// Multiply returns x*y mod n.
func (r *Reducer) Multiply(x, y *bigint.Int) *bigint.Int {
	return r.Reduce(x.Mul(y))
}

// Square returns x*x mod n.
func (r *Reducer) Square(x *bigint.Int) *bigint.Int {
	return r.Reduce(x.Square())
}

// Cube returns x*x*x mod n.
func (r *Reducer) Cube(x *bigint.Int) *bigint.Int {
	return r.Multiply(x, r.Square(x))
}
