package modular

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Exponentiator computes base^exp mod n for a modulus fixed at construction.
// SetBase rebuilds the window table, so it must not run concurrently with
// Execute on the same value.
type Exponentiator interface {
	SetBase(base *bigint.Int) error
	SetExponent(exp *bigint.Int) error
	Execute() (*bigint.Int, error)
}

var (
	_ Exponentiator = (*FixedWindow)(nil)
	_ Exponentiator = (*Montgomery)(nil)
)

// FixedWindow exponentiates with a table of g^0..g^(2^w - 1) mod n and a
// Barrett reducer. It accepts any positive modulus.
type FixedWindow struct {
	cfg     config
	reducer *Reducer
	exp     *bigint.Int
	window  int
	g       []*bigint.Int
}

// NewFixedWindow returns a fixed-window exponentiator for mod > 0.
func NewFixedWindow(mod *bigint.Int, opts ...Option) (*FixedWindow, error) {
	cfg, err := newConfig("modular.NewFixedWindow", opts)
	if err != nil {
		return nil, err
	}
	reducer, err := NewReducer(mod)
	if err != nil {
		return nil, err
	}
	return &FixedWindow{cfg: cfg, reducer: reducer}, nil
}

// SetExponent sets the exponent. It must be non-negative.
func (f *FixedWindow) SetExponent(exp *bigint.Int) error {
	if exp.IsNegative() {
		return coreerr.Argument("modular.FixedWindow.SetExponent", "negative exponent")
	}
	f.exp = exp.Clone()
	return nil
}

// SetBase reduces base into [0, n) and rebuilds the window table. The
// window width is chosen from the exponent set so far, so setting the
// exponent first gives a better table.
func (f *FixedWindow) SetBase(base *bigint.Int) error {
	expBits := 0
	if f.exp != nil {
		expBits = f.exp.BitLen()
	}
	f.window = f.cfg.window(expBits, base.BitLen())

	f.g = make([]*bigint.Int, 1<<f.window)
	f.g[0] = bigint.NewInt(1)
	f.g[1] = f.reducer.Reduce(base)
	for i := 2; i < len(f.g); i++ {
		f.g[i] = f.reducer.Multiply(f.g[i-1], f.g[1])
	}
	return nil
}

// Execute returns base^exp mod n.
func (f *FixedWindow) Execute() (*bigint.Int, error) {
	if f.g == nil || f.exp == nil {
		return nil, coreerr.State("modular.FixedWindow.Execute", "base and exponent must both be set")
	}
	if f.reducer.modulus.Equal(bigint.NewInt(1)) {
		return new(bigint.Int), nil
	}

	w := uint(f.window)
	nibbles := (f.exp.BitLen() + f.window - 1) / f.window

	x := bigint.NewInt(1)
	for i := nibbles; i > 0; i-- {
		for j := 0; j < f.window; j++ {
			x = f.reducer.Square(x)
		}
		nibble, err := f.exp.Substring(w*uint(i-1), w)
		if err != nil {
			return nil, err
		}
		x = f.reducer.Multiply(x, f.g[nibble])
	}
	return x, nil
}
