package modular

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/internal/mp"
)

// Montgomery exponentiates entirely in Montgomery form for an odd modulus.
// The window table is read with a full constant-time scan and every
// multiplication reduces with a masked final subtraction, so the sequence
// of memory accesses and branches does not depend on the exponent.
type Montgomery struct {
	cfg     config
	reducer *Reducer

	p     []mp.Word
	n     int
	pDash mp.Word
	r1    []mp.Word // R mod p
	r2    *bigint.Int

	exp    *bigint.Int
	window int
	g      [][]mp.Word

	z  []mp.Word
	ws []mp.Word
}

// NewMontgomery returns a Montgomery exponentiator. mod must be odd and
// positive.
func NewMontgomery(mod *bigint.Int, opts ...Option) (*Montgomery, error) {
	cfg, err := newConfig("modular.NewMontgomery", opts)
	if err != nil {
		return nil, err
	}
	if mod.Sign() <= 0 || mod.IsEven() {
		return nil, coreerr.Argument("modular.NewMontgomery", "modulus must be odd and positive, got %s", mod)
	}
	reducer, err := NewReducer(mod)
	if err != nil {
		return nil, err
	}

	n := mod.SigWords()
	m := &Montgomery{
		cfg:     cfg,
		reducer: reducer,
		p:       words(mod, n),
		n:       n,
		z:       make([]mp.Word, 2*n+1),
		ws:      make([]mp.Word, n+1),
	}
	m.pDash = mp.NegInverse(m.p[0])

	r1 := reducer.Reduce(bigint.PowerOfTwo(uint(bigint.WordBits * n)))
	m.r1 = words(r1, n)
	m.r2 = reducer.Square(r1)
	return m, nil
}

// words copies the low n limbs of |x|.
func words(x *bigint.Int, n int) []mp.Word {
	out := make([]mp.Word, n)
	copy(out, x.Bits())
	return out
}

func (m *Montgomery) mul(dst, x, y []mp.Word) {
	mp.MontyMul(m.z, x, y, m.p, m.pDash, m.ws)
	copy(dst, m.z[:m.n])
}

func (m *Montgomery) sqr(dst, x []mp.Word) {
	mp.MontySqr(m.z, x, m.p, m.pDash, m.ws)
	copy(dst, m.z[:m.n])
}

// SetExponent sets the exponent. It must be non-negative.
func (m *Montgomery) SetExponent(exp *bigint.Int) error {
	if exp.IsNegative() {
		return coreerr.Argument("modular.Montgomery.SetExponent", "negative exponent")
	}
	m.exp = exp.Clone()
	return nil
}

// SetBase reduces base, converts it to Montgomery form and rebuilds the
// window table g[i] = base^i * R mod p.
func (m *Montgomery) SetBase(base *bigint.Int) error {
	expBits := 0
	if m.exp != nil {
		expBits = m.exp.BitLen()
	}
	m.window = m.cfg.window(expBits, base.BitLen())

	b := words(m.reducer.Reduce(base), m.n)
	r2 := words(m.r2, m.n)

	m.g = make([][]mp.Word, 1<<m.window)
	for i := range m.g {
		m.g[i] = make([]mp.Word, m.n)
	}
	copy(m.g[0], m.r1)
	m.mul(m.g[1], b, r2)
	for i := 2; i < len(m.g); i++ {
		m.mul(m.g[i], m.g[i-1], m.g[1])
	}
	return nil
}

// Execute returns base^exp mod p.
func (m *Montgomery) Execute() (*bigint.Int, error) {
	if m.g == nil || m.exp == nil {
		return nil, coreerr.State("modular.Montgomery.Execute", "base and exponent must both be set")
	}

	w := uint(m.window)
	nibbles := (m.exp.BitLen() + m.window - 1) / m.window

	x := make([]mp.Word, m.n)
	e := make([]mp.Word, m.n)
	copy(x, m.g[0])
	for i := nibbles; i > 0; i-- {
		for j := 0; j < m.window; j++ {
			m.sqr(x, x)
		}
		nibble, err := m.exp.Substring(w*uint(i-1), w)
		if err != nil {
			return nil, err
		}
		mp.CtLookup(e, m.g, int(nibble))
		m.mul(x, x, e)
	}

	// One REDC of x leaves the Montgomery domain.
	clear(m.z)
	copy(m.z, x)
	mp.MontyRedc(m.z, m.p, m.pDash, m.ws)
	return bigint.FromWords(m.z[:m.n]), nil
}
