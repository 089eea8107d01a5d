package modular

import (
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// PowerMod picks an exponentiator by modulus parity: Montgomery for odd
// moduli and FixedWindow otherwise. The choice is deterministic and never
// changes after a failure.
type PowerMod struct {
	opts []Option
	mod  *bigint.Int
	core Exponentiator
}

// NewPowerMod returns a PowerMod for mod > 0.
func NewPowerMod(mod *bigint.Int, opts ...Option) (*PowerMod, error) {
	pm := &PowerMod{opts: opts}
	if err := pm.SetModulus(mod); err != nil {
		return nil, err
	}
	return pm, nil
}

// SetModulus replaces the modulus and discards any base and exponent.
func (pm *PowerMod) SetModulus(mod *bigint.Int) error {
	if mod.Sign() <= 0 {
		return coreerr.Argument("modular.PowerMod.SetModulus", "modulus must be positive, got %s", mod)
	}
	cfg, err := newConfig("modular.PowerMod.SetModulus", pm.opts)
	if err != nil {
		return err
	}

	var core Exponentiator
	if mod.IsOdd() && !cfg.disableMontgomery {
		core, err = NewMontgomery(mod, pm.opts...)
	} else {
		core, err = NewFixedWindow(mod, pm.opts...)
	}
	if err != nil {
		return err
	}
	pm.mod = mod.Clone()
	pm.core = core
	return nil
}

// Modulus returns a copy of the modulus.
func (pm *PowerMod) Modulus() *bigint.Int {
	return pm.mod.Clone()
}

// SetBase sets the base; any integer is accepted and reduced mod n.
func (pm *PowerMod) SetBase(base *bigint.Int) error {
	return pm.core.SetBase(base)
}

// SetExponent sets the exponent, which must be non-negative.
func (pm *PowerMod) SetExponent(exp *bigint.Int) error {
	return pm.core.SetExponent(exp)
}

// Execute returns base^exp mod n.
func (pm *PowerMod) Execute() (*bigint.Int, error) {
	return pm.core.Execute()
}

// FixedExponentPowerMod raises many bases to one exponent.
type FixedExponentPowerMod struct {
	pm *PowerMod
}

// NewFixedExponentPowerMod returns a FixedExponentPowerMod for exp mod n.
func NewFixedExponentPowerMod(mod, exp *bigint.Int, opts ...Option) (*FixedExponentPowerMod, error) {
	pm, err := NewPowerMod(mod, append(opts[:len(opts):len(opts)], WithFixedExponent())...)
	if err != nil {
		return nil, err
	}
	if err := pm.SetExponent(exp); err != nil {
		return nil, err
	}
	return &FixedExponentPowerMod{pm: pm}, nil
}

// Exp returns base^exp mod n.
func (f *FixedExponentPowerMod) Exp(base *bigint.Int) (*bigint.Int, error) {
	if err := f.pm.SetBase(base); err != nil {
		return nil, err
	}
	return f.pm.Execute()
}

// FixedBasePowerMod raises one base to many exponents. Its table is built
// once, with the wider window the fixed-base hint selects.
type FixedBasePowerMod struct {
	pm *PowerMod
}

// NewFixedBasePowerMod returns a FixedBasePowerMod for base mod n.
func NewFixedBasePowerMod(mod, base *bigint.Int, opts ...Option) (*FixedBasePowerMod, error) {
	pm, err := NewPowerMod(mod, append(opts[:len(opts):len(opts)], WithFixedBase())...)
	if err != nil {
		return nil, err
	}
	if err := pm.SetBase(base); err != nil {
		return nil, err
	}
	return &FixedBasePowerMod{pm: pm}, nil
}

// Exp returns base^exp mod n.
func (f *FixedBasePowerMod) Exp(exp *bigint.Int) (*bigint.Int, error) {
	if err := f.pm.SetExponent(exp); err != nil {
		return nil, err
	}
	return f.pm.Execute()
}

// Exp returns base^exp mod m using a one-off PowerMod.
func Exp(base, exp, m *bigint.Int, opts ...Option) (*bigint.Int, error) {
	pm, err := NewPowerMod(m, opts...)
	if err != nil {
		return nil, err
	}
	if err := pm.SetExponent(exp); err != nil {
		return nil, err
	}
	if err := pm.SetBase(base); err != nil {
		return nil, err
	}
	return pm.Execute()
}
