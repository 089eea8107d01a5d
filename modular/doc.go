// Package modular implements modular reduction and exponentiation over
// bigint.Int.
//
// # Reduction
//
// [Reducer] performs Barrett reduction against a fixed modulus. Inputs
// below the square of the modulus cost two multiplications; larger inputs
// fall back to long division. Results are always in [0, n).
//
// # Exponentiation
//
// Two [Exponentiator] implementations share a set-then-execute contract:
//
//	pm, err := modular.NewPowerMod(n)
//	if err != nil {
//	    return err
//	}
//	_ = pm.SetExponent(e)
//	_ = pm.SetBase(g)
//	y, err := pm.Execute()
//
// [FixedWindow] works for any modulus using a table of small powers and the
// Barrett reducer. [Montgomery] requires an odd modulus and stays in
// Montgomery form throughout, with constant-time table reads. [PowerMod]
// chooses Montgomery for odd moduli and FixedWindow otherwise.
//
// The window width comes from [WindowBits], which grows with the exponent
// length and widens further for the [BaseIsFixed] and [ExpIsLarge] hints.
// Set the exponent before the base so the table is sized for it.
//
// Exponentiators are not safe for concurrent use.
package modular
