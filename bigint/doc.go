// Package bigint implements signed arbitrary-precision integers on top of
// the word kernel in internal/mp.
//
// # Values
//
// An [Int] is a sign and a little-endian slice of 64-bit limbs. The zero
// value is ready to use and equals 0. Allocations are rounded up to eight
// limbs so that chains of in-place updates rarely reallocate.
//
// Plain methods ([Int.Add], [Int.Mul], [Int.Lsh], ...) return a new Int and
// leave both operands unchanged. Methods with an Assign suffix, together
// with [Int.Inc], [Int.Dec], [Int.SetBit], [Int.ClearBit] and
// [Int.MaskBits], update the receiver and return it for chaining.
//
// An Int is not safe for concurrent mutation.
//
// # Division
//
// [Int.DivMod] returns q and r with x = q*y + r and 0 <= r < |y| for any
// signs of x and y, so
//
//	bigint.NewInt(-1).Mod(bigint.NewInt(5)) // 4
//
// Division by zero returns [ErrDivideByZero]. [Int.Rsh] is not division:
// it shifts the magnitude and keeps the sign.
//
// # Encoding
//
// [Int.Encode] and [Decode] convert magnitudes to and from [Binary],
// [Hexadecimal] and [Decimal]. The sign is never encoded; callers that need
// it carry it separately. [Parse] and [Int.String] handle signed text.
//
// # Timing
//
// Int is a general-purpose type and makes no constant-time promise. Signed
// addition compares magnitudes, and division and decimal conversion take
// data-dependent time. Secret exponents belong in the modular package, whose
// Montgomery path is built for that.
package bigint
