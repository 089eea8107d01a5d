// Package mp implements the multi-precision kernel underneath bigint.
//
// Numbers are little-endian slices of 64-bit [Word] values. Every routine
// takes explicit slices for its inputs and outputs; callers size the output
// buffers (normally input length plus one word for a carry) and the kernel
// panics when a buffer contract is broken, since that is always a bug inside
// this module rather than bad user input.
//
// # Layers
//
//   - Word primitives: [WordAdd], [WordSub], [WordMadd2], [WordMadd3] and the
//     eight-word unrolled variants. The unrolled forms produce exactly what
//     eight chained scalar calls would.
//   - Vector operations: add, subtract, shift, compare, linear multiply and
//     the 2-by-1 word division [DivOp] and [ModOp].
//   - Multiplication: Comba routines for 4, 6, 8 and 16 words, schoolbook
//     fallbacks, and a Karatsuba dispatcher ([Mul], [Sqr]) that picks between
//     them by operand size.
//   - Montgomery reduction: [MontyRedc], [MontyMul], [MontySqr].
//
// # Timing
//
// Addition, subtraction, Comba and schoolbook multiplication, Montgomery
// reduction and the helpers in ct.go do not branch on operand values. The
// Karatsuba split compares its half operands, so its branch pattern depends on
// the data, so [MontyMul] and [MontySqr] never take it. Comparison,
// shifting by a variable amount and division are variable time.
package mp
