package mp

import "math/bits"

// NegInverse returns -p^-1 mod 2^64 for odd p, by Newton iteration.
func NegInverse(p Word) Word {
	if p&1 == 0 {
		panic("mp: NegInverse of even word")
	}
	k0 := 2 - p
	t := p - 1
	for i := 1; i < WordBits; i <<= 1 {
		t *= t
		k0 *= t + 1
	}
	return -k0
}

// MontyRedc performs Montgomery reduction of z by the n-word odd modulus p,
// leaving z[0:n] = z * 2^(-64n) mod p fully reduced and z[n:] cleared.
// z must hold at least 2n+1 words and its value must be below p * 2^(64n);
// pDash is NegInverse(p[0]); ws must hold at least n+1 words.
//
// Neither the reduction loop nor the final subtraction branches on data.
func MontyRedc(z, p []Word, pDash Word, ws []Word) {
	n := len(p)
	if len(z) < 2*n+1 || len(ws) < n+1 {
		panic("mp: MontyRedc buffer too short")
	}

	n8 := n &^ 7
	var top Word
	for i := 0; i < n; i++ {
		zi := z[i:]
		y := zi[0] * pDash

		var carry Word
		for j := 0; j < n8; j += 8 {
			carry = Word8Madd3(zi[j:j+8], p[j:j+8], y, carry)
		}
		for j := n8; j < n; j++ {
			zi[j], carry = WordMadd3(p[j], y, zi[j], carry)
		}
		zi[n], top = bits.Add64(zi[n], carry, top)
	}
	z[2*n] += top

	// z[n:2n+1] < 2p; subtract p once and keep whichever is in range.
	hi := z[n : 2*n+1]
	borrow := Sub3(ws[:n], hi[:n], p)
	ws[n], borrow = bits.Sub64(hi[n], 0, borrow)
	CtAssign(Not(Choice(borrow)), hi, ws[:n+1])

	copy(z[:n], hi[:n])
	clear(z[n:])
}

// MontyMul sets z[0:n] = x * y * 2^(-64n) mod p where n = len(p). x and y
// hold n-word values below p; z must hold at least 2n+1 words and ws at
// least n+1 words. The product never uses Karatsuba, whose split compares
// operand halves.
func MontyMul(z, x, y, p []Word, pDash Word, ws []Word) {
	n := len(p)
	prod := z[:2*n+1]
	Mul(prod, nil, x[:n], n, y[:n], n)
	MontyRedc(prod, p, pDash, ws)
}

// MontySqr sets z[0:n] = x * x * 2^(-64n) mod p, with MontyMul's buffer rules.
func MontySqr(z, x, p []Word, pDash Word, ws []Word) {
	n := len(p)
	prod := z[:2*n+1]
	Sqr(prod, nil, x[:n], n)
	MontyRedc(prod, p, pDash, ws)
}
