package bigint

import "github.com/vaultsandbox/cryptocore/internal/coreerr"

// Bit returns bit n of |x|, counting from the least significant.
func (x *Int) Bit(n uint) uint {
	return uint(x.WordAt(int(n/WordBits))>>(n%WordBits)) & 1
}

// SetBit sets bit n of |x| and returns x.
func (x *Int) SetBit(n uint) *Int {
	w := int(n / WordBits)
	x.growTo(w + 1)
	x.limbs[w] |= 1 << (n % WordBits)
	return x
}

// ClearBit clears bit n of |x| and returns x.
func (x *Int) ClearBit(n uint) *Int {
	w := int(n / WordBits)
	if w < len(x.limbs) {
		x.limbs[w] &^= 1 << (n % WordBits)
	}
	return x.norm()
}

// MaskBits keeps only the low n bits of |x| and returns x. The sign is kept
// unless the result is zero.
func (x *Int) MaskBits(n uint) *Int {
	if n == 0 {
		x.Clear()
		return x
	}
	top := int(n / WordBits)
	if top >= len(x.limbs) {
		return x
	}
	mask := Word(1)<<(n%WordBits) - 1
	clear(x.limbs[top+1:])
	x.limbs[top] &= mask
	return x.norm()
}

// Substring returns length bits of |x| starting at bit offset. length may be
// at most 32.
func (x *Int) Substring(offset, length uint) (uint32, error) {
	if length > 32 {
		return 0, coreerr.Argument("bigint.Substring", "length %d exceeds 32 bits", length)
	}

	var piece uint64
	for i := 0; i < 8; i++ {
		piece = piece<<8 | uint64(x.ByteAt(int(offset/8)+7-i))
	}
	mask := uint64(1)<<length - 1
	return uint32(piece >> (offset % 8) & mask), nil
}

// TrailingZeroBits returns the number of consecutive zero bits at the low
// end of |x|, or 0 when x is zero.
func (x *Int) TrailingZeroBits() uint {
	var n uint
	for i := 0; i < x.SigWords(); i++ {
		w := x.limbs[i]
		if w != 0 {
			for w&1 == 0 {
				w >>= 1
				n++
			}
			return n
		}
		n += WordBits
	}
	return 0
}
