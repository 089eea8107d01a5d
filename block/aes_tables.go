package block

// AES lookup tables. They are derived once at start-up from the field
// arithmetic rather than written out as constants.
var (
	aesSbox    [256]byte
	aesInvSbox [256]byte
	te0        [256]uint32
	te1        [256]uint32
	te2        [256]uint32
	te3        [256]uint32
	td0        [256]uint32
	td1        [256]uint32
	td2        [256]uint32
	td3        [256]uint32
	rcon       [10]byte
)

func init() {
	// Walk the multiplicative group with generator 3: p runs over 3^i and q
	// over its inverse 3^-i.
	var p, q byte = 1, 1
	for {
		p ^= xtime(p)

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		aesSbox[p] = 0x63 ^ q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4)
		if p == 1 {
			break
		}
	}
	aesSbox[0] = 0x63

	for i := range aesSbox {
		aesInvSbox[aesSbox[i]] = byte(i)
	}

	for i := range 256 {
		s := aesSbox[i]
		w := uint32(gmul(s, 2))<<24 | uint32(s)<<16 | uint32(s)<<8 | uint32(gmul(s, 3))
		te0[i] = w
		te1[i] = w>>8 | w<<24
		te2[i] = w>>16 | w<<16
		te3[i] = w>>24 | w<<8

		s = aesInvSbox[i]
		w = uint32(gmul(s, 0x0e))<<24 | uint32(gmul(s, 0x09))<<16 | uint32(gmul(s, 0x0d))<<8 | uint32(gmul(s, 0x0b))
		td0[i] = w
		td1[i] = w>>8 | w<<24
		td2[i] = w>>16 | w<<16
		td3[i] = w>>24 | w<<8
	}

	r := byte(1)
	for i := range rcon {
		rcon[i] = r
		r = xtime(r)
	}
}

// xtime multiplies by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func xtime(b byte) byte {
	hi := b >> 7
	return b<<1 ^ hi*0x1b
}

func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

func rotl8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}
