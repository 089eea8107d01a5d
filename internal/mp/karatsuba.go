package mp

//go:generate go run gen_comba.go

const (
	// KaratsubaMulThreshold is the operand size in words below which
	// schoolbook multiplication beats Karatsuba.
	KaratsubaMulThreshold = 32
	// KaratsubaSqrThreshold is the same cut-over for squaring.
	KaratsubaSqrThreshold = 32
)

// SimpleMul sets z[0:len(x)+len(y)] = x * y in O(n*m) word operations.
// z must not overlap x or y.
func SimpleMul(z, x, y []Word) {
	z = z[:len(x)+len(y)]
	clear(z)
	x8 := len(x) &^ 7
	for i, yi := range y {
		var carry Word
		for j := 0; j < x8; j += 8 {
			carry = Word8Madd3(z[i+j:i+j+8], x[j:j+8], yi, carry)
		}
		for j := x8; j < len(x); j++ {
			z[i+j], carry = WordMadd3(x[j], yi, z[i+j], carry)
		}
		z[len(x)+i] = carry
	}
}

// SimpleSqr sets z[0:2*len(x)] = x * x.
func SimpleSqr(z, x []Word) {
	SimpleMul(z, x, x)
}

// karatsubaMul sets z[0:2n] = x[0:n] * y[0:n] using ws[0:2n] as scratch.
func karatsubaMul(z, x, y []Word, n int, ws []Word) {
	if n < KaratsubaMulThreshold || n%2 != 0 {
		switch n {
		case 6:
			CombaMul6(z, x, y)
		case 8:
			CombaMul8(z, x, y)
		case 16:
			CombaMul16(z, x, y)
		default:
			SimpleMul(z, x[:n], y[:n])
		}
		return
	}

	n2 := n / 2
	x0, x1 := x[:n2], x[n2:n]
	y0, y1 := y[:n2], y[n2:n]
	z0, z1 := z[:n], z[n:2*n]

	cmp0 := Cmp(x0, x1)
	cmp1 := Cmp(y1, y0)

	clear(ws[:2*n])

	// |x0-x1| * |y1-y0| lands in ws[0:n]; z0 and z1 are free scratch until
	// the half products are written.
	if cmp0 != 0 && cmp1 != 0 {
		if cmp0 > 0 {
			Sub3(z0[:n2], x0, x1)
		} else {
			Sub3(z0[:n2], x1, x0)
		}
		if cmp1 > 0 {
			Sub3(z1[:n2], y1, y0)
		} else {
			Sub3(z1[:n2], y0, y1)
		}
		karatsubaMul(ws, z0[:n2], z1[:n2], n2, ws[n:])
	}

	karatsubaMul(z0, x0, y0, n2, ws[n:])
	karatsubaMul(z1, x1, y1, n2, ws[n:])

	karatsubaCombine(z, ws, n, cmp0 == cmp1 || cmp0 == 0 || cmp1 == 0)
}

// karatsubaSqr sets z[0:2n] = x[0:n]^2 using ws[0:2n] as scratch.
func karatsubaSqr(z, x []Word, n int, ws []Word) {
	if n < KaratsubaSqrThreshold || n%2 != 0 {
		switch n {
		case 6:
			CombaSqr6(z, x)
		case 8:
			CombaSqr8(z, x)
		case 16:
			CombaSqr16(z, x)
		default:
			SimpleSqr(z, x[:n])
		}
		return
	}

	n2 := n / 2
	x0, x1 := x[:n2], x[n2:n]
	z0, z1 := z[:n], z[n:2*n]

	cmp := Cmp(x0, x1)

	clear(ws[:2*n])

	if cmp != 0 {
		if cmp > 0 {
			Sub3(z0[:n2], x0, x1)
		} else {
			Sub3(z0[:n2], x1, x0)
		}
		karatsubaSqr(ws, z0[:n2], n2, ws[n:])
	}

	karatsubaSqr(z0, x0, n2, ws[n:])
	karatsubaSqr(z1, x1, n2, ws[n:])

	karatsubaCombine(z, ws, n, cmp == 0)
}

// karatsubaCombine adds z0+z1 into the middle of z and then adds or
// subtracts the cross term held in ws[0:n].
func karatsubaCombine(z, ws []Word, n int, addMiddle bool) {
	n2 := n / 2
	z0, z1 := z[:n], z[n:2*n]
	mid := ws[n : 2*n]

	n8 := n &^ 7
	var wsCarry Word
	for j := 0; j < n8; j += 8 {
		wsCarry = Word8Add3(mid[j:j+8], z0[j:j+8], z1[j:j+8], wsCarry)
	}
	for j := n8; j < n; j++ {
		mid[j], wsCarry = WordAdd(z0[j], z1[j], wsCarry)
	}

	var zCarry Word
	for j := 0; j < n8; j += 8 {
		zCarry = Word8Add2(z[n2+j:n2+j+8], mid[j:j+8], zCarry)
	}
	for j := n8; j < n; j++ {
		z[n2+j], zCarry = WordAdd(z[n2+j], mid[j], zCarry)
	}

	z[n+n2], zCarry = WordAdd(z[n+n2], wsCarry, zCarry)
	for j := n + n2 + 1; j < 2*n; j++ {
		z[j], zCarry = WordAdd(z[j], 0, zCarry)
	}

	if addMiddle {
		Add2(z[n2:2*n], ws[:n])
	} else {
		Sub2(z[n2:2*n], ws[:n])
	}
}

// karatsubaSize picks an even operand size n with xSW,ySW <= n <= xSize,ySize
// and 2n <= zSize, or returns 0 when no such size exists.
func karatsubaSize(zSize, xSize, xSW, ySize, ySW int) int {
	if xSW > xSize || xSW > ySize || ySW > xSize || ySW > ySize {
		return 0
	}
	if (xSize == xSW && xSize%2 != 0) || (ySize == ySW && ySize%2 != 0) {
		return 0
	}

	start := max(xSW, ySW)
	end := min(xSize, ySize)

	if start == end {
		if start%2 != 0 || 2*start > zSize {
			return 0
		}
		return start
	}

	for j := start; j <= end; j++ {
		if j%2 != 0 {
			continue
		}
		if 2*j > zSize {
			return 0
		}
		if xSW <= j && j <= xSize && ySW <= j && j <= ySize {
			if j%4 == 2 && j+2 <= xSize && j+2 <= ySize && 2*(j+2) <= zSize {
				return j + 2
			}
			return j
		}
	}
	return 0
}

// karatsubaSqrSize is karatsubaSize for a single operand.
func karatsubaSqrSize(zSize, xSize, xSW int) int {
	if xSW == xSize {
		if xSW%2 != 0 || 2*xSW > zSize {
			return 0
		}
		return xSW
	}
	for j := xSW; j <= xSize; j++ {
		if j%2 != 0 {
			continue
		}
		if 2*j > zSize {
			return 0
		}
		if j%4 == 2 && j+2 <= xSize && 2*(j+2) <= zSize {
			return j + 2
		}
		return j
	}
	return 0
}

// Mul sets z = x * y. x and y are the full allocated operands, whose words
// at or above xSW and ySW are zero; z must hold at least xSW+ySW words and
// must not overlap either input. ws is scratch of at least len(z) words and
// may be nil, which disables Karatsuba.
func Mul(z, ws, x []Word, xSW int, y []Word, ySW int) {
	zSize := len(z)
	if zSize < xSW+ySW {
		panic("mp: Mul destination too short")
	}
	clear(z)

	switch {
	case xSW == 0 || ySW == 0:
	case xSW == 1:
		LinMul3(z, y[:ySW], x[0])
	case ySW == 1:
		LinMul3(z, x[:xSW], y[0])
	case fits(4, xSW, len(x), ySW, len(y), zSize):
		CombaMul4(z, x, y)
	case fits(6, xSW, len(x), ySW, len(y), zSize):
		CombaMul6(z, x, y)
	case fits(8, xSW, len(x), ySW, len(y), zSize):
		CombaMul8(z, x, y)
	case fits(16, xSW, len(x), ySW, len(y), zSize):
		CombaMul16(z, x, y)
	case xSW < KaratsubaMulThreshold || ySW < KaratsubaMulThreshold || ws == nil:
		SimpleMul(z, x[:xSW], y[:ySW])
	default:
		n := karatsubaSize(zSize, len(x), xSW, len(y), ySW)
		if n == 0 || len(ws) < 2*n {
			SimpleMul(z, x[:xSW], y[:ySW])
			return
		}
		clear(ws[:2*n])
		karatsubaMul(z, x, y, n, ws)
	}
}

// Sqr sets z = x * x with the same buffer rules as Mul.
func Sqr(z, ws, x []Word, xSW int) {
	zSize := len(z)
	if zSize < 2*xSW {
		panic("mp: Sqr destination too short")
	}
	clear(z)

	switch {
	case xSW == 0:
	case xSW == 1:
		LinMul3(z, x[:1], x[0])
	case fits(4, xSW, len(x), xSW, len(x), zSize):
		CombaSqr4(z, x)
	case fits(6, xSW, len(x), xSW, len(x), zSize):
		CombaSqr6(z, x)
	case fits(8, xSW, len(x), xSW, len(x), zSize):
		CombaSqr8(z, x)
	case fits(16, xSW, len(x), xSW, len(x), zSize):
		CombaSqr16(z, x)
	case xSW < KaratsubaSqrThreshold || ws == nil:
		SimpleSqr(z, x[:xSW])
	default:
		n := karatsubaSqrSize(zSize, len(x), xSW)
		if n == 0 || len(ws) < 2*n {
			SimpleSqr(z, x[:xSW])
			return
		}
		clear(ws[:2*n])
		karatsubaSqr(z, x, n, ws)
	}
}

// fits reports whether the Comba routine for n words can serve operands
// with the given significant and allocated sizes.
func fits(n, xSW, xSize, ySW, ySize, zSize int) bool {
	return xSW <= n && xSize >= n && ySW <= n && ySize >= n && zSize >= 2*n
}
