package bigint

import (
	"math"
	"strings"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
	"github.com/vaultsandbox/cryptocore/internal/mp"
)

// Base selects a serialized form of a magnitude. None of them carry a sign.
type Base int

const (
	// Binary is big-endian unsigned bytes.
	Binary Base = iota
	// Hexadecimal is upper-case ASCII hex, two characters per byte.
	Hexadecimal
	// Decimal is ASCII decimal digits.
	Decimal
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Hexadecimal:
		return "hexadecimal"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

const hexDigits = "0123456789ABCDEF"

// EncodedSize returns the number of bytes Encode produces for base. For
// Decimal it is an upper bound.
func (x *Int) EncodedSize(base Base) int {
	switch base {
	case Binary:
		return x.ByteLen()
	case Hexadecimal:
		return 2 * x.ByteLen()
	case Decimal:
		return int(float64(x.BitLen())*math.Log10(2)) + 1
	default:
		return 0
	}
}

// Encode serializes |x| in base. Zero encodes as an empty slice in Binary
// and Hexadecimal and as "0" in Decimal.
func (x *Int) Encode(base Base) ([]byte, error) {
	switch base {
	case Binary:
		return x.Bytes(), nil
	case Hexadecimal:
		raw := x.Bytes()
		out := make([]byte, 2*len(raw))
		for i, b := range raw {
			out[2*i] = hexDigits[b>>4]
			out[2*i+1] = hexDigits[b&0x0f]
		}
		return out, nil
	case Decimal:
		return x.encodeDecimal(), nil
	default:
		return nil, coreerr.Argument("bigint.Encode", "unknown base %d", int(base))
	}
}

// Bytes returns |x| as big-endian bytes with no leading zeros.
func (x *Int) Bytes() []byte {
	n := x.ByteLen()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = x.ByteAt(i)
	}
	return out
}

// EncodeFixed returns |x| as exactly width big-endian bytes, left padded
// with zeros.
func (x *Int) EncodeFixed(width int) ([]byte, error) {
	if n := x.ByteLen(); n > width {
		return nil, coreerr.Argument("bigint.EncodeFixed", "value needs %d bytes, have %d", n, width)
	}
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[width-1-i] = x.ByteAt(i)
	}
	return out, nil
}

// encodeDecimal divides a copy of |x| by ten until it reaches zero. This is
// quadratic in the length of x and not constant time.
func (x *Int) encodeDecimal() []byte {
	sw := x.SigWords()
	if sw == 0 {
		return []byte{'0'}
	}
	work := make([]Word, sw)
	copy(work, x.limbs[:sw])

	out := make([]byte, 0, x.EncodedSize(Decimal))
	for sw > 0 {
		var rem Word
		for i := sw; i > 0; i-- {
			q := mp.DivOp(rem, work[i-1], 10)
			rem = work[i-1] - q*10
			work[i-1] = q
		}
		out = append(out, byte('0'+rem))
		sw = mp.SigWords(work[:sw])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Decode parses buf as a magnitude in base and returns a non-negative Int.
// An odd-length hex string is read as if it had a leading zero.
func Decode(buf []byte, base Base) (*Int, error) {
	switch base {
	case Binary:
		return decodeBinary(buf), nil
	case Hexadecimal:
		return decodeHex(buf)
	case Decimal:
		return decodeDecimal(buf)
	default:
		return nil, coreerr.Argument("bigint.Decode", "unknown base %d", int(base))
	}
}

func decodeBinary(buf []byte) *Int {
	z := &Int{limbs: alloc((len(buf) + mp.WordBytes - 1) / mp.WordBytes)}
	for i := range buf {
		b := buf[len(buf)-1-i]
		z.limbs[i/mp.WordBytes] |= Word(b) << (8 * uint(i%mp.WordBytes))
	}
	return z
}

func decodeHex(buf []byte) (*Int, error) {
	padded := buf
	offset := 0
	if len(buf)%2 == 1 {
		padded = append([]byte{'0'}, buf...)
		offset = -1
	}

	raw := make([]byte, len(padded)/2)
	for i := range raw {
		hi, ok := hexValue(padded[2*i])
		if !ok {
			return nil, &coreerr.DecodingError{Base: Hexadecimal.String(), Pos: 2*i + offset, Char: padded[2*i]}
		}
		lo, ok := hexValue(padded[2*i+1])
		if !ok {
			return nil, &coreerr.DecodingError{Base: Hexadecimal.String(), Pos: 2*i + 1 + offset, Char: padded[2*i+1]}
		}
		raw[i] = hi<<4 | lo
	}
	return decodeBinary(raw), nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodeDecimal accumulates z = 10*z + digit, growing z whenever the
// top word carries out.
func decodeDecimal(buf []byte) (*Int, error) {
	z := &Int{limbs: alloc(1)}
	for i, c := range buf {
		if c < '0' || c > '9' {
			return nil, &coreerr.DecodingError{Base: Decimal.String(), Pos: i, Char: c}
		}
		carry := mp.LinMul2(z.limbs, 10)
		carry += mp.Add2(z.limbs, []Word{Word(c - '0')})
		if carry != 0 {
			top := len(z.limbs)
			z.growTo(top + 1)
			z.limbs[top] = carry
		}
	}
	return z, nil
}

// Parse reads a signed integer in decimal, or in hex when the digits carry a
// "0x" prefix. A leading "-" makes the result negative.
func Parse(s string) (*Int, error) {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var (
		z   *Int
		err error
	)
	switch {
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		if len(digits) == 2 {
			return nil, coreerr.Argument("bigint.Parse", "no digits after hex prefix in %q", s)
		}
		z, err = decodeHex([]byte(digits[2:]))
	case digits == "":
		return nil, coreerr.Argument("bigint.Parse", "empty number %q", s)
	default:
		z, err = decodeDecimal([]byte(digits))
	}
	if err != nil {
		return nil, err
	}
	z.neg = neg
	return z.norm(), nil
}

// MustParse is Parse for constants known to be well formed. It panics on
// error.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// Text returns x in base with a leading "-" when negative. Zero is "0" in
// every base; Binary is rendered as hex.
func (x *Int) Text(base Base) string {
	var digits []byte
	switch base {
	case Decimal:
		digits = x.encodeDecimal()
	default:
		digits, _ = x.Encode(Hexadecimal)
		if len(digits) == 0 {
			digits = []byte{'0'}
		}
	}
	if x.IsNegative() {
		return "-" + string(digits)
	}
	return string(digits)
}

// String returns x in decimal.
func (x *Int) String() string {
	return x.Text(Decimal)
}
