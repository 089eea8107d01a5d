package block

import (
	"fmt"
	"strings"
)

// Padding extends a message to a whole number of blocks and strips the
// extension again.
type Padding interface {
	// Name returns the scheme name, e.g. "PKCS7".
	Name() string

	// Pad appends between 1 and blockSize bytes of padding to buf. It
	// appends in place, so copy buf first to keep it unchanged.
	Pad(buf []byte, blockSize int) []byte

	// Unpad returns buf without its padding, or an error wrapping
	// ErrDecoding when the padding is malformed.
	Unpad(buf []byte, blockSize int) ([]byte, error)
}

// Padding schemes.
var (
	// PKCS7 fills with n bytes of value n.
	PKCS7 Padding = pkcs7{}

	// ANSIX923 fills with zeros and ends with the pad length.
	ANSIX923 Padding = ansiX923{}

	// OneAndZeros appends 0x80 followed by zeros (ISO/IEC 7816-4).
	OneAndZeros Padding = oneAndZeros{}
)

// PaddingByName returns the scheme registered under name, ignoring case.
func PaddingByName(name string) (Padding, bool) {
	for _, p := range []Padding{PKCS7, ANSIX923, OneAndZeros} {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

func checkPadBlockSize(blockSize int) {
	if blockSize <= 1 || blockSize >= 256 {
		panic("block: bad padding block size")
	}
}

func badPadding(scheme, format string, args ...any) error {
	return fmt.Errorf("%w: %s padding: %s", ErrDecoding, scheme, fmt.Sprintf(format, args...))
}

// checkPadded validates the common framing of a padded buffer.
func checkPadded(scheme string, buf []byte, blockSize int) error {
	checkPadBlockSize(blockSize)
	if len(buf) == 0 {
		return badPadding(scheme, "not padded")
	}
	if len(buf)%blockSize != 0 {
		return badPadding(scheme, "length %d not a multiple of %d", len(buf), blockSize)
	}
	return nil
}

type pkcs7 struct{}

func (pkcs7) Name() string { return "PKCS7" }

func (pkcs7) Pad(buf []byte, blockSize int) []byte {
	checkPadBlockSize(blockSize)
	n := blockSize - len(buf)%blockSize
	for i := 0; i < n; i++ {
		buf = append(buf, byte(n))
	}
	return buf
}

func (pkcs7) Unpad(buf []byte, blockSize int) ([]byte, error) {
	if err := checkPadded("PKCS7", buf, blockSize); err != nil {
		return nil, err
	}
	n := int(buf[len(buf)-1])
	if n == 0 || n > blockSize {
		return nil, badPadding("PKCS7", "bad length byte %d", n)
	}
	for _, b := range buf[len(buf)-n:] {
		if int(b) != n {
			return nil, badPadding("PKCS7", "not all the same")
		}
	}
	return buf[:len(buf)-n], nil
}

type ansiX923 struct{}

func (ansiX923) Name() string { return "ANSI X9.23" }

func (ansiX923) Pad(buf []byte, blockSize int) []byte {
	checkPadBlockSize(blockSize)
	n := blockSize - len(buf)%blockSize
	for i := 0; i < n-1; i++ {
		buf = append(buf, 0)
	}
	return append(buf, byte(n))
}

func (ansiX923) Unpad(buf []byte, blockSize int) ([]byte, error) {
	if err := checkPadded("ANSI X9.23", buf, blockSize); err != nil {
		return nil, err
	}
	n := int(buf[len(buf)-1])
	if n == 0 || n > blockSize {
		return nil, badPadding("ANSI X9.23", "bad length byte %d", n)
	}
	for _, b := range buf[len(buf)-n : len(buf)-1] {
		if b != 0 {
			return nil, badPadding("ANSI X9.23", "non-zero fill byte")
		}
	}
	return buf[:len(buf)-n], nil
}

type oneAndZeros struct{}

func (oneAndZeros) Name() string { return "OneAndZeros" }

func (oneAndZeros) Pad(buf []byte, blockSize int) []byte {
	checkPadBlockSize(blockSize)
	n := blockSize - len(buf)%blockSize
	buf = append(buf, 0x80)
	for i := 1; i < n; i++ {
		buf = append(buf, 0)
	}
	return buf
}

func (oneAndZeros) Unpad(buf []byte, blockSize int) ([]byte, error) {
	if err := checkPadded("OneAndZeros", buf, blockSize); err != nil {
		return nil, err
	}
	for i := len(buf) - 1; i >= len(buf)-blockSize; i-- {
		switch buf[i] {
		case 0:
			continue
		case 0x80:
			return buf[:i], nil
		default:
			return nil, badPadding("OneAndZeros", "unexpected byte 0x%02x", buf[i])
		}
	}
	return nil, badPadding("OneAndZeros", "no marker in final block")
}
