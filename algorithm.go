package cryptocore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Cipher identifies a supported block cipher.
type Cipher int

const (
	// AES128 is AES with a 16-byte key.
	AES128 Cipher = iota + 1
	// AES192 is AES with a 24-byte key.
	AES192
	// AES256 is AES with a 32-byte key.
	AES256
	// Serpent accepts 16, 24 or 32-byte keys.
	Serpent
)

var cipherNames = map[Cipher]string{
	AES128:  "AES-128",
	AES192:  "AES-192",
	AES256:  "AES-256",
	Serpent: "Serpent",
}

func (c Cipher) String() string {
	if name, ok := cipherNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cipher(%d)", int(c))
}

// KeySize returns the key length in bytes. For Serpent it is the largest
// accepted size.
func (c Cipher) KeySize() int {
	switch c {
	case AES128:
		return 16
	case AES192:
		return 24
	case AES256, Serpent:
		return 32
	default:
		return 0
	}
}

// ParseCipher looks up a cipher by its canonical name, e.g. "AES-256".
func ParseCipher(name string) (Cipher, error) {
	for c, n := range cipherNames {
		if n == name {
			return c, nil
		}
	}
	return 0, coreerr.Argument("cryptocore.ParseCipher", "unknown cipher %q", name)
}

// Mode identifies a supported AEAD mode.
type Mode int

const (
	// GCM is Galois/Counter Mode.
	GCM Mode = iota + 1
	// EAX is CTR encryption with OMAC authentication.
	EAX
)

var modeNames = map[Mode]string{
	GCM: "GCM",
	EAX: "EAX",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode looks up a mode by name, e.g. "GCM".
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, coreerr.Argument("cryptocore.ParseMode", "unknown mode %q", name)
}

// DefaultTagSize is the tag length used when an AlgorithmSpec leaves it zero.
const DefaultTagSize = 16

// AlgorithmSpec names a cipher, a mode and a tag length.
type AlgorithmSpec struct {
	Cipher  Cipher
	Mode    Mode
	TagSize int // 0 means DefaultTagSize
}

// String returns the spec as "AES-256/GCM", with the tag size appended in
// parentheses when it is not the default.
func (s AlgorithmSpec) String() string {
	name := s.Cipher.String() + "/" + s.Mode.String()
	if s.TagSize != 0 && s.TagSize != DefaultTagSize {
		name += "(" + strconv.Itoa(s.TagSize) + ")"
	}
	return name
}

func (s AlgorithmSpec) tagSize() int {
	if s.TagSize == 0 {
		return DefaultTagSize
	}
	return s.TagSize
}

// ParseAlgorithm reads the form produced by AlgorithmSpec.String.
func ParseAlgorithm(name string) (AlgorithmSpec, error) {
	cipherName, modeName, ok := strings.Cut(name, "/")
	if !ok {
		return AlgorithmSpec{}, coreerr.Argument("cryptocore.ParseAlgorithm", "missing mode in %q", name)
	}

	var spec AlgorithmSpec
	if open := strings.IndexByte(modeName, '('); open >= 0 {
		if !strings.HasSuffix(modeName, ")") {
			return AlgorithmSpec{}, coreerr.Argument("cryptocore.ParseAlgorithm", "malformed tag size in %q", name)
		}
		n, err := strconv.Atoi(modeName[open+1 : len(modeName)-1])
		if err != nil || n <= 0 {
			return AlgorithmSpec{}, coreerr.Argument("cryptocore.ParseAlgorithm", "malformed tag size in %q", name)
		}
		spec.TagSize = n
		modeName = modeName[:open]
	}

	var err error
	if spec.Cipher, err = ParseCipher(cipherName); err != nil {
		return AlgorithmSpec{}, err
	}
	if spec.Mode, err = ParseMode(modeName); err != nil {
		return AlgorithmSpec{}, err
	}
	return spec, nil
}
