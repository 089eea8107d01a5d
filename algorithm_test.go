package cryptocore

import (
	"errors"
	"testing"
)

func TestCipher_String(t *testing.T) {
	tests := []struct {
		c       Cipher
		want    string
		keySize int
	}{
		{AES128, "AES-128", 16},
		{AES192, "AES-192", 24},
		{AES256, "AES-256", 32},
		{Serpent, "Serpent", 32},
		{Cipher(0), "Cipher(0)", 0},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
			if got := tt.c.KeySize(); got != tt.keySize {
				t.Errorf("KeySize() = %d, want %d", got, tt.keySize)
			}
		})
	}
}

func TestParseCipher(t *testing.T) {
	for _, c := range []Cipher{AES128, AES192, AES256, Serpent} {
		got, err := ParseCipher(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCipher(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCipher("aes-256"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseCipher is case sensitive, got error %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{GCM, EAX} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("OCB"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseMode(OCB) error = %v, want ErrInvalidArgument", err)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %s", got)
	}
}

func TestAlgorithmSpec_String(t *testing.T) {
	tests := []struct {
		spec AlgorithmSpec
		want string
	}{
		{AlgorithmSpec{Cipher: AES256, Mode: GCM}, "AES-256/GCM"},
		{AlgorithmSpec{Cipher: AES256, Mode: GCM, TagSize: 16}, "AES-256/GCM"},
		{AlgorithmSpec{Cipher: AES128, Mode: GCM, TagSize: 12}, "AES-128/GCM(12)"},
		{AlgorithmSpec{Cipher: Serpent, Mode: EAX, TagSize: 8}, "Serpent/EAX(8)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.spec.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    AlgorithmSpec
		wantErr bool
	}{
		{in: "AES-256/GCM", want: AlgorithmSpec{Cipher: AES256, Mode: GCM}},
		{in: "AES-128/GCM(12)", want: AlgorithmSpec{Cipher: AES128, Mode: GCM, TagSize: 12}},
		{in: "Serpent/EAX", want: AlgorithmSpec{Cipher: Serpent, Mode: EAX}},
		{in: "AES-256", wantErr: true},
		{in: "AES-256/GCM(", wantErr: true},
		{in: "AES-256/GCM(x)", wantErr: true},
		{in: "AES-256/GCM(0)", wantErr: true},
		{in: "DES/GCM", wantErr: true},
		{in: "AES-256/CCM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseAlgorithm(%q) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
