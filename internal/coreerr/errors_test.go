package coreerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches []error
		misses  []error
	}{
		{
			name:    "argument",
			err:     Argument("NewReducer", "modulus must be positive"),
			matches: []error{ErrInvalidArgument},
			misses:  []error{ErrDecoding, ErrInvalidState},
		},
		{
			name:    "decoding",
			err:     &DecodingError{Base: "hexadecimal", Pos: 3, Char: 'g'},
			matches: []error{ErrDecoding, ErrInvalidArgument},
			misses:  []error{ErrIntegrityFailure},
		},
		{
			name:    "integrity",
			err:     &IntegrityError{Mode: "AES-128/GCM"},
			matches: []error{ErrIntegrityFailure},
			misses:  []error{ErrInvalidArgument},
		},
		{
			name:    "state",
			err:     State("Execute", "base not set"),
			matches: []error{ErrInvalidState},
			misses:  []error{ErrInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			for _, target := range tt.matches {
				if !errors.Is(wrapped, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, target)
				}
			}
			for _, target := range tt.misses {
				if errors.Is(wrapped, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", wrapped, target)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"argument with op", Argument("Mod", "negative modulus %d", -3), "Mod: invalid argument: negative modulus -3"},
		{"argument without op", &ArgumentError{Message: "bad"}, "invalid argument: bad"},
		{"decoding char", &DecodingError{Base: "decimal", Pos: 2, Char: 'x'}, `decode decimal: invalid character 'x' at offset 2`},
		{"decoding wrapped", &DecodingError{Base: "padding", Err: errors.New("too long")}, "decode padding: too long"},
		{"integrity", &IntegrityError{Mode: "Serpent/EAX"}, "Serpent/EAX: tag check failed"},
		{"state", State("Update", "not started"), "Update: invalid state: not started"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodingError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &DecodingError{Base: "padding", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}
