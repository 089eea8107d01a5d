package cryptocore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vaultsandbox/cryptocore/bigint"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidArgument", ErrInvalidArgument},
		{"ErrDivideByZero", ErrDivideByZero},
		{"ErrDecoding", ErrDecoding},
		{"ErrIntegrityFailure", ErrIntegrityFailure},
		{"ErrInvalidState", ErrInvalidState},
		{"ErrInternal", ErrInternal},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name    string
		err     CoreError
		matches error
	}{
		{"argument", &ArgumentError{Op: "x", Message: "bad"}, ErrInvalidArgument},
		{"decoding", &DecodingError{Base: "decimal", Pos: 3, Char: 'z'}, ErrDecoding},
		{"decoding is also argument", &DecodingError{Base: "decimal"}, ErrInvalidArgument},
		{"integrity", &IntegrityError{Mode: "AES-256/GCM(16)"}, ErrIntegrityFailure},
		{"state", &StateError{Op: "Execute", Message: "base not set"}, ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.matches) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.matches)
			}
		})
	}
}

func TestIntegrityError_Error(t *testing.T) {
	err := &IntegrityError{Mode: "Serpent/EAX"}
	if got, want := err.Error(), "Serpent/EAX: tag check failed"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
}

func TestErrorChain_CanUnwrapToSentinel(t *testing.T) {
	_, _, err := bigint.NewInt(1).DivMod(bigint.NewInt(0))
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrDivideByZero) {
		t.Errorf("wrapped error %v does not match ErrDivideByZero", wrapped)
	}

	_, err = bigint.Parse("12z")
	var de *DecodingError
	if !errors.As(fmt.Errorf("wrap: %w", err), &de) {
		t.Fatalf("errors.As(%v) to *DecodingError failed", err)
	}
	if de.Pos != 2 {
		t.Errorf("Pos = %d, want 2", de.Pos)
	}

	var ce CoreError
	if !errors.As(err, &ce) {
		t.Errorf("%T does not implement CoreError", err)
	}
}
