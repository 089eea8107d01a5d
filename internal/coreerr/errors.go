// Package coreerr provides the error kinds shared by every cryptocore package.
package coreerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidArgument is returned for malformed or out-of-range input
	// detected before any computation begins.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivideByZero is returned for division or reduction by zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrDecoding is returned when serialized input cannot be decoded.
	ErrDecoding = errors.New("decoding error")

	// ErrIntegrityFailure is returned when an authentication tag does not verify.
	ErrIntegrityFailure = errors.New("integrity failure")

	// ErrInvalidState is returned when an object is used out of its required call order.
	ErrInvalidState = errors.New("invalid state")

	// ErrInternal is returned when an internal consistency check fails.
	ErrInternal = errors.New("internal error")
)

// ArgumentError describes a rejected caller input.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("invalid argument: %s", e.Message)
	}
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CoreError implements the cryptocore.CoreError interface.
func (e *ArgumentError) CoreError() {}

// Argument returns an *ArgumentError for op with a formatted message.
func Argument(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// DecodingError reports a character that is not valid for the requested base.
type DecodingError struct {
	Base string // "hexadecimal", "decimal", "padding", ...
	Pos  int
	Char byte
	Err  error
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Base, e.Err)
	}
	return fmt.Sprintf("decode %s: invalid character %q at offset %d", e.Base, e.Char, e.Pos)
}

// Unwrap returns the underlying error.
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching. A bad digit is both
// a decoding failure and a bad argument.
func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding || target == ErrInvalidArgument
}

// CoreError implements the cryptocore.CoreError interface.
func (e *DecodingError) CoreError() {}

// IntegrityError reports an AEAD tag mismatch. It never carries plaintext.
type IntegrityError struct {
	Mode string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: tag check failed", e.Mode)
}

// Is implements errors.Is for sentinel error matching.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrityFailure
}

// CoreError implements the cryptocore.CoreError interface.
func (e *IntegrityError) CoreError() {}

// StateError reports a call made out of the required order.
type StateError struct {
	Op      string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: invalid state: %s", e.Op, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// CoreError implements the cryptocore.CoreError interface.
func (e *StateError) CoreError() {}

// State returns a *StateError for op.
func State(op, message string) error {
	return &StateError{Op: op, Message: message}
}
