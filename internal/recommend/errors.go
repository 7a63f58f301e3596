package recommend

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure for the top-level runner.
type Kind int

const (
	KindUnexpected Kind = iota
	KindConfiguration
	KindInput
	KindProvider
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInput:
		return "input"
	case KindProvider:
		return "provider"
	default:
		return "unexpected"
	}
}

// Error is a pipeline failure tagged with its kind.
type Error struct {
	Kind Kind
	Op   string // what was being attempted, e.g. "spotify search"
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError tags err as a configuration failure.
func ConfigurationError(op string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

// InputError tags err as a user input failure.
func InputError(op string, err error) error {
	return &Error{Kind: KindInput, Op: op, Err: err}
}

// ProviderError tags err as a catalog provider failure.
func ProviderError(op string, err error) error {
	return &Error{Kind: KindProvider, Op: op, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
// Errors without a tag are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Message renders err the way it is shown to the user.
func Message(err error) string {
	switch KindOf(err) {
	case KindConfiguration:
		return fmt.Sprintf("Configuration Error: %v", err)
	case KindInput:
		return fmt.Sprintf("Input Error: %v", err)
	case KindProvider:
		return fmt.Sprintf("Runtime Error: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
