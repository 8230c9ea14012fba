package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigurationError.
	ErrConfiguration = errors.New("invalid match configuration")
	// ErrInvariantViolation is wrapped by every InvariantError.
	ErrInvariantViolation = errors.New("battle invariant violated")
)

// ConfigurationError rejects a match that cannot be played as set up.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return ErrConfiguration.Error() + ": " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvariantError reports corrupted battle state. It is a programming error.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return ErrInvariantViolation.Error() + ": " + e.Reason
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
