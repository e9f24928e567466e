package sfoglia

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of an interaction (pressed
// back, dismissed a dialog). This is normal flow control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError represents a framework-level error: SDL failed, a
// font is missing, rendering broke. These are typically fatal or require
// framework-level recovery; the consuming application cannot reasonably
// handle them at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
