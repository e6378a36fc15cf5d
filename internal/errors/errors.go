package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess          = 0 // Indicates successful execution.
	ExitErrorGeneric     = 1 // Indicates a generic error.
	ExitErrorConfig      = 4 // Indicates a configuration error.
	ExitErrorTaskFailure = 5 // Indicates a benchmark task terminated abnormally.
)

// ErrTaskPanicked is the sentinel matched by every TaskPanicError.
var ErrTaskPanicked = errors.New("task panicked")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// TaskPanicError reports a benchmark task that panicked instead of returning.
// The runner that executed the task recovers the panic and surfaces it as this
// error so the phase fails loudly rather than reporting a partial timing.
type TaskPanicError struct {
	// Phase is the name of the runner phase ("sequential" or "parallel").
	Phase string
	// Index is the zero-based position of the task within its phase.
	Index int
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

// Error returns a formatted message describing the panic.
func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("%s task %d panicked: %v", e.Phase, e.Index, e.Value)
}

// Unwrap exposes ErrTaskPanicked, or the panic value itself when it is an error.
func (e *TaskPanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrTaskPanicked, err}
	}
	return []error{ErrTaskPanicked}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code that reports it.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	var validationErr ValidationError
	switch {
	case errors.Is(err, ErrTaskPanicked):
		return ExitErrorTaskFailure
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
