package errors

import (
	"errors"
	"fmt"
)

// Exit codes for steamdirs
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitDiscovery    = 2
	ExitTerminal     = 3
	ExitConfigError  = 4
	ExitRender       = 5
	ExitInput        = 6
)

// AppError is the base error type for steamdirs
type AppError struct {
	Code    int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *AppError) ExitCode() int {
	return e.Code
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code int, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SteamNotFound returns an error when no Steam installation can be located
func SteamNotFound(searched []string) *AppError {
	return New(ExitDiscovery, fmt.Sprintf("steam installation not found (searched %d locations)", len(searched)))
}

// DiscoveryError returns an error for failures while enumerating games
func DiscoveryError(message string, cause error) *AppError {
	return Wrap(ExitDiscovery, message, cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *AppError {
	return Wrap(ExitConfigError, message, cause)
}

// TerminalError returns an error for terminal setup or teardown
func TerminalError(message string, cause error) *AppError {
	return Wrap(ExitTerminal, message, cause)
}

// RenderError returns an error raised while drawing a frame
func RenderError(cause error) *AppError {
	return Wrap(ExitRender, "failed to render", cause)
}

// InputError returns an error raised while polling for input
func InputError(cause error) *AppError {
	return Wrap(ExitInput, "failed to read input", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *AppError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
