// Package errors provides typed errors for codeport-runner
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrRepo indicates a repository acquisition or discovery error
	ErrRepo
	// ErrProvider indicates an LLM provider error
	ErrProvider
	// ErrAnalysis indicates a code analysis error
	ErrAnalysis
	// ErrConversion indicates a code conversion error
	ErrConversion
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
)

// PortError is the base error type for all codeport-runner errors
type PortError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *PortError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *PortError) Unwrap() error {
	return e.Cause
}

// New creates a new PortError
func New(errType ErrorType, message string, cause error) *PortError {
	return &PortError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *PortError) WithContext(key string, value interface{}) *PortError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var portErr *PortError
	if err == nil {
		return false
	}
	if errors.As(err, &portErr) {
		return portErr.Type == errType
	}
	return false
}

// IsRetryable returns true if the error is transient and retryable
func IsRetryable(err error) bool {
	var portErr *PortError
	if !errors.As(err, &portErr) {
		return false
	}

	switch portErr.Type {
	case ErrTimeout:
		return true
	case ErrProvider:
		// Retry only for rate limits and timeouts
		return portErr.Message == "rate_limit_exceeded" || portErr.Message == "timeout"
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrRepo:
		return "REPO"
	case ErrProvider:
		return "PROVIDER"
	case ErrAnalysis:
		return "ANALYSIS"
	case ErrConversion:
		return "CONVERSION"
	case ErrValidation:
		return "VALIDATION"
	case ErrTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *PortError {
	return New(ErrConfig, message, cause)
}

// RepoError creates a repository error
func RepoError(message string, cause error) *PortError {
	return New(ErrRepo, message, cause)
}

// ProviderError creates a provider error
func ProviderError(message string, cause error) *PortError {
	return New(ErrProvider, message, cause)
}

// AnalysisError creates an analysis error
func AnalysisError(message string, cause error) *PortError {
	return New(ErrAnalysis, message, cause)
}

// ConversionError creates a conversion error
func ConversionError(message string, cause error) *PortError {
	return New(ErrConversion, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *PortError {
	return New(ErrValidation, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *PortError {
	return New(ErrTimeout, message, cause)
}
