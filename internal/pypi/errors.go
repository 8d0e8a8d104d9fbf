package pypi

import "fmt"

// ErrorType classifies failures of the bootstrap pipeline.
type ErrorType int

const (
	// DependencyFailure indicates an OS-level failure spawning pip.
	DependencyFailure ErrorType = iota
	// MissingRequirementsFile indicates the requirements file does not exist.
	MissingRequirementsFile
	// ModuleInstallation indicates pip ran but reported a failure.
	ModuleInstallation
	// ChunkedEncoding indicates a chunked download could not be decoded.
	ChunkedEncoding
	// StreamConsume indicates a download stream ended before it was fully read.
	StreamConsume
)

// Error is the error type returned by the bootstrap pipeline.
type Error struct {
	// Type is the failure class.
	Type ErrorType
	// Message is the human-readable description, including any captured
	// process error output.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewDependencyError creates an OS-level dependency error.
func NewDependencyError(message string, cause error) *Error {
	return &Error{Type: DependencyFailure, Message: message, Cause: cause}
}

// NewMissingRequirementsFileError creates a missing-requirements-file error.
func NewMissingRequirementsFileError(path string) *Error {
	return &Error{
		Type:    MissingRequirementsFile,
		Message: fmt.Sprintf("the %s file was not found", path),
	}
}

// NewModuleInstallationError creates a module installation error.
func NewModuleInstallationError(message string, cause error) *Error {
	return &Error{Type: ModuleInstallation, Message: message, Cause: cause}
}

// NewChunkedEncodingError creates a chunked-encoding download error.
func NewChunkedEncodingError(message string, cause error) *Error {
	return &Error{Type: ChunkedEncoding, Message: message, Cause: cause}
}

// NewStreamConsumeError creates a stream-consumption download error.
func NewStreamConsumeError(message string, cause error) *Error {
	return &Error{Type: StreamConsume, Message: message, Cause: cause}
}

// IsDependencyError reports whether err belongs to the dependency family
// (dependency, missing requirements file, or module installation failures).
func IsDependencyError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Type {
	case DependencyFailure, MissingRequirementsFile, ModuleInstallation:
		return true
	}
	return false
}

// IsFileError reports whether err belongs to the download/file family.
func IsFileError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Type == ChunkedEncoding || e.Type == StreamConsume
}
