package errs

import (
	"errors"
	"fmt"
)

// DockError is the single structured error type returned across package
// boundaries. It carries a typed Code so callers can branch with IsCode
// rather than matching on message text, and an optional Cause for
// errors.Is/errors.As chain traversal.
type DockError struct {
	Code    Code
	Message string
	Detail  string
	Cause   error
}

func (e *DockError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DockError) Unwrap() error { return e.Cause }

// WithDetail returns a shallow copy of e with Detail set. Safe on nil.
func (e *DockError) WithDetail(detail string) *DockError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of e with Cause set. Safe on nil.
func (e *DockError) WithCause(cause error) *DockError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = cause
	return &clone
}

// New constructs a DockError with the given code and message.
func New(code Code, message string) *DockError {
	return &DockError{Code: code, Message: message}
}

// Wrap constructs a DockError that chains an existing error as its cause.
// Returns nil if err is nil, so it composes inline:
//
//	return errs.Wrap(f.Close(), errs.CodeFileError, "closing parameter file")
func Wrap(err error, code Code, message string) *DockError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var de *DockError
		if errors.As(err, &de) {
			code = de.Code
		}
	}
	return &DockError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether err's chain contains a DockError with the given code.
func IsCode(err error, code Code) bool {
	var de *DockError
	for err != nil {
		if errors.As(err, &de) && de.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// BadArgument constructs a CodeBadArgument DockError.
func BadArgument(message string) *DockError {
	return &DockError{Code: CodeBadArgument, Message: message}
}

// InvalidRequest constructs a CodeInvalidRequest DockError.
func InvalidRequest(message string) *DockError {
	return &DockError{Code: CodeInvalidRequest, Message: message}
}

// FileError constructs a CodeFileError DockError.
func FileError(message string) *DockError {
	return &DockError{Code: CodeFileError, Message: message}
}

// FileMissingParameter constructs a CodeFileMissingParameter DockError.
func FileMissingParameter(section, param string) *DockError {
	return &DockError{
		Code:    CodeFileMissingParameter,
		Message: fmt.Sprintf("missing %s parameter in section %s", param, section),
	}
}

// FileParseError constructs a CodeFileParseError DockError.
func FileParseError(message string) *DockError {
	return &DockError{Code: CodeFileParseError, Message: message}
}

// ModelError constructs a CodeModelError DockError.
func ModelError(message string) *DockError {
	return &DockError{Code: CodeModelError, Message: message}
}

// Assertion constructs a CodeAssertion DockError, for invariant violations
// that indicate a bug rather than bad input.
func Assertion(message string) *DockError {
	return &DockError{Code: CodeAssertion, Message: message}
}
