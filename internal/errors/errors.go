// Package errors classifies failures with a small set of codes that the
// Discord layer maps to user-facing messages and log fields.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown            Code = "unknown"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeNotFound           Code = "not_found"
	CodeAlreadyExists      Code = "already_exists"
	CodeFailedPrecondition Code = "failed_precondition" // no character, weapon missing, level too low
	CodeResourceExhausted  Code = "resource_exhausted"  // cooldown or provider rate limit
	CodeCancelled          Code = "cancelled"
	CodeUnavailable        Code = "unavailable"
)

// Coder is implemented by typed domain errors that know their own code
type Coder interface {
	ErrorCode() Code
}

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode implements Coder
func (e *Error) ErrorCode() Code {
	return e.Code
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code of an already classified cause is kept,
// including the code of a typed domain error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		Code:    GetCode(err),
		Message: message,
		Cause:   err,
	}
	var coded *Error
	if errors.As(err, &coded) {
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// MissingParam reports a required parameter that was not supplied
func MissingParam(param string) *Error {
	return Newf(CodeInvalidArgument, "missing parameter: %s", param).WithMeta("param", param)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// GetCode returns the code of the first classified error in err's chain
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return CodeUnknown
}

// Is reports whether err is classified with code
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

func IsFailedPrecondition(err error) bool {
	return Is(err, CodeFailedPrecondition)
}

func IsResourceExhausted(err error) bool {
	return Is(err, CodeResourceExhausted)
}

// GetMeta returns the metadata of the first *Error in err's chain
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}
