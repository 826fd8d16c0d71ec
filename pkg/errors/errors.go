// Package errors defines the coded errors quotecraft returns.
//
// Every failure a user can act on carries a [Code]: a bad color name, a
// background that is not in the catalog, an unreadable font, an unsafe
// output name. The CLI prints [UserMessage] and picks its exit status from
// the code; library callers branch on [Is]:
//
//	_, err := palette.Default().Parse(name)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // ask again
//	}
//
// Causes are kept and reachable through the standard errors.Is/As chain:
//
//	return errors.Wrap(errors.ErrCodeInvalidBackground, err, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code string

const (
	// Bad values supplied by the user or the config file.
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"
	ErrCodeInvalidBackground Code = "INVALID_BACKGROUND"
	ErrCodeInvalidFont       Code = "INVALID_FONT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Something named could not be located.
	ErrCodeNotFound           Code = "NOT_FOUND"
	ErrCodeFileNotFound       Code = "FILE_NOT_FOUND"
	ErrCodeFontNotFound       Code = "FONT_NOT_FOUND"
	ErrCodeBackgroundNotFound Code = "BACKGROUND_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error. Message is what a user should read; Cause, when
// set, is the lower-level failure behind it.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a printf-style message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap is New with an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e := asError(err); e != nil {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage renders err for the terminal: the message and cause of a
// coded error without the code prefix, or err.Error() otherwise.
func UserMessage(err error) string {
	e := asError(err)
	if e == nil {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Exit statuses returned by the command line tool.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ExitCode maps err to a process exit status. Input problems are usage
// errors, missing resources get their own status, everything else is a
// plain failure.
func ExitCode(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidColor, ErrCodeInvalidPath, ErrCodeInvalidConfig:
		return ExitUsage
	case ErrCodeNotFound, ErrCodeFileNotFound, ErrCodeFontNotFound, ErrCodeBackgroundNotFound:
		return ExitNotFound
	default:
		return ExitFailure
	}
}
