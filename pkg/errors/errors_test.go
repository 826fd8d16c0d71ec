package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidColor, "unknown color: %s", "mauve"), "INVALID_COLOR: unknown color: mauve"},
		{Wrap(ErrCodeInvalidBackground, io.ErrUnexpectedEOF, "decode photo"), "INVALID_BACKGROUND: decode photo: unexpected EOF"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeInvalidFont, io.ErrUnexpectedEOF, "parse %s", "arial.ttf")
	if err.Message != "parse arial.ttf" {
		t.Errorf("Message = %q", err.Message)
	}
	if errors.Unwrap(err) != io.ErrUnexpectedEOF {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
	if !errors.Is(fmt.Errorf("load: %w", err), io.ErrUnexpectedEOF) {
		t.Error("cause should be reachable through an outer wrap")
	}
}

func TestCodeLookup(t *testing.T) {
	nested := Wrap(ErrCodeInvalidFont, New(ErrCodeFileNotFound, "inner"), "outer")
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeBackgroundNotFound, "x"), ErrCodeBackgroundNotFound},
		{"outermost wins", nested, ErrCodeInvalidFont},
		{"behind fmt wrap", fmt.Errorf("create: %w", New(ErrCodeInvalidPath, "x")), ErrCodeInvalidPath},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is matched an unrelated code")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeInvalidInput, "enter at least one line"), "enter at least one line"},
		{Wrap(ErrCodeInvalidFont, errors.New("bad table"), "parse arial.ttf"), "parse arial.ttf: bad table"},
		{errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(ErrCodeInvalidColor, "bad"), ExitUsage},
		{New(ErrCodeInvalidPath, "bad"), ExitUsage},
		{Wrap(ErrCodeBackgroundNotFound, errors.New("x"), "missing"), ExitNotFound},
		{New(ErrCodeFontNotFound, "missing"), ExitNotFound},
		{New(ErrCodeInvalidBackground, "decode"), ExitFailure},
		{errors.New("plain"), ExitFailure},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
