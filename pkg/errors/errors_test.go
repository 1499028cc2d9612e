// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"go.uber.org/multierr"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_style_error",
			code:    errors.ErrUnknownStyle,
			message: "no style named magenta2",
			wantStr: "[UNKNOWN_STYLE] no style named magenta2",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "index out of range",
			wantStr: "[INVALID_INPUT] index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrGroupMismatch, "group must be either %s or %s, %s given", "Fore", "Back", "Font")

	want := "group must be either Fore or Back, Font given"
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSourceInvalid, "bad palette")

		if err.Code != errors.ErrSourceInvalid {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSourceInvalid)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SOURCE_INVALID] bad palette: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigLoad, "loading %s", "config.toml")
		if err.Message != "loading config.toml" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownStyle, "unknown style").
		WithDetail("group", "Fore").
		WithDetail("style", "magenta2")

	if err.Details["group"] != "Fore" {
		t.Errorf("WithDetail() group = %v, want %v", err.Details["group"], "Fore")
	}

	if got := errors.GetErrorDetails(err)["style"]; got != "magenta2" {
		t.Errorf("GetErrorDetails() style = %v, want %v", got, "magenta2")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownGroup, "error 1")
	err2 := errors.New(errors.ErrUnknownGroup, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_through_multierr", func(t *testing.T) {
		combined := multierr.Combine(err3, err1)
		if !stderrors.Is(combined, errors.New(errors.ErrUnknownGroup, "")) {
			t.Error("errors.Is() should find a code inside a combined error")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrResetInvalid, "bad reset"),
			code:     errors.ErrResetInvalid,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrResetInvalid, "bad reset"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrMarkupParse, "broken tag"),
			code:     errors.ErrMarkupParse,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknownStyle,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknownStyle,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "style_error",
			err:      errors.New(errors.ErrNotImplemented, "no rgb"),
			expected: errors.ErrNotImplemented,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	sourceErr := errors.Wrap(rootCause, errors.ErrSourceInvalid, "cannot decode palette")
	configErr := errors.Wrap(sourceErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var styleErr *errors.StyleError
		if stderrors.As(configErr.Unwrap(), &styleErr) {
			if !errors.IsErrorCode(styleErr, errors.ErrSourceInvalid) {
				t.Error("Middle error should have ErrSourceInvalid code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
