package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeUnknownEntity, "unknown company: %s", "Boring Company"), "UNKNOWN_ENTITY: unknown company: Boring Company"},
		{"with cause", Wrap(ErrCodeInvalidDataset, errors.New("line 3"), "decode toml"), "INVALID_DATASET: decode toml: line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "dataset %s", "musk.toml")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"direct", New(ErrCodeInvalidTheme, "unknown theme"), ErrCodeInvalidTheme},
		{"through fmt.Errorf", fmt.Errorf("layout: %w", New(ErrCodeUnknownEntity, "x")), ErrCodeUnknownEntity},
		{"outermost code wins", Wrap(ErrCodeInvalidDataset, New(ErrCodeInvalidPath, "inner"), "outer"), ErrCodeInvalidDataset},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%v, %s) = false", tt.err, tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Errorf("Is(%v, INTERNAL_ERROR) = true", tt.err)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"code stripped", New(ErrCodeInvalidTheme, "unknown theme %q", "autumn"), `unknown theme "autumn"`},
		{"cause kept", Wrap(ErrCodeInvalidDataset, errors.New("line 3: bad key"), "decode toml"), "decode toml: line 3: bad key"},
		{"wrapping context kept", fmt.Errorf("musk.toml: %w", New(ErrCodeUnknownEntity, "unknown company: X")), "musk.toml: unknown company: X"},
		{"nested codes", fmt.Errorf("load: %w", Wrap(ErrCodeInvalidPath, New(ErrCodeInvalidInput, "absolute path"), "agency DOL image")), "load: agency DOL image: absolute path"},
		{"plain", errors.New("disk full"), "disk full"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeUnknownEntity, "x"), true},
		{fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "x")), true},
		{New(ErrCodeInternal, "x"), false},
		{New(ErrCodeUnsupported, "rsvg-convert missing"), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := IsUserError(tt.err); got != tt.want {
			t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
