package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingField, "missing required config field: %s", "package_name")

	if err.Code != ErrCodeMissingField {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeMissingField)
	}
	want := "MISSING_FIELD: missing required config field: package_name"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeIO, cause, "write %s", "out.dot")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not match its cause via errors.Is")
	}
	want := "IO_ERROR: write out.dot: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidField, "bad field")

	if !Is(err, ErrCodeInvalidField) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeIO) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeIO) {
		t.Error("Is() = true for plain error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeConfigNotFound, "config file not found: config.toml")
	outer := fmt.Errorf("load: %w", inner)

	if !Is(outer, ErrCodeConfigNotFound) {
		t.Error("Is() = false for code buried in a wrap chain")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInternal)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeIO, "write failed")); got != "write failed" {
		t.Errorf("UserMessage() = %q, want %q", got, "write failed")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
