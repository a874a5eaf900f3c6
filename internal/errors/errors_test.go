// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package errors

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	err := New(KindValidation, "invalid input")
	if err.Error() != "invalid input" {
		t.Errorf("expected 'invalid input', got '%s'", err.Error())
	}

	wrapped := Wrap(err, KindInternal, "failed to validate")
	if wrapped.Error() != "failed to validate: invalid input" {
		t.Errorf("expected 'failed to validate: invalid input', got '%s'", wrapped.Error())
	}
}

func TestGetKind(t *testing.T) {
	err := New(KindValidation, "invalid input")
	if GetKind(err) != KindValidation {
		t.Errorf("expected KindValidation, got %v", GetKind(err))
	}

	wrapped := Wrap(err, KindInternal, "failed")
	if GetKind(wrapped) != KindInternal {
		t.Errorf("expected KindInternal, got %v", GetKind(wrapped))
	}

	if GetKind(errors.New("std error")) != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", GetKind(errors.New("std error")))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, KindInternal, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, KindInternal, "ignored %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestUnwrapChain(t *testing.T) {
	base := errors.New("socket closed")
	wrapped := Wrap(base, KindUnavailable, "capture stopped")

	if !Is(wrapped, base) {
		t.Error("wrapped error should match its base via Is")
	}
	if Unwrap(wrapped) != base {
		t.Errorf("expected base error from Unwrap, got %v", Unwrap(wrapped))
	}
}
