package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew_UsesDefaultMessage(t *testing.T) {
	err := New(Conflict)
	if err.ErrorCode() != Conflict {
		t.Fatalf("ErrorCode() = %+v", err.ErrorCode())
	}
	if err.CustomMessage() != "" {
		t.Fatalf("CustomMessage() = %q; want empty", err.CustomMessage())
	}
	if err.Error() != "CONFLICT: 이미 존재합니다." {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestNewWithMessage_OverridesMessageOnly(t *testing.T) {
	err := NewWithMessage(NotFound, "member not found")
	if err.ErrorCode().Status() != 404 || err.ErrorCode().Code() != "NOT_FOUND" {
		t.Fatalf("status/code changed: %+v", err.ErrorCode())
	}
	if err.CustomMessage() != "member not found" {
		t.Fatalf("CustomMessage() = %q", err.CustomMessage())
	}
}

func TestWrap_UnwrapAndAs(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("create member: %w", Wrap(Conflict, cause))

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(cause) = false")
	}
	if !errors.Is(err, New(Conflict)) {
		t.Fatalf("errors.Is(New(Conflict)) = false")
	}
	if errors.Is(err, New(NotFound)) {
		t.Fatalf("errors.Is(New(NotFound)) = true; want false")
	}
	ec, ok := CodeOf(err)
	if !ok || ec != Conflict {
		t.Fatalf("CodeOf = %+v, %v", ec, ok)
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("cause missing from Error(): %q", err.Error())
	}
}

func TestCodeOf_NotBusiness(t *testing.T) {
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf(plain) = ok")
	}
	if _, ok := CodeOf(nil); ok {
		t.Fatalf("CodeOf(nil) = ok")
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("page %q", "x")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("InvalidArgument must wrap ErrInvalidArgument")
	}
	if err.Error() != `invalid argument: page "x"` {
		t.Fatalf("Error() = %q", err.Error())
	}
}
