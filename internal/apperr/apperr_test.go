package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	err := Userf("day %d is not valid", 99)
	if err.Error() != "day 99 is not valid" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !IsUser(err) {
		t.Fatalf("IsUser() = false for a UserError")
	}
	if !IsUser(fmt.Errorf("resolving puzzle: %w", err)) {
		t.Fatalf("IsUser() = false for a wrapped UserError")
	}
	if IsUser(errors.New("plain")) {
		t.Fatalf("IsUser() = true for a plain error")
	}
}

func TestCategoryWrappers(t *testing.T) {
	err := Fetchf("unexpected status %d", 404)
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("Fetchf result does not match ErrFetch: %v", err)
	}
	if want := "input download failed: unexpected status 404"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(Submitf("status %d", 500), ErrSubmit) {
		t.Fatalf("Submitf result does not match ErrSubmit")
	}
}
