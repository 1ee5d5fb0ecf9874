package vouch

import (
	"errors"
	"testing"
)

func TestValidationError_MessageWithName(t *testing.T) {
	err := &ValidationError[int]{State: 4, Index: 1, Name: "odd", Err: errors.New("not odd")}

	want := `filter "odd" (index 1) rejected state: not odd`
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidationError_MessageWithoutName(t *testing.T) {
	err := &ValidationError[string]{State: "", Index: 0, Err: errors.New("empty text")}

	want := "filter at index 0 rejected state: empty text"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidationError_UnwrapsDiagnostic(t *testing.T) {
	sentinel := errors.New("not odd")
	err := &ValidationError[int]{State: 4, Index: 1, Err: sentinel}

	if !errors.Is(err, sentinel) {
		t.Error("expected errors.Is to reach the diagnostic")
	}
}
