package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "registry.definition",
		Kind: KindUnknownUnit,
		Path: "tables/rates.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindUnknownUnit {
		t.Fatalf("expected kind %s", KindUnknownUnit)
	}

	msg := err.Error()
	for _, want := range []string{"registry.definition", "unknown_unit", "path=tables/rates.yaml", "root"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := unknownCategory("registry.listunits", "Nope")

	if !IsKind(err, KindUnknownCategory) {
		t.Fatalf("expected IsKind to match unknown category")
	}
	if IsKind(err, KindUnknownUnit) {
		t.Fatalf("did not expect unknown unit kind")
	}
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected sentinel in chain")
	}
	if IsKind(errors.New("plain"), KindUnknownCategory) {
		t.Fatalf("plain errors have no kind")
	}
}
