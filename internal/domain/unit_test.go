package domain

import "testing"

func TestAffineDefinitions(t *testing.T) {
	fahrenheit := Affine(9.0/5.0, 32)
	kelvin := Affine(1, 273.15)

	if got := fahrenheit.FromBase(0); got != 32 {
		t.Fatalf("0°C -> %v°F, want 32", got)
	}
	if got := fahrenheit.ToBase(32); got != 0 {
		t.Fatalf("32°F -> %v°C, want 0", got)
	}
	if got := kelvin.FromBase(100); got != 373.15 {
		t.Fatalf("100°C -> %vK, want 373.15", got)
	}
	if got := kelvin.ToBase(273.15); got != 0 {
		t.Fatalf("273.15K -> %v°C, want 0", got)
	}
}

func TestUnitDefinitionKinds(t *testing.T) {
	if !InverseLinear(1).IsInverse() || Linear(1).IsInverse() {
		t.Fatalf("IsInverse mismatch")
	}
	if !Affine(1, 0).IsAffine() || Linear(1).IsAffine() {
		t.Fatalf("IsAffine mismatch")
	}
}

func TestOutcomeString(t *testing.T) {
	cases := []struct {
		in   Outcome
		want string
	}{
		{Outcome{Status: OutcomeOK, Value: 3.280839895013123}, "3.280839895"},
		{Outcome{Status: OutcomeOK, Value: 1e-12}, "1e-12"},
		{Outcome{Status: OutcomeOK, Value: 32}, "32"},
		{Outcome{Status: OutcomeInvalid}, "Invalid input"},
		{Outcome{Status: OutcomeEmpty}, ""},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Outcome%+v.String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategoryNote(t *testing.T) {
	rate := Category{Name: "Currency", Phrasing: PhrasingRate}
	if rate.Note() != RateNote {
		t.Fatalf("expected rate note, got %q", rate.Note())
	}
	if got := (Category{Name: "Length"}).Note(); got != "" {
		t.Fatalf("expected no note, got %q", got)
	}
}
