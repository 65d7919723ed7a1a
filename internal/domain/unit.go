package domain

// UnitKind tags the variant held by a UnitDefinition.
type UnitKind string

const (
	UnitLinear        UnitKind = "linear"
	UnitInverseLinear UnitKind = "inverse_linear"
	UnitAffine        UnitKind = "affine"
)

// UnitDefinition describes how a unit relates to its category's base quantity.
// It is plain data so tables can be declared in Go or loaded from YAML.
//
//   - linear:         value_in_base = value * Base
//   - inverse_linear: reciprocal relation, only meaningful next to linear units
//   - affine:         base = (value - Offset) / Scale
type UnitDefinition struct {
	Kind   UnitKind
	Base   float64
	Scale  float64
	Offset float64
}

// Linear returns a proportional unit definition.
func Linear(base float64) UnitDefinition {
	return UnitDefinition{Kind: UnitLinear, Base: base}
}

// InverseLinear returns a definition whose relation to the base quantity is reciprocal.
func InverseLinear(base float64) UnitDefinition {
	return UnitDefinition{Kind: UnitInverseLinear, Base: base}
}

// Affine returns a scale-and-offset definition (temperature scales).
func Affine(scale, offset float64) UnitDefinition {
	return UnitDefinition{Kind: UnitAffine, Scale: scale, Offset: offset}
}

func (d UnitDefinition) IsInverse() bool { return d.Kind == UnitInverseLinear }
func (d UnitDefinition) IsAffine() bool  { return d.Kind == UnitAffine }

// ToBase maps an affine value onto the category base (Celsius for temperature).
func (d UnitDefinition) ToBase(v float64) float64 {
	return (v - d.Offset) / d.Scale
}

// FromBase is the inverse of ToBase.
func (d UnitDefinition) FromBase(c float64) float64 {
	return c*d.Scale + d.Offset
}

// Unit is a named definition inside a category.
type Unit struct {
	Name string
	Def  UnitDefinition
}

// Phrasing selects how formula text is worded for a category.
type Phrasing string

const (
	// PhrasingRatio words linear factors as "multiply by" or "divide by".
	PhrasingRatio Phrasing = "ratio"
	// PhrasingRate always words the factor as an exchange rate multiplier.
	PhrasingRate Phrasing = "rate"
)

// Category is a conversion domain with an ordered list of units.
type Category struct {
	Name     string
	Phrasing Phrasing
	Units    []Unit
}

// UnitNames returns the unit names in declaration order.
func (c Category) UnitNames() []string {
	out := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		out = append(out, u.Name)
	}
	return out
}

// RateNote is shown next to rate-phrased categories.
const RateNote = "Note: rates are fixed tables, not live quotes. Override them in the workspace tables dir."

// Note returns RateNote for rate-phrased categories and "" otherwise.
func (c Category) Note() string {
	if c.Phrasing == PhrasingRate {
		return RateNote
	}
	return ""
}

// IsAffine reports whether the category converts through affine formulas.
func (c Category) IsAffine() bool {
	return len(c.Units) > 0 && c.Units[0].Def.IsAffine()
}

func (c Category) clone() Category {
	out := c
	out.Units = make([]Unit, len(c.Units))
	copy(out.Units, c.Units)
	return out
}
