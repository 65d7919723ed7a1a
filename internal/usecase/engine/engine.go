// Package engine converts values between units of one category and explains the
// formula used. Every function is pure; an Engine can be shared between goroutines.
package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
)

// Unchanged is the formula text for a unit converted to itself.
const Unchanged = "value remains the same"

type Engine struct {
	units ports.UnitCatalog
}

func New(units ports.UnitCatalog) *Engine {
	return &Engine{units: units}
}

// Convert converts value from one unit to another within category.
func (e *Engine) Convert(value float64, from, to, category string) (float64, error) {
	fromDef, toDef, err := e.pair(category, from, to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return convert(value, fromDef, toDef)
}

// ConvertInput parses raw user text and converts it. Text that is not a finite
// number yields an Invalid outcome with a nil error.
func (e *Engine) ConvertInput(raw, from, to, category string) (domain.Outcome, error) {
	if _, _, err := e.pair(category, from, to); err != nil {
		return domain.Outcome{}, err
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Outcome{Status: domain.OutcomeEmpty}, nil
	}

	v, ok := ParseValue(s)
	if !ok {
		return domain.Outcome{Status: domain.OutcomeInvalid}, nil
	}

	out, err := e.Convert(v, from, to, category)
	if err != nil {
		return domain.Outcome{}, err
	}
	return domain.Outcome{Status: domain.OutcomeOK, Value: out}, nil
}

// ParseValue parses a finite float. NaN, ±Inf and out-of-range values are rejected.
func ParseValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (e *Engine) pair(category, from, to string) (domain.UnitDefinition, domain.UnitDefinition, error) {
	fromDef, err := e.units.Definition(category, from)
	if err != nil {
		return domain.UnitDefinition{}, domain.UnitDefinition{}, err
	}
	toDef, err := e.units.Definition(category, to)
	if err != nil {
		return domain.UnitDefinition{}, domain.UnitDefinition{}, err
	}
	return fromDef, toDef, nil
}

func convert(value float64, fromDef, toDef domain.UnitDefinition) (float64, error) {
	switch {
	case fromDef.IsAffine() && toDef.IsAffine():
		if fromDef.Scale == 0 {
			return 0, divisionByZero("affine scale")
		}
		return toDef.FromBase(fromDef.ToBase(value)), nil

	case fromDef.IsInverse() && toDef.IsInverse():
		// Two reciprocal units are proportional to each other.
		return divide(value*toDef.Base, fromDef.Base)

	case fromDef.IsInverse():
		q, err := divide(value, fromDef.Base)
		if err != nil {
			return 0, err
		}
		return divide(toDef.Base, q)

	case toDef.IsInverse():
		return divide(toDef.Base, value*fromDef.Base)

	default:
		return divide(value*fromDef.Base, toDef.Base)
	}
}

func divide(num, den float64) (float64, error) {
	if den == 0 {
		return 0, divisionByZero(fmt.Sprintf("%g / 0", num))
	}
	return num / den, nil
}

func divisionByZero(what string) error {
	return &domain.OpError{
		Op:   "engine.convert",
		Kind: domain.KindDivisionByZero,
		Err:  fmt.Errorf("%s: %w", what, domain.ErrDivisionByZero),
	}
}
