package engine

import (
	"fmt"

	"github.com/aalvaropc/unitix/internal/domain"
)

type unitPair struct{ from, to string }

var temperatureFormulas = map[unitPair]string{
	{"Celsius", "Fahrenheit"}: "(°C x 9/5) + 32 = °F",
	{"Celsius", "Kelvin"}:     "°C + 273.15 = K",
	{"Fahrenheit", "Celsius"}: "(°F - 32) x 5/9 = °C",
	{"Fahrenheit", "Kelvin"}:  "(°F - 32) x 5/9 + 273.15 = K",
	{"Kelvin", "Celsius"}:     "K - 273.15 = °C",
	{"Kelvin", "Fahrenheit"}:  "(K - 273.15) x 9/5 + 32 = °F",
}

// FormulaText describes how a value in unit from becomes a value in unit to.
func (e *Engine) FormulaText(from, to, category string) (string, error) {
	cat, err := e.units.Category(category)
	if err != nil {
		return "", err
	}
	fromDef, toDef, err := e.pair(category, from, to)
	if err != nil {
		return "", err
	}

	if from == to {
		return Unchanged, nil
	}

	if cat.IsAffine() {
		if s, ok := temperatureFormulas[unitPair{from, to}]; ok {
			return s, nil
		}
		return affineFormula(fromDef, toDef), nil
	}

	if cat.Phrasing == domain.PhrasingRate {
		f, err := divide(toDef.Base, fromDef.Base)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("multiply the %s value by %s", from, sig(f, 6)), nil
	}

	// NOTE: the constant is asymmetric. inverse->linear uses toBase*fromBase while
	// linear->inverse uses toBase alone. Which one is intended is unknown; both are kept.
	switch {
	case fromDef.IsInverse() && !toDef.IsInverse():
		return fmt.Sprintf("divide %s by the value", sig(toDef.Base*fromDef.Base, 4)), nil
	case !fromDef.IsInverse() && toDef.IsInverse():
		return fmt.Sprintf("divide %s by the value", sig(toDef.Base, 4)), nil
	}

	factor, err := divide(toDef.Base, fromDef.Base)
	if err != nil {
		return "", err
	}
	// NOTE: factor >= 1 always reads "multiply by factor". A nested
	// "multiply by 1/factor when factor < 1" could never fire under this guard and was dropped.
	if factor >= 1 {
		return fmt.Sprintf("multiply the %s value by %s", from, sig(factor, 6)), nil
	}
	inv, err := divide(1, factor)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("divide the %s value by %s", from, sig(inv, 6)), nil
}

// affineFormula covers affine pairs without a hand-written formula (table-defined scales).
func affineFormula(fromDef, toDef domain.UnitDefinition) string {
	return fmt.Sprintf("((value - %s) / %s) x %s + %s",
		sig(fromDef.Offset, 6), sig(fromDef.Scale, 6),
		sig(toDef.Scale, 6), sig(toDef.Offset, 6),
	)
}

func sig(v float64, digits int) string {
	return fmt.Sprintf("%.*g", digits, v)
}
