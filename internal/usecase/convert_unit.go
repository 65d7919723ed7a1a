package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
	"github.com/aalvaropc/unitix/internal/usecase/engine"
)

type ConvertUnit struct {
	units  ports.UnitCatalog
	engine *engine.Engine
	log    *slog.Logger
}

type ConvertOption func(*ConvertUnit)

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertUnit) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvertUnit(units ports.UnitCatalog, opts ...ConvertOption) *ConvertUnit {
	uc := &ConvertUnit{
		units:  units,
		engine: engine.New(units),
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute converts raw user input and explains the formula.
// Invalid input is reported through Conversion.Outcome, not as an error.
func (uc *ConvertUnit) Execute(category, from, to, raw string) (domain.Conversion, error) {
	conv := domain.Conversion{
		Category: category,
		From:     from,
		To:       to,
		Input:    strings.TrimSpace(raw),
	}

	out, err := uc.engine.ConvertInput(raw, from, to, category)
	if err != nil {
		uc.logFailure(conv, err)
		return conv, err
	}
	conv.Outcome = out

	formula, err := uc.engine.FormulaText(from, to, category)
	if err != nil {
		uc.logFailure(conv, err)
		return conv, err
	}
	conv.Formula = formula

	switch out.Status {
	case domain.OutcomeInvalid:
		uc.log.Info("convert.invalid_input",
			"category", category,
			"from", from,
			"to", to,
			"input", conv.Input,
		)
	case domain.OutcomeOK:
		uc.log.Debug("convert.ok",
			"category", category,
			"from", from,
			"to", to,
			"input", conv.Input,
			"result", out.Value,
		)
	}

	return conv, nil
}

// Units lists the unit names of a category.
func (uc *ConvertUnit) Units(category string) ([]string, error) {
	return uc.units.ListUnits(category)
}

func (uc *ConvertUnit) Categories() []string {
	return uc.units.ListCategories()
}

func (uc *ConvertUnit) logFailure(conv domain.Conversion, err error) {
	// Lookup failures are caller bugs; division by zero points at table data.
	level := slog.LevelWarn
	if domain.IsKind(err, domain.KindDivisionByZero) {
		level = slog.LevelError
	}
	uc.log.Log(context.Background(), level, "convert.failed",
		"category", conv.Category,
		"from", conv.From,
		"to", conv.To,
		"input", conv.Input,
		"err", err,
	)
}
