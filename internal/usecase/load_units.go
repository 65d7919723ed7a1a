package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
)

// LoadUnits builds the registry used for a session: the builtin tables
// overridden by whatever the workspace tables dir defines.
type LoadUnits struct {
	base   *domain.Registry
	tables ports.TableLoader
	log    *slog.Logger
}

type LoadUnitsOption func(*LoadUnits)

func WithLoadLogger(l *slog.Logger) LoadUnitsOption {
	return func(uc *LoadUnits) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewLoadUnits(base *domain.Registry, tables ports.TableLoader, opts ...LoadUnitsOption) *LoadUnits {
	uc := &LoadUnits{
		base:   base,
		tables: tables,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the merged registry. An empty root (no workspace) yields the base.
func (uc *LoadUnits) Execute(root string) (*domain.Registry, error) {
	if uc.base == nil {
		return nil, &domain.OpError{
			Op:   "usecase.loadunits",
			Kind: domain.KindInvalidRegistry,
			Err:  domain.ErrInvalidRegistry,
		}
	}
	if root == "" || uc.tables == nil {
		uc.log.Info("registry.loaded",
			"categories", len(uc.base.ListCategories()),
			"overrides", 0,
		)
		return uc.base, nil
	}

	cats, err := uc.tables.LoadTables(root)
	if err != nil {
		uc.log.Error("tables.load.failed", "root", root, "err", err)
		return nil, err
	}

	reg, err := uc.base.Merge(cats...)
	if err != nil {
		uc.log.Error("tables.load.failed", "root", root, "err", err)
		return nil, err
	}

	uc.log.Info("registry.loaded",
		"root", root,
		"categories", len(reg.ListCategories()),
		"overrides", len(cats),
	)
	return reg, nil
}
