package ports

import "github.com/aalvaropc/unitix/internal/domain"

// UnitCatalog is a read-only view of the unit tables (implemented by *domain.Registry).
type UnitCatalog interface {
	ListCategories() []string
	ListUnits(category string) ([]string, error)
	Category(name string) (domain.Category, error)
	Definition(category, unit string) (domain.UnitDefinition, error)
}

var _ UnitCatalog = (*domain.Registry)(nil)
