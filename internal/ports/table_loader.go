package ports

import "github.com/aalvaropc/unitix/internal/domain"

// TableLoader reads extra unit tables (e.g., from a workspace tables dir).
type TableLoader interface {
	LoadTables(root string) ([]domain.Category, error)
}
