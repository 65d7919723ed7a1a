package tui

import (
	"log/slog"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
	"github.com/aalvaropc/unitix/internal/usecase"
)

type Deps struct {
	Units   ports.UnitCatalog
	Convert *usecase.ConvertUnit // built from Units when nil
	Config  domain.Config

	WorkspaceRoot        string
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
