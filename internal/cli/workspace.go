package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/infra/builtin"
	"github.com/aalvaropc/unitix/internal/infra/logger"
	"github.com/aalvaropc/unitix/internal/infra/workspacefinder"
	"github.com/aalvaropc/unitix/internal/infra/yamltables"
	"github.com/aalvaropc/unitix/internal/usecase"
)

type appCtx struct {
	root  string // "" when running outside a workspace
	cfg   domain.Config
	units *domain.Registry
	log   *slog.Logger
}

// openApp resolves the workspace, starts logging and builds the session registry.
// The returned cleanup closes the log file.
func openApp(opts *rootOptions) (*appCtx, func(), error) {
	root, cfg, err := resolveWorkspace(opts.workspace)
	if err != nil {
		return nil, nil, err
	}

	closeLog, lerr := logger.Setup(logger.Config{Root: root, Debug: opts.debug})
	cleanup := func() {
		if closeLog != nil {
			_ = closeLog()
		}
	}
	log := logger.L()
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", lerr)
	}

	base, err := builtin.Registry()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	loader := yamltables.NewLoader(yamltables.WithTablesDir(cfg.Paths.TablesDir))
	reg, err := usecase.NewLoadUnits(base, loader, usecase.WithLoadLogger(log)).Execute(root)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &appCtx{root: root, cfg: cfg, units: reg, log: log}, cleanup, nil
}

// resolveWorkspace honors an explicit --workspace, otherwise walks up from the cwd.
// Outside any workspace the builtin defaults apply.
func resolveWorkspace(workspaceFlag string) (string, domain.Config, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		root, err := filepath.Abs(w)
		if err != nil {
			return "", domain.DefaultConfig(), fmt.Errorf("invalid workspace path: %w", err)
		}
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return "", cfg, fmt.Errorf("no %s in %q (tip: run `unitix init`): %w", workspacefinder.ConfigFile, root, err)
			}
			return "", cfg, err
		}
		return root, cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", domain.DefaultConfig(), fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().LoadOrDefault(wd)
}

// resolveCategory falls back to the configured default category.
func (a *appCtx) resolveCategory(flag string) string {
	if c := strings.TrimSpace(flag); c != "" {
		return c
	}
	return a.cfg.Defaults.Category
}
