package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitix/internal/infra/fsworkspace"
	"github.com/aalvaropc/unitix/internal/infra/workspacefinder"
	"github.com/aalvaropc/unitix/internal/ui/tui"
	"github.com/aalvaropc/unitix/internal/usecase"
)

type rootOptions struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "unitix",
		Short:        "unitix: unit conversion with formulas, in the terminal",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cleanup, err := openApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			deps := tui.Deps{
				Units:                app.units,
				Convert:              usecase.NewConvertUnit(app.units, usecase.WithLogger(app.log)),
				Config:               app.cfg,
				WorkspaceRoot:        app.root,
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               app.log,
				Debug:                opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .unitix/logs/unitix.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(opts),
		categoriesCmd(opts),
		unitsCmd(opts),
		formulaCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
