package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitix/internal/infra/fsworkspace"
	"github.com/aalvaropc/unitix/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a unitix workspace (unitix.yaml, tables/, .unitix/)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(path)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to initialize (defaults to the current directory)")
	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing workspace files")
	return c
}
