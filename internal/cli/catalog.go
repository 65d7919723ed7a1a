package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitix/internal/usecase/engine"
)

func categoriesCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "categories",
		Short: "Inspect conversion categories",
	}
	c.AddCommand(categoriesListCmd(opts))
	return c
}

func categoriesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := openApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			w := cmd.OutOrStdout()
			for _, name := range app.units.ListCategories() {
				cat, err := app.units.Category(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "- %s  (%d units)\n", name, len(cat.Units))
			}
			return nil
		},
	}
}

func unitsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "units",
		Short: "Inspect units of a category",
	}
	c.AddCommand(unitsListCmd(opts))
	return c
}

func unitsListCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List units of a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := openApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := app.units.Category(app.resolveCategory(category))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Category: %s\n\n", cat.Name)
			for _, u := range cat.Units {
				fmt.Fprintf(w, "- %s  (%s)\n", u.Name, u.Def.Kind)
			}
			if note := cat.Note(); note != "" {
				fmt.Fprintf(w, "\n%s\n", note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (defaults to the workspace default category)")
	return cmd
}

func formulaCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "formula FROM TO",
		Short: "Explain how a value in FROM becomes a value in TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			text, err := engine.New(app.units).FormulaText(args[0], args[1], app.resolveCategory(category))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (defaults to the workspace default category)")
	return cmd
}
