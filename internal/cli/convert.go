package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/usecase"
)

func convertCmd(opts *rootOptions) *cobra.Command {
	var category string
	var format string

	c := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units of a category",
		Example: `  unitix convert 1 Meter Foot -c Length
  unitix convert --format json 100 Celsius Fahrenheit -c Temperature
  unitix convert -c Temperature -- -40 Celsius Fahrenheit`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			app, cleanup, err := openApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecase.NewConvertUnit(app.units, usecase.WithLogger(app.log))
			conv, err := uc.Execute(app.resolveCategory(category), args[1], args[2], args[0])
			if err != nil {
				return err
			}

			if err := printConversion(cmd.OutOrStdout(), conv, format); err != nil {
				return err
			}

			if !conv.Outcome.OK() {
				return &domain.OpError{
					Op:   "cli.convert",
					Kind: domain.KindInvalidInput,
					Err:  fmt.Errorf("%w: %q", domain.ErrInvalidInput, conv.Input),
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&category, "category", "c", "", "Category (defaults to the workspace default category)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type conversionJSON struct {
	domain.Conversion
	Status domain.OutcomeStatus `json:"status"`
	Result *float64             `json:"result"`
}

func printConversion(w io.Writer, conv domain.Conversion, format string) error {
	switch format {
	case "json":
		payload := conversionJSON{Conversion: conv, Status: conv.Outcome.Status}
		if conv.Outcome.OK() {
			v := conv.Outcome.Value
			payload.Result = &v
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyConversion(w, conv)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyConversion(w io.Writer, conv domain.Conversion) {
	if conv.Outcome.OK() {
		fmt.Fprintf(w, "%s %s = %s %s\n", conv.Input, conv.From, conv.Outcome, conv.To)
	} else {
		// Empty input renders as Invalid input on the command line.
		fmt.Fprintln(w, "Invalid input")
	}
	fmt.Fprintf(w, "Formula: %s\n", conv.Formula)
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}
