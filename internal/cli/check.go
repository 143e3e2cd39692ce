package cli

import (
	"fmt"

	"github.com/DjordjeVuckovic/safe-calc/internal/suite"
	"github.com/spf13/cobra"
)

func newCheckCmd(o *options) *cobra.Command {
	var (
		workers int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "Run a YAML suite of expected results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q, expected table or json", format)
			}

			s, err := suite.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			results, err := suite.NewRunner(o.engine(), workers).Run(cmd.Context(), s)
			if err != nil {
				return err
			}

			report := suite.NewReport(s, results)
			if format == "json" {
				if err := suite.WriteJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				suite.WriteTable(cmd.OutOrStdout(), report)
			}

			if report.Summary.Failed > 0 {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel evaluations (default GOMAXPROCS)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")

	return cmd
}
