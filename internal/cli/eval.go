package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/spf13/cobra"
)

func newEvalCmd(o *options) *cobra.Command {
	var (
		save   bool
		userID string
	)

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one or more expressions",
		Example: `  calc eval "2 + 3 * 4"
  calc eval "1/3" "(2+2)*-1" --save --user alice`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store storage.Store
			if save {
				s, err := o.openStore(cmd.Context())
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer func() { _ = s.Close() }()
				store = s
			}

			engine := o.engine()
			failed := false
			for _, raw := range args {
				expr := strings.TrimSpace(raw)
				v, err := engine.Evaluate(expr)
				if err != nil {
					failed = true
					printEvalError(cmd.ErrOrStderr(), expr, err)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", expr, formatNumber(v))

				if store != nil {
					if err := store.Save(cmd.Context(), domain.NewCalculation(expr, v, userID)); err != nil {
						return fmt.Errorf("save calculation: %w", err)
					}
				}
			}

			if failed {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store successful results in the configured history store")
	cmd.Flags().StringVar(&userID, "user", "", "user id recorded with saved results")

	return cmd
}

func printEvalError(w io.Writer, expr string, err error) {
	_, _ = fmt.Fprintf(w, "%s: %s [%s]\n", expr, err, calc.KindOf(err))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
