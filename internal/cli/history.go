package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newHistoryCmd(o *options) *cobra.Command {
	var (
		limit  int
		offset int
		userID string
		since  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := storage.HistoryQuery{
				UserID:        userID,
				OffsetRequest: pagination.OffsetRequest{Limit: limit, Offset: offset},
			}
			if since != "" {
				t, err := time.Parse(time.RFC3339Nano, since)
				if err != nil {
					return fmt.Errorf("invalid --since, use RFC3339: %w", err)
				}
				q.Since = &t
			}

			store, err := o.openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer func() { _ = store.Close() }()

			page, err := store.List(cmd.Context(), q)
			if err != nil {
				return err
			}

			renderHistory(cmd.OutOrStdout(), page)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", pagination.PageDefaultSize, "page size (max 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")
	cmd.Flags().StringVar(&userID, "user", "", "only this user's calculations")
	cmd.Flags().StringVar(&since, "since", "", "only calculations after this RFC3339 time")

	return cmd
}

func renderHistory(w io.Writer, page *storage.HistoryPage) {
	if len(page.Items) == 0 {
		_, _ = fmt.Fprintln(w, "(no calculations)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Timestamp", "Expression", "Result", "User", "ID"})
	for _, c := range page.Items {
		t.AppendRow(table.Row{
			c.Timestamp.UTC().Format(time.RFC3339),
			c.Expression,
			formatNumber(c.Result),
			c.Owner(),
			c.ID.String(),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	t.Render()

	more := ""
	if page.HasMore {
		more = ", more available"
	}
	_, _ = fmt.Fprintf(w, "(%d of %d%s)\n", len(page.Items), page.Total, more)
}
