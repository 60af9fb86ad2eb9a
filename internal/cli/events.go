package cli

import (
	"fmt"

	"github.com/bizdesk/backend/internal/types"
	"github.com/spf13/cobra"
)

func (a *app) eventsCmd() *cobra.Command {
	var (
		match string
		month string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the income and expense events derived from tasks",
		Long: `List the dated income and expense events of tasks.

Tasks can be filtered by title with a glob pattern, e.g. --match "Website*".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter types.Month
			if month != "" {
				m, err := types.ParseMonth(month)
				if err != nil {
					return err
				}
				filter = m
			}

			result, err := a.ledger.TaskEvents(cmd.Context(), match)
			if err != nil {
				return err
			}

			w := a.table()
			fmt.Fprintln(w, "Date\tKind\tSource\tAmount\tTax\tNet\t")
			for _, e := range result {
				if !filter.IsZero() && !filter.Contains(e.Date) {
					continue
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", e.Date, e.Kind, e.Source, a.money(e.Amount), a.money(e.Tax()), a.money(e.Net()))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "glob pattern for task titles")
	cmd.Flags().StringVar(&month, "month", "", "only show events in this month (YYYY-MM)")
	return cmd
}
