package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) reportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the income, taxes, expenses and profit of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMonth(month)
			if err != nil {
				return err
			}

			report, err := a.ledger.MonthReport(cmd.Context(), m, time.Now())
			if err != nil {
				return err
			}

			s := report.Month
			w := a.table()
			type entry struct{ label, value string }
			rows := []entry{
				{"Income from tasks", a.money(s.IncomeFromSites)},
				{"Additional income", a.money(s.AdditionalIncome)},
				{"Extra work", a.money(s.ExtraWorkIncome)},
				{"Total income", a.money(s.TotalIncome)},
				{"Taxes", a.money(s.TotalTaxes)},
				{"Expenses", a.money(s.TotalExpenses)},
				{"Profit", a.money(s.Profit)},
				{"Average check", a.money(s.AverageCheck)},
				{"Expected", a.money(s.Expected)},
				{"Loan payments due", a.money(s.LoanPayments)},
				{"Loan payments made", a.money(s.LoanPaid)},
			}
			if s.Goal.Valid {
				rows = append(rows,
					entry{"Goal", a.money(s.Goal.Decimal)},
					entry{"Goal progress", a.printer.Sprintf("%.2f%%", s.GoalProgress.InexactFloat64())},
				)
			}

			a.line("Report for %s", s.Month)
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.label, r.value)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			days := report.Days()
			if len(days) == 0 {
				return nil
			}

			fmt.Fprintln(a.out)
			fmt.Fprintln(w, "Date\tIncome\tTaxes\tExpenses\tProfit\t")
			for _, d := range days {
				marker := ""
				if d.HasAdditionalIncome {
					marker = "+"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", d.Date, a.money(d.Income), a.money(d.Taxes), a.money(d.Expenses), a.money(d.Profit), marker)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to report as YYYY-MM (default current month)")
	return cmd
}
