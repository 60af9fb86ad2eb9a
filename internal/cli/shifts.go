package cli

import (
	"fmt"
	"strings"

	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/spf13/cobra"
)

func (a *app) shiftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "List extra work shifts and their payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			works, err := a.ledger.ExtraWorks(cmd.Context())
			if err != nil {
				return err
			}

			w := a.table()
			for _, work := range works {
				fmt.Fprintf(w, "%s\t%s\t%d days\t%s\t%s paid\t%s%%\t%s\t%s\t\n",
					work.ID, work.Title, len(work.WorkDates),
					a.money(work.TotalAmount), a.money(work.PaidAmount()), work.PaidPercent().StringFixed(0),
					work.PaymentStatus(), work.Mode())

				for _, p := range work.Payments {
					paid := "open"
					if p.Paid {
						paid = "paid"
					}
					fmt.Fprintf(w, "  %s\t%s\t\t%s\t%s\t\t\t\t\n", p.ID, p.Date, a.money(p.Amount), paid)
				}
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(a.shiftsAddCmd(), a.shiftsPayCmd())
	return cmd
}

func (a *app) shiftsAddCmd() *cobra.Command {
	var (
		title       string
		dates       []string
		dailyRate   string
		weekendRate string
		mode        string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new extra work shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			work := models.ExtraWork{
				Title:       title,
				PaymentMode: models.PaymentMode(mode),
			}

			for _, d := range dates {
				date, err := types.ParseDate(strings.TrimSpace(d))
				if err != nil {
					return err
				}
				work.WorkDates = append(work.WorkDates, date)
			}

			rate, err := parseAmount("daily rate", dailyRate)
			if err != nil {
				return err
			}
			work.DailyRate = rate

			work.WeekendRate, err = parseOptionalAmount("weekend rate", weekendRate)
			if err != nil {
				return err
			}

			dueDate, err := parseOptionalDate(due)
			if err != nil {
				return err
			}

			work, err = a.ledger.CreateExtraWork(cmd.Context(), work, dueDate)
			if err != nil {
				return err
			}

			a.line("Created shift %s with a total of %s in %d payments", work.ID, a.money(work.TotalAmount), len(work.Payments))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the shift")
	cmd.Flags().StringSliceVar(&dates, "dates", nil, "work dates as YYYY-MM-DD, comma separated")
	cmd.Flags().StringVar(&dailyRate, "daily-rate", "", "rate per work day")
	cmd.Flags().StringVar(&weekendRate, "weekend-rate", "", "rate for Saturdays and Sundays (default the daily rate)")
	cmd.Flags().StringVar(&mode, "mode", string(models.PaymentModeSingle), "payment mode: single, daily or manual")
	cmd.Flags().StringVar(&due, "due", "", "due date of the payments (default the last work date)")
	_ = cmd.MarkFlagRequired("dates")
	_ = cmd.MarkFlagRequired("daily-rate")

	return cmd
}

func (a *app) shiftsPayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "pay PAYMENT-ID",
		Short: "Mark a payment of a shift as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d, err := parseOptionalDate(date)
			if err != nil {
				return err
			}

			payment, err := a.ledger.PayExtraWork(cmd.Context(), id, d)
			if err != nil {
				return err
			}

			a.line("Paid %s on %s", a.money(payment.Amount), payment.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date the payment was received (default the planned date)")
	return cmd
}
