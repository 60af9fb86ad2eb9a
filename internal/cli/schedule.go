package cli

import (
	"fmt"
	"time"

	"github.com/bizdesk/backend/internal/amortization"
	"github.com/bizdesk/backend/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [CREDIT-ID]",
		Short: "List all credits or show the schedule of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				credit, err := a.ledger.Credit(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.printSchedule(credit, time.Now())
			}

			credits, err := a.ledger.Credits(cmd.Context())
			if err != nil {
				return err
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tName\tAmount\tBalance\tStatus\tNext payment\t")
			for _, c := range credits {
				next := "-"
				if item, ok := amortization.NextPayment(c); ok {
					next = fmt.Sprintf("%s %s", item.PaymentDate, a.money(item.PlannedPayment))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", c.ID, c.Name, a.money(c.Amount), a.money(c.CurrentBalance), c.Status, next)
			}
			return w.Flush()
		},
	}
}

func (a *app) printSchedule(credit models.Credit, now time.Time) error {
	overdue := make(map[int]bool)
	for _, item := range amortization.Overdue(credit, now) {
		overdue[item.MonthNumber] = true
	}

	a.line("%s (%s, %s%%, %d months): balance %s",
		credit.Name, credit.ScheduleType, credit.InterestRatePercentAnnual, credit.TermMonths, a.money(credit.CurrentBalance))

	w := a.table()
	fmt.Fprintln(w, "Month\tDate\tPayment\tInterest\tPrincipal\tBalance\tStatus\t")
	for _, item := range credit.Schedule {
		status := ""
		switch {
		case item.Paid:
			status = "paid " + a.money(item.PaidAmount.Decimal)
		case overdue[item.MonthNumber]:
			status = "overdue"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			item.MonthNumber, item.PaymentDate,
			a.money(item.PlannedPayment), a.money(item.InterestPart), a.money(item.PrincipalPart), a.money(item.RemainingBalance),
			status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	a.line("Total interest: %s", a.money(amortization.TotalInterest(credit.Schedule)))
	return nil
}
