package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bizdesk/backend/internal/amortization"
	"github.com/bizdesk/backend/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type creditFlags struct {
	rate       string
	term       int
	kind       string
	start      string
	paymentDay int
}

func (f *creditFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rate, "rate", "", "annual interest rate in percent")
	cmd.Flags().IntVar(&f.term, "term", 0, "term in months")
	cmd.Flags().StringVar(&f.kind, "type", "", "schedule type, annuity or differentiated")
	cmd.Flags().StringVar(&f.start, "start", "", "start date as YYYY-MM-DD")
	cmd.Flags().IntVar(&f.paymentDay, "payment-day", 0, "day of month payments are due (default day of the start date)")
}

// apply overwrites the parameters with all flags that were set.
func (f *creditFlags) apply(cmd *cobra.Command, p *amortization.Params) error {
	if cmd.Flags().Changed("rate") {
		rate, err := parseAmount("rate", f.rate)
		if err != nil {
			return err
		}
		p.AnnualRatePercent = rate
	}

	if cmd.Flags().Changed("term") {
		p.TermMonths = f.term
	}

	if cmd.Flags().Changed("type") {
		p.Type = models.ScheduleType(f.kind)
	}

	if cmd.Flags().Changed("start") {
		start, err := parseOptionalDate(f.start)
		if err != nil {
			return err
		}
		p.StartDate = start
	}

	if cmd.Flags().Changed("payment-day") {
		p.PaymentDay = f.paymentDay
	}

	return nil
}

func (a *app) creditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Manage credits and their repayment schedules",
	}

	cmd.AddCommand(a.creditCreateCmd(), a.creditPayCmd(), a.creditRebuildCmd())
	return cmd
}

func (a *app) creditCreateCmd() *cobra.Command {
	var (
		name   string
		amount string
		flags  creditFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a credit and generate its schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := parseAmount("amount", amount)
			if err != nil {
				return err
			}

			p := amortization.Params{Amount: principal, Type: models.ScheduleAnnuity}
			if err := flags.apply(cmd, &p); err != nil {
				return err
			}

			credit, err := a.ledger.CreateCredit(cmd.Context(), models.Credit{
				Name:                      name,
				Amount:                    p.Amount,
				InterestRatePercentAnnual: p.AnnualRatePercent,
				TermMonths:                p.TermMonths,
				ScheduleType:              p.Type,
				StartDate:                 p.StartDate,
				PaymentDay:                p.PaymentDay,
			})
			if err != nil {
				return err
			}

			a.line("Created credit %s", credit.ID)
			return a.printSchedule(credit, time.Now())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the credit")
	cmd.Flags().StringVar(&amount, "amount", "", "principal of the credit")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("term")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *app) creditPayCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "pay CREDIT-ID MONTH",
		Short: "Mark a month of a credit's schedule as paid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month %q is not a number", args[1])
			}

			paid, err := parseOptionalAmount("amount", amount)
			if err != nil {
				return err
			}

			credit, err := a.ledger.Credit(cmd.Context(), id)
			if err != nil {
				return err
			}

			itemID := uuid.Nil
			for _, item := range credit.Schedule {
				if item.MonthNumber == month {
					itemID = item.ID
				}
			}

			credit, err = a.ledger.PayScheduleItem(cmd.Context(), id, itemID, paid, time.Now())
			if err != nil {
				return err
			}

			a.line("Paid month %d, remaining balance %s", month, a.money(credit.CurrentBalance))
			if credit.Status == models.CreditClosed {
				a.line("The credit is fully repaid")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount that was paid (default the planned payment)")
	return cmd
}

func (a *app) creditRebuildCmd() *cobra.Command {
	var flags creditFlags

	cmd := &cobra.Command{
		Use:   "rebuild CREDIT-ID",
		Short: "Regenerate the unpaid part of a schedule with new loan parameters",
		Long: `Regenerate the schedule of a credit from its current balance.

Months that are already paid are kept. All parameters that are not given
as flags stay as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			credit, err := a.ledger.Credit(cmd.Context(), id)
			if err != nil {
				return err
			}

			p := amortization.ParamsFor(credit)
			if err := flags.apply(cmd, &p); err != nil {
				return err
			}

			credit, err = a.ledger.RebuildCredit(cmd.Context(), id, p)
			if err != nil {
				return err
			}

			return a.printSchedule(credit, time.Now())
		},
	}

	flags.register(cmd)
	return cmd
}
