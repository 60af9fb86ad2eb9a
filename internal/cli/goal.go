package cli

import (
	"github.com/bizdesk/backend/internal/models"
	"github.com/bizdesk/backend/internal/types"
	"github.com/spf13/cobra"
)

func (a *app) goalCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "goal MONTH AMOUNT",
		Short: "Set the income goal for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := types.ParseMonth(args[0])
			if err != nil {
				return err
			}

			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}

			goal, err := a.ledger.SetGoal(cmd.Context(), models.MonthlyGoal{Month: month, Amount: amount, Note: note})
			if err != nil {
				return err
			}

			a.line("Goal for %s: %s", goal.Month, a.money(goal.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "note for the goal")
	return cmd
}
