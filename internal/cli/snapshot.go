package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bizdesk/backend/internal/ledger"
	"github.com/bizdesk/backend/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export all records as JSON",
		Long:  "Export all records as JSON to FILE, or to standard output if no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.ledger.Export(cmd.Context())
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err = fmt.Fprintln(a.out, string(data))
				return err
			}

			return os.WriteFile(args[0], data, 0o600)
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import records from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var snapshot models.Snapshot
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("%s is not a valid export: %w", args[0], err)
			}

			if err := a.ledger.Import(cmd.Context(), snapshot, replace); err != nil {
				return err
			}

			a.line("Imported %d tasks, %d incomes, %d shifts, %d credits and %d goals",
				len(snapshot.Tasks), len(snapshot.Incomes), len(snapshot.ExtraWorks), len(snapshot.Credits), len(snapshot.Goals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "delete all existing records before the import")
	return cmd
}

func (a *app) cleanupCmd() *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Permanently delete all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ledger.Cleanup(cmd.Context(), confirm); err != nil {
				return err
			}

			a.line("All records deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&confirm, "confirm", "", fmt.Sprintf("must be %q", ledger.CleanupConfirmation))
	return cmd
}
