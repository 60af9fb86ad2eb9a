// Package cli implements the bizdesk command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bizdesk/backend/internal/ledger"
	"github.com/bizdesk/backend/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type app struct {
	config  *viper.Viper
	ledger  ledger.Ledger
	printer *message.Printer
	out     io.Writer
}

// NewRootCmd returns the bizdesk command with all subcommands.
//
// Configuration is read from flags and from environment variables with
// the BIZDESK_ prefix, in that order.
func NewRootCmd() *cobra.Command {
	a := &app{config: viper.New()}

	root := &cobra.Command{
		Use:               "bizdesk",
		Short:             "Income, expense and credit reports for freelance work",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().String("db", "", "path of the SQLite database (default \"data/bizdesk.db\")")
	root.PersistentFlags().String("locale", "", "locale used to format numbers (default \"en\")")
	_ = a.config.BindPFlag("db", root.PersistentFlags().Lookup("db"))
	_ = a.config.BindPFlag("locale", root.PersistentFlags().Lookup("locale"))

	root.AddCommand(
		a.reportCmd(),
		a.scheduleCmd(),
		a.creditCmd(),
		a.eventsCmd(),
		a.shiftsCmd(),
		a.goalCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.cleanupCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.config.SetEnvPrefix("BIZDESK")
	a.config.AutomaticEnv()
	a.config.SetDefault("db", "data/bizdesk.db")
	a.config.SetDefault("locale", "en")

	tag, err := language.Parse(a.config.GetString("locale"))
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", a.config.GetString("locale"), err)
	}
	a.printer = message.NewPrinter(tag)
	a.out = cmd.OutOrStdout()

	path := a.config.GetString("db")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating the data directory failed: %w", err)
	}

	if err := models.Connect(path); err != nil {
		return err
	}

	a.ledger = ledger.New(models.DB)
	return nil
}

func (a *app) close() error {
	if a.ledger.DB == nil {
		return nil
	}

	sqlDB, err := a.ledger.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
