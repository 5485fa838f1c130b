package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"

	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	ephemeral bool
	cfg       *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, cleanup := newRootCmd(migrations)
	err := rootCmd.Execute()
	cleanup()

	if err != nil {
		if errhandler.IsCancelled(err) {
			errhandler.HandleError(err)
		}

		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The returned func releases the store
// opened by the command that ran, if any.
func newRootCmd(migrations fs.FS) (*cobra.Command, func()) {
	application := &app.App{}
	v := viper.New()
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "tally is a CLI/TUI based personal finance tracker",
		Long:          `tally records income and expenses, shows totals and a category breakdown, and imports/exports the ledger as JSON.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}

			built, done, err := app.NewApp(cfg, migrations, app.Options{Ephemeral: ephemeral})
			if err != nil {
				return err
			}
			*application = *built
			cleanup = done
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the ledger in memory only (nothing is saved)")

	rootCmd.AddCommand(transaction.NewTransactionCmd(application))

	rootCmd.AddCommand(NewAddCmd(application))
	rootCmd.AddCommand(NewListCmd(application))
	rootCmd.AddCommand(NewSummaryCmd(application))
	rootCmd.AddCommand(NewExportCmd(application))
	rootCmd.AddCommand(NewImportCmd(application))
	rootCmd.AddCommand(NewCategoriesCmd())
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewUICmd(application))

	return rootCmd, func() {
		if cleanup != nil {
			cleanup()
		}
	}
}

func initConfig(v *viper.Viper) error {
	appDir, err := app.AppDataDir()
	if err != nil {
		return fmt.Errorf("error getting app dir: %w", err)
	}

	config.SetDefaults(v)

	if cfgFile == "" {
		if err := createDefaultConfig(v, appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	cfg, err = config.Load(v, cfgFile, appDir)
	if err != nil {
		return err
	}

	return nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
