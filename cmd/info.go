package cmd

import (
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath := r.app.DBPath
	dbExists := false
	if dbPath == "" {
		dbPath = "(in memory)"
	} else if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBExists:        dbExists,
		SnapshotKey:     cfg.Storage.Key,
		Transactions:    r.app.Service.Ledger.Len(),
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
