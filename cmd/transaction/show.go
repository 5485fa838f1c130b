package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				app: application,
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	txID, err := ParseID(args[0])
	if err != nil {
		return err
	}

	tx, ok := r.app.Service.Ledger.Get(txID)
	if !ok {
		pterm.Warning.Printf("Transaction #%d not found\n", txID)
		return nil
	}

	return views.RenderTransactionDetail(tx, r.app.Service.Config.Defaults.Currency)
}
