package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(application *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := ParseID(args[0])
			if err != nil {
				return err
			}
			return DeleteWithConfirm(application, txID, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// DeleteWithConfirm previews the transaction, asks for confirmation unless
// skipConfirm is set, then deletes it.
func DeleteWithConfirm(application *app.App, txID int64, skipConfirm bool) error {
	l := application.Service.Ledger
	currency := application.Service.Config.Defaults.Currency

	tx, ok := l.Get(txID)
	if !ok {
		pterm.Warning.Printf("Transaction #%d not found, nothing deleted\n", txID)
		return nil
	}

	if !skipConfirm {
		views.RenderTransactionDeletePreview(tx, currency)

		confirmation, err := ui.Confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	found, err := l.Delete(txID)
	if err != nil {
		return err
	}
	if !found {
		pterm.Warning.Printf("Transaction #%d not found, nothing deleted\n", txID)
		return nil
	}

	views.RenderTransactionDeleteSuccess(txID)
	return nil
}
