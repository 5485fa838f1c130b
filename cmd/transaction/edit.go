package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Desc     string
	Amount   string
	Date     string
	Category string
	Type     string
}

type EditCommandRunner struct {
	app   *app.App
	flags *editFlags
	cmd   *cobra.Command
}

func NewEditCmd(application *app.App) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction. Every field is replaced; the ID stays the same.

With flags only the given fields change, the rest keep their current values.
Without flags an interactive form is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVar(&flags.Date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "New category")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New type: income or expense")

	return cmd
}

func (r *EditCommandRunner) Run(args []string) error {
	txID, err := ParseID(args[0])
	if err != nil {
		return err
	}

	f := r.cmd.Flags()
	if !f.Changed("desc") && !f.Changed("amount") && !f.Changed("date") &&
		!f.Changed("category") && !f.Changed("type") {
		return EditInteractive(r.app, txID)
	}

	current, ok := r.app.Service.Ledger.Get(txID)
	if !ok {
		pterm.Warning.Printf("Transaction #%d not found, nothing changed\n", txID)
		return nil
	}

	c := model.CandidateFrom(current)
	if f.Changed("desc") {
		c.Description = r.flags.Desc
	}
	if f.Changed("amount") {
		c.Amount = r.flags.Amount
	}
	if f.Changed("date") {
		c.Date = r.flags.Date
	}
	if f.Changed("category") {
		c.Category = r.flags.Category
	}
	if f.Changed("type") {
		c.Type = r.flags.Type
	}

	return applyUpdate(r.app, txID, c)
}

// EditInteractive shows the current transaction and prompts for new values.
func EditInteractive(application *app.App, txID int64) error {
	current, ok := application.Service.Ledger.Get(txID)
	if !ok {
		pterm.Warning.Printf("Transaction #%d not found, nothing changed\n", txID)
		return nil
	}

	pterm.DefaultSection.Printf("Editing Transaction #%d", txID)
	if err := views.RenderTransactionDetail(current, application.Service.Config.Defaults.Currency); err != nil {
		return err
	}

	c, err := prompts.PromptTransaction(model.CandidateFrom(current))
	if err != nil {
		return err
	}

	return applyUpdate(application, txID, c)
}

func applyUpdate(application *app.App, txID int64, c model.Candidate) error {
	found, err := application.Service.Ledger.Update(txID, c)
	if err != nil {
		return err
	}
	if !found {
		pterm.Warning.Printf("Transaction #%d not found, nothing changed\n", txID)
		return nil
	}

	pterm.Success.Printf("Transaction #%d updated successfully\n", txID)
	ui.Separator()
	return nil
}
