package cmd

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Desc     string
	Amount   string
	Date     string
	Category string
	Type     string
}

type addRunner struct {
	app   *app.App
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(application *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add a new income or expense transaction.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode
	tally add

	# Quick mode with flags
	tally add --desc "Buy Coffee" --amount 3.50 --category Food

	# Income (date defaults to today)
	tally add -d "Paycheck" -a 2000 -g Salary -t income --date 2024-01-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "Transaction category (see 'tally categories')")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income or expense (inferred from the category when omitted)")

	return cmd
}

func (r *addRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("desc") || r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("category")

	if hasFlags {
		return r.flagsMode()
	}
	return r.interactive()
}

func (r *addRunner) flagsMode() error {
	c := model.Candidate{
		Description: r.flags.Desc,
		Amount:      r.flags.Amount,
		Date:        defaultDate(r.flags.Date),
		Category:    r.flags.Category,
		Type:        inferType(r.flags.Type, r.flags.Category),
	}
	return r.add(c)
}

func (r *addRunner) interactive() error {
	c, err := prompts.PromptTransaction(model.Candidate{})
	if err != nil {
		return err
	}
	return r.add(c)
}

func (r *addRunner) add(c model.Candidate) error {
	tx, err := r.app.Service.Ledger.Add(c)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %d)\n", tx.ID)
	if err := views.RenderTransactionDetail(tx, r.app.Service.Config.Defaults.Currency); err != nil {
		return err
	}
	printSeparator()
	return nil
}
