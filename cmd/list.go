package cmd

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Category string
	Search   string
	Limit    int
}

type listRunner struct {
	app   *app.App
	flags *listFlags
	cmd   *cobra.Command
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions",
		Long: `List transactions, most recent first.

Use --category to show a single category ("all" shows everything) and
--search to fuzzy-match descriptions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "Filter transactions by category (default from config)")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Fuzzy search in descriptions")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum number of transactions to display (default from config)")

	return cmd
}

func (r *listRunner) Run() error {
	defaults := r.app.Service.Config.Defaults

	filter := r.flags.Category
	if !r.cmd.Flags().Changed("category") {
		filter = defaults.Filter
	}
	if filter != service.FilterAll {
		if _, ok := model.CategoryType(filter); !ok {
			return fmt.Errorf("unknown category: %s", filter)
		}
	}

	limit := r.flags.Limit
	if !r.cmd.Flags().Changed("limit") {
		limit = defaults.Limit
	}

	txs := r.app.Service.View(filter, r.flags.Search, limit)
	if r.flags.Search != "" {
		pterm.Info.Printf("Matching %q\n", r.flags.Search)
	}

	items := views.ToListItems(txs, defaults.Currency)
	return views.NewTransactionListView().Render(items, filter)
}
