package cmd

import (
	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// printSeparator prints a green separator line to the console.
// It ensures consistency in visual separation across the application.
func printSeparator() {
	ui.Separator()
}

type uiRunner struct {
	app    *app.App
	fs     afero.Fs
	filter string
}

func NewUICmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Interactive session",
		Long: `Start an interactive session: the transaction list and summary are
redrawn after every change until you quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &uiRunner{
				app:    application,
				fs:     afero.NewOsFs(),
				filter: application.Service.Config.Defaults.Filter,
			}
			return runner.Run()
		},
	}
}

func (r *uiRunner) Run() error {
	l := r.app.Service.Ledger

	unsubscribe := l.Subscribe(func(ledger.Event) {
		r.render()
	})
	defer unsubscribe()

	r.render()

	for {
		choice, err := prompts.PromptMainMenu()
		if err != nil {
			return err
		}

		switch choice {
		case prompts.MenuAdd:
			err = (&addRunner{app: r.app, flags: &addFlags{}}).interactive()
		case prompts.MenuEdit:
			err = r.withSelectedID(func(id int64) error {
				return transaction.EditInteractive(r.app, id)
			})
		case prompts.MenuDelete:
			err = r.withSelectedID(func(id int64) error {
				return transaction.DeleteWithConfirm(r.app, id, false)
			})
		case prompts.MenuFilter:
			r.filter, err = prompts.PromptCategoryFilter(r.app.Service.FilterOptions(), r.filter)
			if err == nil {
				r.render()
			}
		case prompts.MenuSummary:
			err = views.RenderSummary(r.app.Service.Summary(), r.app.Service.Config.Defaults.Currency)
		case prompts.MenuExport:
			var path string
			path, err = prompts.PromptInput("Export to:", "", nil)
			if err == nil {
				err = (&exportRunner{app: r.app, fs: r.fs}).Run(path)
			}
		case prompts.MenuImport:
			var path string
			path, err = prompts.PromptInput("Import from:", "", nil)
			if err == nil {
				err = (&importRunner{app: r.app, fs: r.fs, flags: &importFlags{}}).Run(path)
			}
		case prompts.MenuQuit:
			return nil
		}

		if err != nil {
			if errhandler.IsCancelled(err) {
				return err
			}
			pterm.Error.Println(capitalize(err.Error()))
		}
	}
}

func (r *uiRunner) render() {
	svc := r.app.Service
	currency := svc.Config.Defaults.Currency

	items := views.ToListItems(svc.View(r.filter, "", 0), currency)
	if err := views.NewTransactionListView().Render(items, r.filter); err != nil {
		pterm.Error.Printf("Failed to render transactions: %v\n", err)
	}
	if err := views.RenderSummary(svc.Summary(), currency); err != nil {
		pterm.Error.Printf("Failed to render summary: %v\n", err)
	}
	printSeparator()
}

func (r *uiRunner) withSelectedID(fn func(id int64) error) error {
	raw, err := prompts.PromptInput("Transaction ID:", "", nil)
	if err != nil {
		return err
	}

	id, err := transaction.ParseID(raw)
	if err != nil {
		pterm.Error.Println(err)
		return nil
	}
	return fn(id)
}
