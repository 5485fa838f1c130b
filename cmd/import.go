package cmd

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/snapshot"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type importFlags struct {
	Yes    bool
	Strict bool
}

type importRunner struct {
	app   *app.App
	fs    afero.Fs
	flags *importFlags
}

func NewImportCmd(application *app.App) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all transactions with an exported JSON file",
		Long: `Replace the whole ledger with the transactions in a JSON file produced by
'tally export'. You will be asked to confirm before anything is replaced.

By default rows are imported as they are; --strict validates every row and
rejects the file if any row is invalid.

Every element of the array must be a transaction object whose fields have the
exported types (numeric id and amount, text for the rest). Arrays of other
values, such as [1,2,3] or [{"id":"one"}], are reported as a parse error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &importRunner{
				app:   application,
				fs:    afero.NewOsFs(),
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Validate every imported row")

	return cmd
}

func (r *importRunner) Run(path string) error {
	raw, err := snapshot.ReadFile(r.fs, path)
	if err != nil {
		return err
	}

	var confirm ledger.Confirmer = ledger.ConfirmFunc(func(message string) (bool, error) {
		pterm.Warning.Printf("The ledger currently holds %d transactions.\n", r.app.Service.Ledger.Len())
		return ui.Confirm(message)
	})
	if r.flags.Yes {
		confirm = ledger.AlwaysConfirm
	}

	res, err := r.app.Service.Ledger.Import(raw, confirm, ledger.ImportOptions{Strict: r.flags.Strict})
	if err != nil {
		return err
	}

	if !res.Replaced {
		pterm.Info.Println("Import cancelled")
		return nil
	}

	pterm.Success.Printf("Data imported successfully! (%d transactions)\n", res.Count)
	printSeparator()
	return nil
}
