package cmd

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/snapshot"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type exportRunner struct {
	app    *app.App
	fs     afero.Fs
	stdout bool
	cmd    *cobra.Command
}

func NewExportCmd(application *app.App) *cobra.Command {
	runner := &exportRunner{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all transactions as JSON",
		Long: `Write the whole ledger as a pretty-printed JSON array.

Without a file argument the snapshot is written to tally_transactions.json in
the current directory; a directory argument gets the same file name inside it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.app = application
			runner.cmd = cmd

			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runner.Run(target)
		},
	}

	cmd.Flags().BoolVar(&runner.stdout, "stdout", false, "Print the snapshot instead of writing a file")

	return cmd
}

func (r *exportRunner) Run(target string) error {
	data, err := r.app.Service.Ledger.Export()
	if err != nil {
		return err
	}

	// Both targets get the snapshot bytes unchanged, without a trailing newline.
	if r.stdout {
		_, err := r.cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := snapshot.ResolveExportPath(r.fs, target)
	if err != nil {
		return err
	}

	if err := snapshot.WriteFile(r.fs, path, data); err != nil {
		return err
	}

	pterm.Success.Printf("Exported %d transactions to %s\n", r.app.Service.Ledger.Len(), path)
	return nil
}
