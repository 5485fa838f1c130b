package transaction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/app"
	"github.com/spf13/cobra"
)

// NewTransactionCmd groups the commands that operate on a single transaction.
func NewTransactionCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: view details, edit, or delete a transaction by ID.",
	}

	cmd.AddCommand(NewShowCmd(application))
	cmd.AddCommand(NewEditCmd(application))
	cmd.AddCommand(NewDeleteCmd(application))

	return cmd
}

// ParseID parses a transaction ID argument.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID: %s", raw)
	}
	return id, nil
}
