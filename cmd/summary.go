package cmd

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"sum"},
		Short:   "Show totals and the expense breakdown",
		Long:    `Show total income, total expenses, the net balance and the expense distribution by category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.Service
			return views.RenderSummary(svc.Summary(), svc.Config.Defaults.Currency)
		},
	}
}
