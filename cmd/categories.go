package cmd

import (
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderCategories()
		},
	}
}
