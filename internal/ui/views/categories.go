package views

import (
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

func RenderCategories() error {
	tableData := pterm.TableData{
		{"Type", "Categories"},
		{pterm.Green(model.TypeIncome.String()), strings.Join(model.IncomeCategories(), ", ")},
		{pterm.Red(model.TypeExpense.String()), strings.Join(model.ExpenseCategories(), ", ")},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
