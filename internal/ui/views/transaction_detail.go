package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx model.Transaction, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", tx.Date},
		{"Description", tx.Description},
		{"Type", tx.Type.String()},
		{"Category", tx.Category},
		{"Amount", utils.FormatCurrency(tx.Amount, currency)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

func RenderTransactionDeletePreview(tx model.Transaction, currency string) {
	pterm.Warning.Printf("About to delete transaction #%d:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", tx.Date},
		{"Description", tx.Description},
		{"Amount", utils.FormatSigned(tx.Amount, tx.Type == model.TypeIncome, currency)},
	}

	pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderTransactionDeleteSuccess(id int64) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	ui.Separator()
}
