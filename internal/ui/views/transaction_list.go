package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID          int64
	Date        string
	Type        string
	Category    string
	Description string
	Amount      string
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// ToListItems formats transactions for the list table.
func ToListItems(txs []model.Transaction, currency string) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, TransactionListItem{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        tx.Type.String(),
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      utils.FormatSigned(tx.Amount, tx.Type == model.TypeIncome, currency),
		})
	}
	return items
}

func (v *TransactionListView) Render(items []TransactionListItem, filter string) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions recorded.")
		return nil
	}

	pterm.DefaultSection.Printf("Transactions (category: %s)", filter)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Category", "Description", "Amount"},
	}

	for _, item := range items {
		var coloredType, coloredAmount string

		switch item.Type {
		case string(model.TypeExpense):
			coloredType = pterm.Red(item.Type)
			coloredAmount = pterm.Red(item.Amount)
		case string(model.TypeIncome):
			coloredType = pterm.Green(item.Type)
			coloredAmount = pterm.Green(item.Amount)
		default:
			coloredType = item.Type
			coloredAmount = item.Amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			item.Date,
			coloredType,
			item.Category,
			item.Description,
			coloredAmount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
