package views

import (
	"math"

	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

func RenderSummary(s service.Summary, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Summary")

	net := utils.FormatCurrency(s.NetBalance, currency)
	if s.NetBalance < 0 {
		net = pterm.Red(net)
	} else {
		net = pterm.Green(net)
	}

	tableData := pterm.TableData{
		{"Net Balance", net},
		{"Total Income", pterm.Green(utils.FormatCurrency(s.TotalIncome, currency))},
		{"Total Expenses", pterm.Red(utils.FormatCurrency(s.TotalExpenses, currency))},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	return RenderBreakdown(s, currency)
}

// RenderBreakdown draws the expense distribution as a table and a bar chart.
func RenderBreakdown(s service.Summary, currency string) error {
	shares := s.Breakdown()

	pterm.Println()
	ui.PrintL2Title("Expenses by Category")

	if len(shares) == 0 {
		pterm.Info.Println("No expenses recorded.")
		return nil
	}

	tableData := pterm.TableData{
		{"Category", "Amount", "Share"},
	}
	bars := make(pterm.Bars, 0, len(shares))
	for _, share := range shares {
		tableData = append(tableData, []string{
			share.Category,
			utils.FormatCurrency(share.Amount, currency),
			utils.FormatPercent(share.Percent),
		})
		bars = append(bars, pterm.Bar{
			Label: share.Category,
			Value: int(math.Round(share.Amount)),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		return err
	}

	return pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
}
