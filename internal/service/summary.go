package service

import (
	"sort"

	"github.com/hance08/tally/internal/model"
)

// Summary holds the aggregate totals of a ledger.
type Summary struct {
	TotalIncome       float64
	TotalExpenses     float64
	NetBalance        float64
	ExpenseByCategory map[string]float64
}

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category string
	Amount   float64
	// Percent of total expenses, 0-100.
	Percent float64
}

// Summarize computes totals over the full ledger. The result does not depend
// on the order of txs.
func Summarize(txs []model.Transaction) Summary {
	s := Summary{ExpenseByCategory: make(map[string]float64)}

	for _, tx := range txs {
		switch tx.Type {
		case model.TypeIncome:
			s.TotalIncome += tx.Amount
		case model.TypeExpense:
			s.TotalExpenses += tx.Amount
			s.ExpenseByCategory[tx.Category] += tx.Amount
		}
	}

	s.NetBalance = s.TotalIncome - s.TotalExpenses
	return s
}

// Breakdown lists expense categories by amount, largest first. Equal amounts
// are ordered by category name.
func (s Summary) Breakdown() []CategoryShare {
	shares := make([]CategoryShare, 0, len(s.ExpenseByCategory))
	for cat, amount := range s.ExpenseByCategory {
		share := CategoryShare{Category: cat, Amount: amount}
		if s.TotalExpenses > 0 {
			share.Percent = amount / s.TotalExpenses * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}
