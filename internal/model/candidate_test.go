package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateTransaction(t *testing.T) {
	tx, err := Candidate{
		Description: "  Coffee ",
		Amount:      " 3.50",
		Date:        "2024-02-01 ",
		Category:    " Food",
		Type:        "Expense",
	}.Transaction(42)
	require.NoError(t, err)
	require.Equal(t, Transaction{
		ID: 42, Description: "Coffee", Amount: 3.5, Date: "2024-02-01", Category: "Food", Type: TypeExpense,
	}, tx)

	_, err = Candidate{Amount: "abc", Type: "expense"}.Transaction(1)
	require.Error(t, err)

	_, err = Candidate{Amount: "1", Type: "gift"}.Transaction(1)
	require.Error(t, err)
}

func TestCandidateFrom(t *testing.T) {
	tx := Transaction{ID: 9, Description: "Paycheck", Amount: 2000.25, Date: "2024-01-01", Category: "Salary", Type: TypeIncome}

	c := CandidateFrom(tx)
	require.Equal(t, Candidate{Description: "Paycheck", Amount: "2000.25", Date: "2024-01-01", Category: "Salary", Type: "income"}, c)

	back, err := c.Transaction(9)
	require.NoError(t, err)
	require.Equal(t, tx, back)
}
