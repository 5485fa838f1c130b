package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	require.Equal(t, []string{"Salary", "Investment", "Gift", "Other Income"}, IncomeCategories())
	require.Len(t, ExpenseCategories(), 8)
	require.Nil(t, Categories(Type("transfer")))
	require.Len(t, AllCategories(), 12)

	// callers must not be able to mutate the taxonomy
	cats := IncomeCategories()
	cats[0] = "Lottery"
	assert.Equal(t, "Salary", IncomeCategories()[0])
}

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		txType   Type
		category string
		want     bool
	}{
		{"income salary", TypeIncome, "Salary", true},
		{"expense rent", TypeExpense, "Rent", true},
		{"salary as expense", TypeExpense, "Salary", false},
		{"food as income", TypeIncome, "Food", false},
		{"unknown category", TypeExpense, "Travel", false},
		{"case sensitive", TypeExpense, "food", false},
		{"unknown type", Type("transfer"), "Food", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCategory(tt.txType, tt.category))
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Income ")
	require.NoError(t, err)
	require.Equal(t, TypeIncome, got)

	got, err = ParseType("expense")
	require.NoError(t, err)
	require.Equal(t, TypeExpense, got)

	_, err = ParseType("transfer")
	require.Error(t, err)
}
