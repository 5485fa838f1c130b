package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/hance08/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() model.Candidate {
	return model.Candidate{
		Description: "Groceries",
		Amount:      "42.50",
		Date:        "2024-03-01",
		Category:    "Food",
		Type:        "expense",
	}
}

func TestValidateTransaction_Valid(t *testing.T) {
	res := ValidateTransaction(validCandidate())
	require.True(t, res.Valid)
	require.Empty(t, res.Errors)
	require.NoError(t, res.Err())
	require.Equal(t, "", res.Message())
}

func TestValidateTransaction_SingleRule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *model.Candidate)
		want   string
	}{
		{"empty description", func(c *model.Candidate) { c.Description = "" }, MsgDescriptionRequired},
		{"blank description", func(c *model.Candidate) { c.Description = "   \t" }, MsgDescriptionRequired},
		{"zero amount", func(c *model.Candidate) { c.Amount = "0" }, MsgAmountInvalid},
		{"negative amount", func(c *model.Candidate) { c.Amount = "-5" }, MsgAmountInvalid},
		{"non numeric amount", func(c *model.Candidate) { c.Amount = "abc" }, MsgAmountInvalid},
		{"amount with trailing text", func(c *model.Candidate) { c.Amount = "12abc" }, MsgAmountInvalid},
		{"NaN amount", func(c *model.Candidate) { c.Amount = "NaN" }, MsgAmountInvalid},
		{"infinite amount", func(c *model.Candidate) { c.Amount = "Inf" }, MsgAmountInvalid},
		{"empty amount", func(c *model.Candidate) { c.Amount = "" }, MsgAmountInvalid},
		{"missing category", func(c *model.Candidate) { c.Category = "" }, MsgCategoryRequired},
		{"missing date", func(c *model.Candidate) { c.Date = "" }, MsgDateRequired},
		{"malformed date", func(c *model.Candidate) { c.Date = "03/01/2024" }, MsgDateFormat},
		{"unknown type", func(c *model.Candidate) { c.Type = "transfer" }, MsgTypeInvalid},
		{"category of other type", func(c *model.Candidate) { c.Category = "Salary" }, MsgCategoryMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			res := ValidateTransaction(c)
			require.False(t, res.Valid)
			require.Equal(t, []string{tt.want}, res.Errors)
		})
	}
}

func TestValidateTransaction_CollectsAllInOrder(t *testing.T) {
	res := ValidateTransaction(model.Candidate{
		Description: " ",
		Amount:      "abc",
		Type:        "expense",
	})

	require.False(t, res.Valid)
	require.Equal(t, []string{
		MsgDescriptionRequired,
		MsgAmountInvalid,
		MsgCategoryRequired,
		MsgDateRequired,
	}, res.Errors)
	assert.Equal(t,
		"Description is required. Amount must be a positive number. Category is required. Date is required.",
		res.Message())

	err := res.Err()
	require.Error(t, err)
	assert.Equal(t, res.Message(), err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, res.Errors, verr.Messages())
}

func TestValidateImported(t *testing.T) {
	tx := model.Transaction{
		ID:          1,
		Description: "Paycheck",
		Amount:      2000,
		Date:        "2024-01-01",
		Category:    "Salary",
		Type:        model.TypeIncome,
	}
	require.True(t, ValidateImported(tx).Valid)

	tx.Amount = math.NaN()
	require.Equal(t, []string{MsgAmountInvalid}, ValidateImported(tx).Errors)

	tx.Amount = 10
	tx.Type = "bonus"
	require.Equal(t, []string{MsgTypeInvalid}, ValidateImported(tx).Errors)
}
