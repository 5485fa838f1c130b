package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Candidate holds raw, unvalidated field values as entered by the user.
type Candidate struct {
	Description string
	Amount      string
	Date        string
	Category    string
	Type        string
}

// CandidateFrom renders an existing transaction back into raw fields,
// e.g. to prefill an edit form.
func CandidateFrom(tx Transaction) Candidate {
	return Candidate{
		Description: tx.Description,
		Amount:      strconv.FormatFloat(tx.Amount, 'f', -1, 64),
		Date:        tx.Date,
		Category:    tx.Category,
		Type:        tx.Type.String(),
	}
}

// Transaction converts a validated candidate into a Transaction with the given id.
func (c Candidate) Transaction(id int64) (Transaction, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(c.Amount), 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount: %s", c.Amount)
	}

	txType, err := ParseType(c.Type)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          id,
		Description: strings.TrimSpace(c.Description),
		Amount:      amount,
		Date:        strings.TrimSpace(c.Date),
		Category:    strings.TrimSpace(c.Category),
		Type:        txType,
	}, nil
}
