package model

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/constants"
)

type Type string

const (
	TypeIncome  Type = constants.TypeIncome
	TypeExpense Type = constants.TypeExpense
)

// Transaction is a single income or expense record. The JSON shape is the
// snapshot format shared by persistence, export and import.
type Transaction struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        Type    `json:"type"`
}

func (t Type) String() string {
	return string(t)
}

// ParseType accepts "income"/"expense" case-insensitively.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %s", s)
	}
}
