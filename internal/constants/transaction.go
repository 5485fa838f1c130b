package constants

const (
	// Transaction Types
	TypeIncome  = "income"
	TypeExpense = "expense"

	// Filter sentinel that disables category filtering
	FilterAll = "all"

	// Date Layout
	DateFormat = "2006-01-02"
)
