package model

var incomeCategories = []string{
	"Salary",
	"Investment",
	"Gift",
	"Other Income",
}

var expenseCategories = []string{
	"Food",
	"Rent",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Shopping",
	"Health",
	"Other Expense",
}

// Categories returns the fixed category set for a transaction type.
// The returned slice is a copy.
func Categories(t Type) []string {
	switch t {
	case TypeIncome:
		return append([]string(nil), incomeCategories...)
	case TypeExpense:
		return append([]string(nil), expenseCategories...)
	default:
		return nil
	}
}

func IncomeCategories() []string {
	return Categories(TypeIncome)
}

func ExpenseCategories() []string {
	return Categories(TypeExpense)
}

// AllCategories lists income categories first, then expense categories.
func AllCategories() []string {
	all := make([]string, 0, len(incomeCategories)+len(expenseCategories))
	all = append(all, incomeCategories...)
	return append(all, expenseCategories...)
}

// CategoryType reports which type a category belongs to.
func CategoryType(category string) (Type, bool) {
	for _, c := range incomeCategories {
		if c == category {
			return TypeIncome, true
		}
	}
	for _, c := range expenseCategories {
		if c == category {
			return TypeExpense, true
		}
	}
	return "", false
}

func IsValidCategory(t Type, category string) bool {
	ct, ok := CategoryType(category)
	return ok && ct == t
}
