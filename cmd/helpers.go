package cmd

import (
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

func defaultDate(date string) string {
	if date == "" {
		return time.Now().Format(constants.DateFormat)
	}
	return date
}

// inferType returns the explicit type, or the type owning category,
// or expense when neither is known.
func inferType(explicit, category string) string {
	if explicit != "" {
		return explicit
	}
	if t, ok := model.CategoryType(category); ok {
		return t.String()
	}
	return constants.TypeExpense
}
