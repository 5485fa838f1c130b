package prompts

import (
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// PromptTransactionType prompts for income or expense
func PromptTransactionType(defaultType string) (string, error) {
	if defaultType == "" {
		defaultType = constants.TypeExpense
	}
	return PromptSelect("Transaction type:", []string{constants.TypeExpense, constants.TypeIncome}, defaultType)
}

// PromptTransaction collects every field of a transaction. Fields of
// current are used as defaults, so the same form serves add and edit.
// Values are returned raw; validation happens in the ledger.
func PromptTransaction(current model.Candidate) (model.Candidate, error) {
	txType, err := PromptTransactionType(current.Type)
	if err != nil {
		return model.Candidate{}, err
	}

	parsed, err := model.ParseType(txType)
	if err != nil {
		return model.Candidate{}, err
	}

	out := current
	out.Type = txType
	if out.Date == "" {
		out.Date = time.Now().Format(constants.DateFormat)
	}
	if !model.IsValidCategory(parsed, out.Category) {
		out.Category = ""
	}

	var opts []huh.Option[string]
	for _, c := range model.Categories(parsed) {
		opts = append(opts, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description:").
				Value(&out.Description),
			huh.NewInput().
				Title("Amount:").
				Description("e.g. 150 or 150.50").
				Value(&out.Amount),
			huh.NewInput().
				Title("Date (YYYY-MM-DD):").
				Value(&out.Date),
			huh.NewSelect[string]().
				Title("Category:").
				Options(opts...).
				Value(&out.Category),
		),
	)

	if err := form.Run(); err != nil {
		return model.Candidate{}, err
	}

	return out, nil
}

// PromptCategoryFilter prompts for the list filter
func PromptCategoryFilter(options []string, current string) (string, error) {
	return PromptSelect("Filter by category:", options, current)
}
