package prompts

const (
	MenuAdd     = "Add transaction"
	MenuEdit    = "Edit transaction"
	MenuDelete  = "Delete transaction"
	MenuFilter  = "Change category filter"
	MenuSummary = "Show summary"
	MenuExport  = "Export transactions"
	MenuImport  = "Import transactions"
	MenuQuit    = "Quit"
)

// PromptMainMenu prompts for the next action of the interactive session
func PromptMainMenu() (string, error) {
	return PromptSelect("What would you like to do?", []string{
		MenuAdd,
		MenuEdit,
		MenuDelete,
		MenuFilter,
		MenuSummary,
		MenuExport,
		MenuImport,
		MenuQuit,
	}, MenuAdd)
}
