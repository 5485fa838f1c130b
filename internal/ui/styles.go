package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green separator line to the console.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}
