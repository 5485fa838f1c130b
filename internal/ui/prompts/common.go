package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := matchOption(options, defaultOption)

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// matchOption resolves a default against the option list, accepting either
// an exact match or a "<default> ..." prefix.
func matchOption(options []string, defaultOption string) string {
	for _, o := range options {
		if o == defaultOption {
			return o
		}
	}

	if defaultOption != "" {
		for _, o := range options {
			if strings.HasPrefix(o, defaultOption+" ") {
				return o
			}
		}
	}
	return defaultOption
}
