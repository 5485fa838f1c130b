package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchOption(t *testing.T) {
	options := []string{"Food", "Other Expense", "Rent"}

	assert.Equal(t, "Rent", matchOption(options, "Rent"))
	assert.Equal(t, "Other Expense", matchOption(options, "Other"))
	assert.Equal(t, "Travel", matchOption(options, "Travel"))
	assert.Equal(t, "", matchOption(options, ""))
}
