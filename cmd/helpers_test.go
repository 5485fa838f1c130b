package cmd

import (
	"testing"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	assert.Equal(t, "income", inferType("income", "Food"))
	assert.Equal(t, "income", inferType("", "Salary"))
	assert.Equal(t, "expense", inferType("", "Food"))
	assert.Equal(t, "expense", inferType("", ""))
}

func TestDefaultDate(t *testing.T) {
	assert.Equal(t, "2024-01-01", defaultDate("2024-01-01"))
	assert.Equal(t, time.Now().Format(constants.DateFormat), defaultDate(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Invalid file format", capitalize("invalid file format"))
}
