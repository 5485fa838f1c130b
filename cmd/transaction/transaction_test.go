package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(" 1706745600000 ")
	require.NoError(t, err)
	require.Equal(t, int64(1706745600000), id)

	_, err = ParseID("12abc")
	require.Error(t, err)

	_, err = ParseID("")
	require.Error(t, err)
}
