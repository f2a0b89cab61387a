package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := map[string]Operation{
		"add":      OperationAdd,
		"plus":     OperationAdd,
		" ADD ":    OperationAdd,
		"subtract": OperationSubtract,
		"minus":    OperationSubtract,
		"Both":     OperationBoth,
	}
	for input, want := range tests {
		got, err := ParseOperation(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
		assert.True(t, got.Valid())
	}
}

func TestParseOperationRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "times", "add,subtract"} {
		_, err := ParseOperation(input)
		require.ErrorIs(t, err, ErrInvalidOperation, input)
	}
}
