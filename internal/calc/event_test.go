package calc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	require.NoError(t, WriteEvent(enc, &DisplayChanged{Text: "2 + "}))
	require.NoError(t, WriteEvent(enc, &Failed{Err: ErrZeroDivision}))

	want := `{"type":"display","event":{"text":"2 + "}}
{"type":"failed","event":{"kind":"zeroDivision","message":"Division by zero is impossible!"}}
`
	assert.Equal(t, want, buf.String())
}

func TestErrorNames(t *testing.T) {
	all := []Error{
		ErrOperandAlreadySet,
		ErrIncorrectExpression,
		ErrZeroDivision,
		ErrResultAlreadyShowing,
		ErrFirstIsOperand,
		ErrStartNewCalculation,
		ErrInfiniteResult,
	}
	seen := make(map[string]bool)
	for _, e := range all {
		assert.NotEqual(t, "unknown", e.Name())
		assert.False(t, seen[e.Name()], "duplicate name %s", e.Name())
		seen[e.Name()] = true
		assert.NotEmpty(t, e.Error())
	}
	assert.Equal(t, "unknown", Error(0).Name())
}
