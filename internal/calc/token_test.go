package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	toks := Tokenize("4 ÷ 2  x 3 = 6 ")
	want := []Token{
		numberToken("4"),
		opToken(Div),
		numberToken("2"),
		opToken(Mul),
		numberToken("3"),
		equalsToken,
		numberToken("6"),
	}
	assert.Equal(t, want, toks)
	assert.Equal(t, toks, Tokenize("4 ÷ 2  x 3 = 6 "))

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
	assert.Equal(t, []Token{numberToken("2.2.2")}, Tokenize("2.2.2"))
}

func TestRender(t *testing.T) {
	tests := []string{
		"0",
		"2",
		"2 + ",
		"2.5 - .",
		"4 ÷ 2 x 3 - 2 + 2 = 6",
	}
	for _, text := range tests {
		assert.Equal(t, text, Render(Tokenize(text)))
	}
	assert.Equal(t, "", Render(nil))
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		label string
		op    Operator
		ok    bool
	}{
		{"+", Add, true},
		{" + ", Add, true},
		{"-", Sub, true},
		{"−", Sub, true},
		{"x", Mul, true},
		{"×", Mul, true},
		{"*", Mul, true},
		{"÷", Div, true},
		{"/", Div, true},
		{"=", 0, false},
		{"", 0, false},
		{"++", 0, false},
	}
	for _, test := range tests {
		op, ok := ParseOperator(test.label)
		assert.Equal(t, test.ok, ok, "label %q", test.label)
		if ok {
			assert.Equal(t, test.op, op, "label %q", test.label)
		}
	}
}

func TestOperatorGlyphs(t *testing.T) {
	for _, op := range []Operator{Add, Sub, Mul, Div} {
		got, ok := ParseOperator(op.String())
		assert.True(t, ok)
		assert.Equal(t, op, got)
	}
	assert.True(t, Mul.highPriority())
	assert.True(t, Div.highPriority())
	assert.False(t, Add.highPriority())
	assert.False(t, Sub.highPriority())
}
