package main

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"

	"github.com/fjl/countonme/internal/calc"
)

func TestKeyLabel(t *testing.T) {
	tests := map[string]string{
		"7":            "7",
		".":            ".",
		"*":            "*",
		"X":            "x",
		"/":            "/",
		key.NameReturn: "=",
		key.NameEnter:  "=",
		key.NameEscape: "AC",
	}
	for name, want := range tests {
		label, ok := keyLabel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, label, name)
	}
	_, ok := keyLabel("Q")
	assert.False(t, ok)
}

// Every keypad label must be accepted by the accumulator.
func TestKeypadLabels(t *testing.T) {
	acc := calc.New()
	ui := newUI(nil, acc)
	for _, row := range ui.buttons {
		for _, b := range row {
			if b == nil {
				continue
			}
			acc.Reset()
			for _, k := range []string{"1", "+", "1"} {
				acc.Press(k)
			}
			ui.press(b.text)
			assert.NotEqual(t, calc.ErrIncorrectExpression, acc.Err(), "label %q", b.text)
		}
	}
}

func TestKeypadSession(t *testing.T) {
	acc := calc.New()
	ui := newUI(nil, acc)
	for _, name := range []string{"4", "/", "2", "X", "3", "-", "2", "+", "2", key.NameReturn} {
		label, ok := keyLabel(name)
		assert.True(t, ok)
		ui.press(label)
	}
	assert.Equal(t, "4 ÷ 2 x 3 - 2 + 2 = 6", acc.Text())
}
