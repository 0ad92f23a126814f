package calc

import (
	"strconv"
	"strings"
)

// The predicates below look at the whole token list every time. Expressions
// are short, so nothing is cached between edits.

// lastIsOperator tells whether the expression ends in an operator.
func lastIsOperator(toks []Token) bool {
	return len(toks) > 0 && toks[len(toks)-1].isOperator()
}

// hasEnoughTokens tells whether there is at least one complete operation.
func hasEnoughTokens(toks []Token) bool {
	return len(toks) >= 3
}

// hasResult tells whether the expression has been evaluated.
func hasResult(toks []Token) bool {
	for _, t := range toks {
		if t.Kind == KindEquals {
			return true
		}
	}
	return false
}

// isAtReset tells whether the expression is the initial zero.
func isAtReset(toks []Token) bool {
	return len(toks) == 1 && toks[0].isNumber() && toks[0].Text == zeroLiteral
}

// isDivisionByZero tells whether any divisor is a zero-valued number.
func isDivisionByZero(toks []Token) bool {
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].isOperator() && toks[i].Op == Div && isZero(toks[i+1]) {
			return true
		}
	}
	return false
}

func isZero(t Token) bool {
	if !t.isNumber() {
		return false
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	return err == nil && v == 0
}

// hasDuplicateDecimalPoint tells whether a number token contains more than
// one decimal point, like "2.2.2".
func hasDuplicateDecimalPoint(toks []Token) bool {
	for _, t := range toks {
		if t.isNumber() && strings.Count(t.Text, decimalPoint) > 1 {
			return true
		}
	}
	return false
}
