package calc

import (
	"errors"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultFractionDigits is the number of fractional digits shown in results.
const DefaultFractionDigits = 2

// reduce computes the value of an expression of the form
// number (operator number)*. Multiplication and division are resolved
// first, left to right, then addition and subtraction.
//
// Division by zero is not detected here and yields an infinite value.
func reduce(toks []Token) (float64, error) {
	if len(toks)%2 == 0 {
		return 0, ErrIncorrectExpression
	}
	var (
		values = make([]float64, 0, len(toks)/2+1)
		ops    = make([]Operator, 0, len(toks)/2)
	)
	for i, t := range toks {
		if i%2 == 1 {
			if !t.isOperator() {
				return 0, ErrIncorrectExpression
			}
			ops = append(ops, t.Op)
			continue
		}
		if !t.isNumber() {
			return 0, ErrIncorrectExpression
		}
		v, err := strconv.ParseFloat(t.Text, 64)
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, ErrInfiniteResult
		} else if err != nil {
			return 0, ErrIncorrectExpression
		}
		values = append(values, v)
	}

	for len(ops) > 0 {
		i := 0
		for j, op := range ops {
			if op.highPriority() {
				i = j
				break
			}
		}
		values[i] = ops[i].apply(values[i], values[i+1])
		values = append(values[:i+1], values[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}
	return values[0], nil
}

// isFinite reports whether v can be displayed as a result.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FormatResult renders v with at most digits fractional digits. Trailing
// zeros are dropped, so whole numbers have no decimal point. The decimal
// separator is always "." and digits are never grouped.
//
// v must be finite.
func FormatResult(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	return decimal.NewFromFloat(v).Round(int32(digits)).String()
}
