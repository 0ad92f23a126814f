package calc

import (
	"strings"
)

// Operator is one of the four binary operators.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// String returns the display glyph.
func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "x"
	case Div:
		return "÷"
	default:
		panic("unknown op")
	}
}

// highPriority reports whether op is resolved before + and -.
func (op Operator) highPriority() bool {
	return op == Mul || op == Div
}

// apply computes the operation.
func (op Operator) apply(x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	default:
		panic("unknown op")
	}
}

// ParseOperator reads an operator button label. Surrounding whitespace is
// ignored, and the common alternative glyphs are accepted.
func ParseOperator(label string) (Operator, bool) {
	switch strings.TrimSpace(label) {
	case "+":
		return Add, true
	case "-", "−":
		return Sub, true
	case "x", "×", "*":
		return Mul, true
	case "÷", "/":
		return Div, true
	}
	return 0, false
}

const (
	zeroLiteral  = "0"
	decimalPoint = "."
	equalsGlyph  = "="
)

// TokenKind tells what a Token holds.
type TokenKind int

const (
	KindNumber TokenKind = iota
	KindOperator
	KindEquals
)

// Token is an element of an expression. Numbers keep the text typed by the
// user; they are only parsed when the expression is evaluated.
type Token struct {
	Kind TokenKind
	Text string   // KindNumber
	Op   Operator // KindOperator
}

func numberToken(text string) Token { return Token{Kind: KindNumber, Text: text} }
func opToken(op Operator) Token     { return Token{Kind: KindOperator, Op: op} }

var equalsToken = Token{Kind: KindEquals}

// String returns the token as it appears in the expression text.
func (t Token) String() string {
	switch t.Kind {
	case KindOperator:
		return t.Op.String()
	case KindEquals:
		return equalsGlyph
	default:
		return t.Text
	}
}

func (t Token) isOperator() bool { return t.Kind == KindOperator }
func (t Token) isNumber() bool   { return t.Kind == KindNumber }

// Tokenize splits expression text into tokens. Fragments are separated by
// spaces; empty fragments are dropped. Only canonical operator glyphs are
// recognized, anything else that is not "=" becomes a number token.
func Tokenize(text string) []Token {
	var toks []Token
	for _, f := range strings.Split(text, " ") {
		switch f {
		case "":
			continue
		case equalsGlyph:
			toks = append(toks, equalsToken)
		case Add.String(), Sub.String(), Mul.String(), Div.String():
			op, _ := ParseOperator(f)
			toks = append(toks, opToken(op))
		default:
			toks = append(toks, numberToken(f))
		}
	}
	return toks
}

// Render produces the expression text of toks. An expression ending in an
// operator keeps the trailing space, e.g. "2 + ".
func Render(toks []Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	if len(toks) > 0 && toks[len(toks)-1].isOperator() {
		sb.WriteByte(' ')
	}
	return sb.String()
}
