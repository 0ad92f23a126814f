package calc

import (
	"strings"

	"github.com/rs/zerolog"
)

// State is the phase of a calculation. An active error is tracked separately
// and can overlay any of the states.
type State int

const (
	StateZero State = iota
	StateEntering
	StateResult
)

func (s State) String() string {
	switch s {
	case StateZero:
		return "zero"
	case StateEntering:
		return "entering"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithLogger sets the logger. Operations are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Accumulator) { a.log = log }
}

// WithFractionDigits sets the maximum number of fractional digits in results.
func WithFractionDigits(n int) Option {
	return func(a *Accumulator) { a.digits = n }
}

// WithNotify sets a function that receives an event for every change of the
// display and every rejected operation. It is called synchronously, before
// the operation returns.
func WithNotify(fn func(Event)) Option {
	return func(a *Accumulator) { a.notify = fn }
}

// Accumulator builds an arithmetic expression from button presses and
// evaluates it. It holds a single expression. It is not safe for concurrent
// use.
type Accumulator struct {
	toks    []Token
	entered bool // false while the reset value is untouched
	err     Error
	digits  int
	log     zerolog.Logger
	notify  func(Event)
}

// New creates an accumulator showing "0".
func New(opts ...Option) *Accumulator {
	a := &Accumulator{
		toks:   resetTokens(),
		digits: DefaultFractionDigits,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func resetTokens() []Token {
	return []Token{numberToken(zeroLiteral)}
}

// Text returns the expression as displayed.
func (a *Accumulator) Text() string {
	return Render(a.toks)
}

// Tokens returns a copy of the current expression.
func (a *Accumulator) Tokens() []Token {
	return append([]Token(nil), a.toks...)
}

// Err returns the error of the last rejected operation, or nil if an
// operation succeeded since then.
func (a *Accumulator) Err() error {
	if a.err == 0 {
		return nil
	}
	return a.err
}

// State returns the current phase of the calculation.
func (a *Accumulator) State() State {
	switch {
	case hasResult(a.toks):
		return StateResult
	case !a.entered:
		return StateZero
	default:
		return StateEntering
	}
}

// AddNumber appends digits to the expression. If a result is showing, a new
// calculation is started.
func (a *Accumulator) AddNumber(digits string) error {
	if !isDigits(digits) {
		return a.fail("addNumber", ErrIncorrectExpression)
	}
	if hasResult(a.toks) {
		a.clear()
	}
	if isAtReset(a.toks) {
		a.toks = a.toks[:0]
	}
	a.appendToNumber(digits)
	a.entered = true
	a.commit("addNumber")
	return nil
}

// AddOperand appends an operator. label is an operator glyph as printed on
// the keypad.
func (a *Accumulator) AddOperand(label string) error {
	switch {
	case hasResult(a.toks):
		return a.fail("addOperand", ErrResultAlreadyShowing)
	case !a.entered:
		return a.fail("addOperand", ErrFirstIsOperand)
	case lastIsOperator(a.toks):
		return a.fail("addOperand", ErrOperandAlreadySet)
	}
	op, ok := ParseOperator(label)
	if !ok {
		return a.fail("addOperand", ErrIncorrectExpression)
	}
	a.toks = append(a.toks, opToken(op))
	a.commit("addOperand")
	return nil
}

// AddDecimalSeparator appends a decimal point. If a result is showing, the
// calculator is reset instead. A second point in a row changes nothing but
// still clears the current error.
func (a *Accumulator) AddDecimalSeparator() error {
	if hasResult(a.toks) {
		a.clear()
		a.commit("addDecimalSeparator")
		return nil
	}
	if strings.HasSuffix(a.Text(), decimalPoint) {
		a.err = 0
		return nil
	}
	a.appendToNumber(decimalPoint)
	a.entered = true
	a.commit("addDecimalSeparator")
	return nil
}

// Evaluate computes the expression and appends "= result". On failure the
// expression is left as it is.
func (a *Accumulator) Evaluate() error {
	switch {
	case hasResult(a.toks):
		return a.fail("evaluate", ErrResultAlreadyShowing)
	case !a.entered:
		return a.fail("evaluate", ErrStartNewCalculation)
	case lastIsOperator(a.toks), hasDuplicateDecimalPoint(a.toks):
		return a.fail("evaluate", ErrIncorrectExpression)
	case !hasEnoughTokens(a.toks):
		return a.fail("evaluate", ErrIncorrectExpression)
	case isDivisionByZero(a.toks):
		return a.fail("evaluate", ErrZeroDivision)
	}
	v, err := reduce(a.toks)
	if err != nil {
		return a.fail("evaluate", err.(Error))
	}
	if !isFinite(v) {
		return a.fail("evaluate", ErrInfiniteResult)
	}
	a.toks = append(a.toks, equalsToken, numberToken(FormatResult(v, a.digits)))
	a.commit("evaluate")
	return nil
}

// Reset clears the expression and the current error.
func (a *Accumulator) Reset() {
	a.clear()
	a.commit("reset")
}

// clear puts back the reset value.
func (a *Accumulator) clear() {
	a.toks = resetTokens()
	a.entered = false
}

// Press handles a keypad label: digits, ".", an operator, "=" or "AC".
// A label may hold a run of digits with decimal points, e.g. "3.25".
func (a *Accumulator) Press(label string) error {
	label = strings.TrimSpace(label)
	switch label {
	case "AC", "C":
		a.Reset()
		return nil
	case equalsGlyph:
		return a.Evaluate()
	case decimalPoint:
		return a.AddDecimalSeparator()
	}
	if _, ok := ParseOperator(label); ok {
		return a.AddOperand(label)
	}
	if !isNumeral(label) {
		return a.fail("press", ErrIncorrectExpression)
	}
	for label != "" {
		i := strings.Index(label, decimalPoint)
		if i < 0 {
			return a.AddNumber(label)
		}
		if i > 0 {
			if err := a.AddNumber(label[:i]); err != nil {
				return err
			}
		}
		if err := a.AddDecimalSeparator(); err != nil {
			return err
		}
		label = label[i+1:]
	}
	return nil
}

// appendToNumber extends the trailing number, or starts a new one after an
// operator.
func (a *Accumulator) appendToNumber(s string) {
	if n := len(a.toks); n > 0 && a.toks[n-1].isNumber() {
		a.toks[n-1].Text += s
		return
	}
	a.toks = append(a.toks, numberToken(s))
}

// commit finishes an accepted edit.
func (a *Accumulator) commit(op string) {
	a.err = 0
	text := a.Text()
	a.log.Debug().Str("op", op).Str("text", text).Msg("edit accepted")
	a.send(&DisplayChanged{Text: text})
}

// fail records a rejected operation.
func (a *Accumulator) fail(op string, err Error) error {
	a.err = err
	a.log.Debug().Str("op", op).Str("text", a.Text()).Str("error", err.Name()).Msg("edit rejected")
	a.send(&Failed{Err: err})
	return err
}

func (a *Accumulator) send(ev Event) {
	if a.notify != nil {
		a.notify(ev)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isNumeral tells whether s is made of digits and decimal points only.
func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return false
		}
	}
	return true
}
