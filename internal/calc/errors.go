package calc

import "fmt"

// Error is a calculation error. All errors are recoverable: the accumulator
// stays usable and the next accepted input clears the error.
type Error int

const (
	ErrOperandAlreadySet Error = iota + 1
	ErrIncorrectExpression
	ErrZeroDivision
	ErrResultAlreadyShowing
	ErrFirstIsOperand
	ErrStartNewCalculation
	ErrInfiniteResult
)

// Error returns the message shown to the user.
func (e Error) Error() string {
	switch e {
	case ErrOperandAlreadySet:
		return "An operator is already set!"
	case ErrIncorrectExpression:
		return "Enter a correct expression!"
	case ErrZeroDivision:
		return "Division by zero is impossible!"
	case ErrResultAlreadyShowing:
		return "The result is already showing!"
	case ErrFirstIsOperand:
		return "Please start by entering a number!"
	case ErrStartNewCalculation:
		return "Start a new calculation!"
	case ErrInfiniteResult:
		return "The result is too large!"
	default:
		return fmt.Sprintf("calc error %d", int(e))
	}
}

// Name returns the identifier of the error kind.
func (e Error) Name() string {
	switch e {
	case ErrOperandAlreadySet:
		return "operandAlreadySet"
	case ErrIncorrectExpression:
		return "incorrectExpression"
	case ErrZeroDivision:
		return "zeroDivision"
	case ErrResultAlreadyShowing:
		return "resultAlreadyShowing"
	case ErrFirstIsOperand:
		return "firstIsOperand"
	case ErrStartNewCalculation:
		return "startNewCalculation"
	case ErrInfiniteResult:
		return "infiniteResult"
	default:
		return "unknown"
	}
}
