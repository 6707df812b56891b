package calc

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when a history operation names an unknown id.
var ErrEntryNotFound = errors.New("history entry not found")

// PreprocessError reports raw input rejected before evaluation, such as
// unbalanced absolute-value bars or a dangling factorial mark.
type PreprocessError struct {
	Input  string
	Reason string
}

func (e *PreprocessError) Error() string {
	return fmt.Sprintf("cannot interpret %q: %s", e.Input, e.Reason)
}

// EvalError reports a failure while evaluating an expression: unknown names,
// malformed syntax, division by zero, or an argument outside a function's
// domain.
type EvalError struct {
	Expression string
	Reason     string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %s", e.Expression, e.Reason)
}
