// Package advcalc provides the calculator engine as an embeddable library.
//
// The engine takes the shorthand a person types into a calculator (2^10,
// 5!+3, |2-7|, sin(90)), rewrites it into evaluable syntax, evaluates it
// against a closed namespace of math functions, and formats the result
// according to the session's display modes (fractions, multiples of π,
// degree or radian trigonometry). Each session keeps an in-memory history
// of its calculations.
//
// # Quick Start
//
//	session := advcalc.NewSession()
//	result, err := session.Evaluate("5!+3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Display) // "123"
//
// # Architecture
//
// Raw text flows through a fixed pipeline: preprocess (rewrite shorthand),
// evaluate (restricted namespace, no arbitrary identifiers), round, format,
// append to history. Failures at any stage leave the session untouched.
//
// The cmd/advcalc binary wraps one session in a local web UI, a REST API
// and an MCP stdio server; this package is that binary's engine and works
// without any of them.
package advcalc

import (
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/mathx"
)

// Session is an alias for the engine session type.
type Session = calc.Session

// Result is an alias for the outcome of one evaluation.
type Result = calc.Result

// HistoryEntry is an alias for one recorded calculation.
type HistoryEntry = calc.HistoryEntry

// Modes is an alias for the display-mode flags.
type Modes = calc.Modes

// AngleMode is an alias for the trigonometry angle mode.
type AngleMode = calc.AngleMode

// Angle modes.
const (
	Degrees = calc.Degrees
	Radians = calc.Radians
)

// PreprocessError is an alias for the shorthand-rewrite error type.
type PreprocessError = calc.PreprocessError

// EvalError is an alias for the evaluation error type.
type EvalError = calc.EvalError

// ErrEntryNotFound is returned when a history operation names an unknown id.
var ErrEntryNotFound = calc.ErrEntryNotFound

// NewSession creates a session with the default display modes: decimal
// results, π formatting on, degree trigonometry.
func NewSession() *Session {
	return calc.NewSession()
}

// NewSessionWithModes creates a session starting from the given modes.
func NewSessionWithModes(modes Modes) *Session {
	return calc.NewSessionWithModes(modes)
}

// DefaultModes returns the startup display modes.
func DefaultModes() Modes {
	return calc.DefaultModes()
}

// Preprocess rewrites calculator shorthand into evaluable syntax without
// evaluating it.
func Preprocess(raw string) (string, error) {
	return calc.Preprocess(raw)
}

// FormatResult renders a numeric value under the given display modes.
func FormatResult(v float64, modes Modes) string {
	return calc.FormatResult(v, modes)
}

// ToScientific renders v as "m.mmmmmm x 10^e".
func ToScientific(v float64) string {
	return calc.ToScientific(v)
}

// Factorize renders the prime factorization of n, such as "2^3 x 3" for 24.
func Factorize(n int) string {
	return mathx.Factorize(n)
}
