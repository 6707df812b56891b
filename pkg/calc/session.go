// Package calc implements the calculator engine: expression preprocessing,
// restricted evaluation against a closed namespace, mode-aware result
// formatting, and in-memory history.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/ZaEvab55555/Advanced-Calculator/pkg/mathx"
)

// Session owns the display modes and evaluation history for one calculator
// instance. It is safe for concurrent use. Operations that fail leave the
// modes and history untouched.
type Session struct {
	mu      sync.RWMutex
	modes   Modes
	history history
}

// Result is the outcome of one successful evaluation.
type Result struct {
	Expression string       `json:"expression"`
	Value      float64      `json:"value"`
	Display    string       `json:"display"`
	Entry      HistoryEntry `json:"entry"`
}

// NewSession creates a session with the default display modes.
func NewSession() *Session {
	return NewSessionWithModes(DefaultModes())
}

// NewSessionWithModes creates a session starting from the given modes.
func NewSessionWithModes(modes Modes) *Session {
	return &Session{modes: modes}
}

// Evaluate runs raw input through preprocess, evaluate, round and format
// under the current modes. A successful evaluation is appended to the
// history.
func (s *Session) Evaluate(raw string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepped, err := Preprocess(raw)
	if err != nil {
		return Result{}, err
	}

	value, err := NewEvaluator(s.modes.Angle).Evaluate(prepped)
	if err != nil {
		return Result{}, err
	}

	value = roundDisplay(value)
	display := FormatResult(value, s.modes)
	entry := s.history.append(strings.TrimSpace(raw), display)

	return Result{
		Expression: entry.Expression,
		Value:      value,
		Display:    display,
		Entry:      entry,
	}, nil
}

// Modes returns the current display modes.
func (s *Session) Modes() Modes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes
}

// ToggleFractionMode flips fraction display and returns the new label.
func (s *Session) ToggleFractionMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes.Fraction = !s.modes.Fraction
	return s.modes.FractionLabel()
}

// TogglePiMode flips π formatting and returns the new label.
func (s *Session) TogglePiMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes.Pi = !s.modes.Pi
	return s.modes.PiLabel()
}

// ToggleAngleMode flips between Degrees and Radians and returns the new
// label.
func (s *Session) ToggleAngleMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modes.Angle == Degrees {
		s.modes.Angle = Radians
	} else {
		s.modes.Angle = Degrees
	}
	return s.modes.AngleLabel()
}

// History returns the entries in insertion order.
func (s *Session) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.list()
}

// AppendHistory records an externally produced calculation and returns the
// updated list.
func (s *Session) AppendHistory(expression, result string) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.append(expression, result)
	return s.history.list()
}

// DeleteHistory removes exactly one entry by id, preserving the order of
// the rest, and returns the updated list.
func (s *Session) DeleteHistory(id string) ([]HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.history.delete(id); err != nil {
		return nil, err
	}
	return s.history.list(), nil
}

// ClearHistory removes every entry and returns the empty list.
func (s *Session) ClearHistory() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.clear()
	return s.history.list()
}

// Square returns value² in decimal form.
func (s *Session) Square(value string) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	out := v * v
	if math.IsInf(out, 0) {
		return "", &EvalError{Expression: value, Reason: "result out of range"}
	}
	return decimalForm(out), nil
}

// Reciprocal returns 1/value in decimal form. Zero is an error.
func (s *Session) Reciprocal(value string) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	if v == 0 {
		return "", &EvalError{Expression: value, Reason: "division by zero"}
	}
	return decimalForm(1 / v), nil
}

// Factorize renders the prime factorization of an integer value, for
// example "2^3 x 3" for 24.
func (s *Session) Factorize(value string) (string, error) {
	n, err := parseInt(value)
	if err != nil {
		return "", err
	}
	return mathx.Factorize(n), nil
}

// Totient returns Euler's totient of a positive integer value.
func (s *Session) Totient(value string) (string, error) {
	n, err := parseInt(value)
	if err != nil {
		return "", err
	}
	t, err := mathx.Totient(n)
	if err != nil {
		return "", &EvalError{Expression: value, Reason: err.Error()}
	}
	return strconv.Itoa(t), nil
}

// PrimeCount returns the number of primes up to an integer value.
func (s *Session) PrimeCount(value string) (string, error) {
	n, err := parseInt(value)
	if err != nil {
		return "", err
	}
	if n > maxPrimeCountArg {
		return "", &EvalError{Expression: value, Reason: fmt.Sprintf("value exceeds limit %d", maxPrimeCountArg)}
	}
	count, err := mathx.PrimeCount(n)
	if err != nil {
		return "", &EvalError{Expression: value, Reason: err.Error()}
	}
	return strconv.Itoa(count), nil
}

// Floor rounds value down to an integer.
func (s *Session) Floor(value string) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	return decimalForm(math.Floor(v)), nil
}

// Ceil rounds value up to an integer.
func (s *Session) Ceil(value string) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	return decimalForm(math.Ceil(v)), nil
}

// DegToRad converts a degree value to radians, rendered as a multiple of π
// when π formatting is on.
func (s *Session) DegToRad(value string) (string, error) {
	return s.convertAngle(value, radians)
}

// RadToDeg converts a radian value to degrees, rendered as a multiple of π
// when π formatting is on.
func (s *Session) RadToDeg(value string) (string, error) {
	return s.convertAngle(value, degrees)
}

func (s *Session) convertAngle(value string, convert func(float64) float64) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	out := convert(v)
	if math.IsInf(out, 0) {
		return "", &EvalError{Expression: value, Reason: "result out of range"}
	}
	out = roundDisplay(out)

	s.mu.RLock()
	piMode := s.modes.Pi
	s.mu.RUnlock()

	if piMode {
		if formatted, ok := piForm(out); ok {
			return formatted, nil
		}
	}
	return decimalForm(out), nil
}

// Scientific reformats a numeric value as "m.mmmmmm x 10^e".
func (s *Session) Scientific(value string) (string, error) {
	v, err := parseValue(value)
	if err != nil {
		return "", err
	}
	return ToScientific(v), nil
}

func parseValue(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &EvalError{Expression: value, Reason: "not a numeric value"}
	}
	return v, nil
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &EvalError{Expression: value, Reason: "not an integer"}
	}
	return n, nil
}
