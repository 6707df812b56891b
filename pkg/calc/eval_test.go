package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "addition", expr: "1+2", want: 3},
		{name: "precedence", expr: "2+3*4", want: 14},
		{name: "float division", expr: "10/4", want: 2.5},
		{name: "power operator", expr: "2**10", want: 1024},
		{name: "modulo", expr: "7%3", want: 1},
		{name: "unary minus", expr: "-3+1", want: -2},
		{name: "parentheses", expr: "(1+2)*(3+4)", want: 21},
		{name: "pi constant", expr: "pi", want: math.Pi},
		{name: "e constant", expr: "e", want: math.E},
	}

	ev := NewEvaluator(Degrees)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluator_Functions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "sqrt", expr: "sqrt(9)", want: 3},
		{name: "cbrt", expr: "cbrt(27)", want: 3},
		{name: "abs", expr: "abs(-5)", want: 5},
		{name: "floor", expr: "floor(2.7)", want: 2},
		{name: "ceil", expr: "ceil(2.1)", want: 3},
		{name: "exp", expr: "exp(0)", want: 1},
		{name: "ln of e", expr: "ln(e)", want: 1},
		{name: "log is natural log", expr: "log(e)", want: 1},
		{name: "log10", expr: "log10(1000)", want: 3},
		{name: "factorial", expr: "factorial(5)", want: 120},
		{name: "factorial in expression", expr: "factorial(5)+3", want: 123},
		{name: "totient", expr: "totient(9)", want: 6},
		{name: "primecount", expr: "primecount(10)", want: 4},
		{name: "nested calls", expr: "sqrt(abs(-16))", want: 4},
	}

	ev := NewEvaluator(Degrees)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluator_TrigDegrees(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "sin 90", expr: "sin(90)", want: 1},
		{name: "cos 0", expr: "cos(0)", want: 1},
		{name: "cos 180", expr: "cos(180)", want: -1},
		{name: "tan 45", expr: "tan(45)", want: 1},
		{name: "asin returns degrees", expr: "asin(1)", want: 90},
		{name: "acos returns degrees", expr: "acos(0)", want: 90},
		{name: "atan returns degrees", expr: "atan(1)", want: 45},
	}

	ev := NewEvaluator(Degrees)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluator_TrigRadians(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "sin pi/2", expr: "sin(pi/2)", want: 1},
		{name: "cos pi", expr: "cos(pi)", want: -1},
		{name: "asin returns radians", expr: "asin(1)", want: math.Pi / 2},
		{name: "atan returns radians", expr: "atan(1)", want: math.Pi / 4},
	}

	ev := NewEvaluator(Radians)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluator_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "sqrt of negative", expr: "sqrt(-1)"},
		{name: "asin outside domain", expr: "asin(2)"},
		{name: "acos outside domain", expr: "acos(-1.5)"},
		{name: "ln of zero", expr: "ln(0)"},
		{name: "log of negative", expr: "log(-3)"},
		{name: "negative factorial", expr: "factorial(-1)"},
		{name: "fractional factorial", expr: "factorial(2.5)"},
		{name: "factorial overflow", expr: "factorial(171)"},
		{name: "totient of zero", expr: "totient(0)"},
		{name: "primecount above limit", expr: "primecount(10000001)"},
		{name: "division by zero", expr: "1/0"},
		{name: "zero over zero", expr: "0/0"},
		{name: "unknown identifier", expr: "q+1"},
		{name: "malformed syntax", expr: "2**"},
		{name: "boolean result", expr: "1 > 0"},
		{name: "too many arguments", expr: "sin(1, 2)"},
	}

	ev := NewEvaluator(Degrees)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ev.Evaluate(tt.expr)
			require.Error(t, err)

			var eErr *EvalError
			assert.ErrorAs(t, err, &eErr, "want *EvalError, got %T", err)
		})
	}
}

func TestEvaluator_ErrorMentionsExpression(t *testing.T) {
	_, err := NewEvaluator(Degrees).Evaluate("sqrt(-4)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqrt(-4)")
}
