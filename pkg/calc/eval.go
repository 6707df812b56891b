package calc

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/ZaEvab55555/Advanced-Calculator/pkg/mathx"
)

// maxIntArg bounds integer-valued function arguments so conversions to int
// stay exact.
const maxIntArg = math.MaxInt32

// maxPrimeCountArg bounds the sieve allocation behind primecount.
const maxPrimeCountArg = 10_000_000

// Evaluator evaluates preprocessed expressions against a closed namespace.
// Only the allow-listed functions and the constants pi and e resolve; any
// other identifier fails evaluation.
type Evaluator struct {
	functions map[string]govaluate.ExpressionFunction
	params    map[string]interface{}
}

// NewEvaluator builds the evaluation namespace for the given angle mode.
func NewEvaluator(angle AngleMode) *Evaluator {
	e := &Evaluator{
		params: map[string]interface{}{
			"pi": math.Pi,
			"e":  math.E,
		},
	}

	e.functions = map[string]govaluate.ExpressionFunction{
		"sin":        trigFunc("sin", math.Sin, angle),
		"cos":        trigFunc("cos", math.Cos, angle),
		"tan":        trigFunc("tan", math.Tan, angle),
		"asin":       inverseTrigFunc("asin", math.Asin, angle, true),
		"acos":       inverseTrigFunc("acos", math.Acos, angle, true),
		"atan":       inverseTrigFunc("atan", math.Atan, angle, false),
		"sqrt":       sqrtFunc(),
		"cbrt":       plainFunc("cbrt", math.Cbrt),
		"log":        logFunc("log", math.Log),
		"ln":         logFunc("ln", math.Log),
		"log10":      logFunc("log10", math.Log10),
		"exp":        plainFunc("exp", math.Exp),
		"floor":      plainFunc("floor", math.Floor),
		"ceil":       plainFunc("ceil", math.Ceil),
		"abs":        plainFunc("abs", math.Abs),
		"factorial":  factorialFunc(),
		"totient":    totientFunc(),
		"primecount": primeCountFunc(),
	}

	return e
}

// Evaluate parses and evaluates a preprocessed expression, returning its
// numeric value. Malformed syntax, unresolvable names, non-numeric results
// and non-finite results are all reported as *EvalError.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, e.functions)
	if err != nil {
		return 0, &EvalError{Expression: expr, Reason: err.Error()}
	}

	result, err := parsed.Evaluate(e.params)
	if err != nil {
		return 0, &EvalError{Expression: expr, Reason: err.Error()}
	}

	value, ok := result.(float64)
	if !ok {
		return 0, &EvalError{Expression: expr, Reason: fmt.Sprintf("expression yields %T, not a number", result)}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &EvalError{Expression: expr, Reason: "result is not a finite number (division by zero?)"}
	}

	return value, nil
}

func singleArg(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects one argument, got %d", name, len(args))
	}
	v, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a numeric argument", name)
	}
	return v, nil
}

func intArg(name string, args []interface{}) (int, error) {
	v, err := singleArg(name, args)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s expects an integer argument, got %v", name, v)
	}
	if math.Abs(v) > maxIntArg {
		return 0, fmt.Errorf("%s argument %v is too large", name, v)
	}
	return int(v), nil
}

func trigFunc(name string, fn func(float64) float64, angle AngleMode) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg(name, args)
		if err != nil {
			return nil, err
		}
		if angle == Degrees {
			v = radians(v)
		}
		return fn(v), nil
	}
}

func inverseTrigFunc(name string, fn func(float64) float64, angle AngleMode, bounded bool) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg(name, args)
		if err != nil {
			return nil, err
		}
		if bounded && (v < -1 || v > 1) {
			return nil, fmt.Errorf("%s argument %v outside [-1, 1]", name, v)
		}
		out := fn(v)
		if angle == Degrees {
			out = degrees(out)
		}
		return out, nil
	}
}

func plainFunc(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg(name, args)
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	}
}

func sqrtFunc() govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg("sqrt", args)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("sqrt of negative number %v", v)
		}
		return math.Sqrt(v), nil
	}
}

func logFunc(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := singleArg(name, args)
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("%s of non-positive number %v", name, v)
		}
		return fn(v), nil
	}
}

func factorialFunc() govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		n, err := intArg("factorial", args)
		if err != nil {
			return nil, err
		}
		result, err := mathx.Factorial(n)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func totientFunc() govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		n, err := intArg("totient", args)
		if err != nil {
			return nil, err
		}
		result, err := mathx.Totient(n)
		if err != nil {
			return nil, err
		}
		return float64(result), nil
	}
}

func primeCountFunc() govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		n, err := intArg("primecount", args)
		if err != nil {
			return nil, err
		}
		if n > maxPrimeCountArg {
			return nil, fmt.Errorf("primecount argument %d exceeds limit %d", n, maxPrimeCountArg)
		}
		result, err := mathx.PrimeCount(n)
		if err != nil {
			return nil, err
		}
		return float64(result), nil
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
