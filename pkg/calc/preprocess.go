package calc

import (
	"regexp"
	"strings"
)

var (
	absPattern       = regexp.MustCompile(`\|([^|]+)\|`)
	factorialPattern = regexp.MustCompile(`(\d+)!`)
)

// Preprocess rewrites calculator shorthand into syntax the evaluator
// accepts: '^' becomes the power operator, a lone 'x' becomes '*', the π
// rune becomes the pi constant, |E| becomes abs(E) and n! becomes
// factorial(n). Unbalanced bars or a '!' without a preceding integer yield
// a *PreprocessError.
func Preprocess(raw string) (string, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return "", &PreprocessError{Input: raw, Reason: "empty expression"}
	}

	expr = strings.ReplaceAll(expr, "^", "**")
	expr = replaceMultiplicationShorthand(expr)
	expr = strings.ReplaceAll(expr, "π", "pi")

	expr = absPattern.ReplaceAllString(expr, "abs($1)")
	if strings.ContainsRune(expr, '|') {
		return "", &PreprocessError{Input: raw, Reason: "unbalanced absolute-value bars"}
	}

	expr = factorialPattern.ReplaceAllString(expr, "factorial($1)")
	if strings.ContainsRune(expr, '!') {
		return "", &PreprocessError{Input: raw, Reason: "factorial mark '!' must follow an integer"}
	}

	return expr, nil
}

// replaceMultiplicationShorthand rewrites 'x' as '*' when it is used as a
// multiplication sign. An 'x' adjacent to an ASCII letter is part of an
// identifier such as exp and stays untouched.
func replaceMultiplicationShorthand(expr string) string {
	runes := []rune(expr)
	for i, r := range runes {
		if r != 'x' {
			continue
		}
		if i > 0 && isIdentLetter(runes[i-1]) {
			continue
		}
		if i+1 < len(runes) && isIdentLetter(runes[i+1]) {
			continue
		}
		runes[i] = '*'
	}
	return string(runes)
}

func isIdentLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
