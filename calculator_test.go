package advcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	advcalc "github.com/ZaEvab55555/Advanced-Calculator"
)

func TestSessionEvaluate(t *testing.T) {
	session := advcalc.NewSession()

	result, err := session.Evaluate("5!+3")
	require.NoError(t, err)
	assert.Equal(t, "123", result.Display)

	history := session.History()
	require.Len(t, history, 1)
	assert.Equal(t, "5!+3", history[0].Expression)
	assert.Equal(t, "123", history[0].Result)
}

func TestSessionWithModes(t *testing.T) {
	modes := advcalc.DefaultModes()
	modes.Fraction = true

	session := advcalc.NewSessionWithModes(modes)
	result, err := session.Evaluate("1/2")
	require.NoError(t, err)
	assert.Equal(t, "1/2", result.Display)
}

func TestErrorTypes(t *testing.T) {
	session := advcalc.NewSession()

	var preErr *advcalc.PreprocessError
	_, err := session.Evaluate("|1-2")
	require.ErrorAs(t, err, &preErr)

	var evalErr *advcalc.EvalError
	_, err = session.Evaluate("1/0")
	require.ErrorAs(t, err, &evalErr)

	_, err = session.DeleteHistory("no-such-id")
	assert.ErrorIs(t, err, advcalc.ErrEntryNotFound)
}

func TestHelpers(t *testing.T) {
	rewritten, err := advcalc.Preprocess("2^10x3")
	require.NoError(t, err)
	assert.Equal(t, "2**10*3", rewritten)

	assert.Equal(t, "1.234000 x 10^3", advcalc.ToScientific(1234))
	assert.Equal(t, "2^3 x 3", advcalc.Factorize(24))
	assert.Equal(t, "0.5", advcalc.FormatResult(0.5, advcalc.Modes{}))
}
