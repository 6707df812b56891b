package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		display string
	}{
		{name: "factorial shorthand", raw: "5!+3", display: "123"},
		{name: "absolute value bars", raw: "|3-5|", display: "2"},
		{name: "multiplication shorthand", raw: "6x7", display: "42"},
		{name: "caret power", raw: "2^10", display: "1024"},
		{name: "float noise hidden", raw: "0.1+0.2", display: "0.3"},
		{name: "pi multiple renders in pi form", raw: "2*pi", display: "2·π"},
		{name: "pi rune input", raw: "π+π", display: "2·π"},
		{name: "degree sine", raw: "sin(90)", display: "1"},
		{name: "totient", raw: "totient(9)", display: "6"},
		{name: "primecount", raw: "primecount(10)", display: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			res, err := s.Evaluate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.display, res.Display)
			assert.Equal(t, tt.display, res.Entry.Result)

			entries := s.History()
			require.Len(t, entries, 1)
			assert.Equal(t, res.Entry.ID, entries[0].ID)
		})
	}
}

func TestSession_EvaluateTrimsExpression(t *testing.T) {
	s := NewSession()
	res, err := s.Evaluate("  1+1  ")
	require.NoError(t, err)
	assert.Equal(t, "1+1", res.Expression)
	assert.Equal(t, "1+1", res.Entry.Expression)
}

func TestSession_EvaluateRadians(t *testing.T) {
	s := NewSessionWithModes(Modes{Pi: true, Angle: Radians})
	res, err := s.Evaluate("sin(pi/2)")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Display)
}

func TestSession_EvaluateFractionMode(t *testing.T) {
	s := NewSessionWithModes(Modes{Fraction: true, Pi: true, Angle: Degrees})
	res, err := s.Evaluate("180/360")
	require.NoError(t, err)
	assert.Equal(t, "1/2", res.Display)
}

func TestSession_EvaluateErrorLeavesStateUntouched(t *testing.T) {
	s := NewSession()
	before := s.Modes()

	_, err := s.Evaluate("sqrt(-1)")
	require.Error(t, err)
	var eErr *EvalError
	assert.ErrorAs(t, err, &eErr)

	_, err = s.Evaluate("|5")
	require.Error(t, err)
	var pErr *PreprocessError
	assert.ErrorAs(t, err, &pErr)

	assert.Empty(t, s.History())
	assert.Equal(t, before, s.Modes())
}

func TestSession_ToggleLabels(t *testing.T) {
	s := NewSession()

	modes := s.Modes()
	assert.Equal(t, "Decimal", modes.FractionLabel())
	assert.Equal(t, "π", modes.PiLabel())
	assert.Equal(t, "Degrees", modes.AngleLabel())

	assert.Equal(t, "Fraction", s.ToggleFractionMode())
	assert.Equal(t, "Exact", s.TogglePiMode())
	assert.Equal(t, "Radians", s.ToggleAngleMode())

	assert.Equal(t, "Decimal", s.ToggleFractionMode())
	assert.Equal(t, "π", s.TogglePiMode())
	assert.Equal(t, "Degrees", s.ToggleAngleMode())
}

func TestSession_ToggleAngleAffectsTrig(t *testing.T) {
	s := NewSession()

	res, err := s.Evaluate("sin(90)")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Display)

	s.ToggleAngleMode()

	res, err = s.Evaluate("sin(pi/2)")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Display)
}

func TestSession_HistoryOrderAndDelete(t *testing.T) {
	s := NewSession()
	for _, expr := range []string{"1+1", "2+2", "3+3"} {
		_, err := s.Evaluate(expr)
		require.NoError(t, err)
	}

	entries := s.History()
	require.Len(t, entries, 3)
	assert.Equal(t, "1+1", entries[0].Expression)
	assert.Equal(t, "2+2", entries[1].Expression)
	assert.Equal(t, "3+3", entries[2].Expression)

	remaining, err := s.DeleteHistory(entries[1].ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "1+1", remaining[0].Expression)
	assert.Equal(t, "3+3", remaining[1].Expression)
}

func TestSession_DeleteHistoryUnknownID(t *testing.T) {
	s := NewSession()
	_, err := s.DeleteHistory("no-such-id")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSession_ClearHistory(t *testing.T) {
	s := NewSession()
	_, err := s.Evaluate("1+1")
	require.NoError(t, err)

	assert.Empty(t, s.ClearHistory())
	assert.Empty(t, s.History())
}

func TestSession_AppendHistory(t *testing.T) {
	s := NewSession()
	entries := s.AppendHistory("9x9", "81")
	require.Len(t, entries, 1)
	assert.Equal(t, "9x9", entries[0].Expression)
	assert.Equal(t, "81", entries[0].Result)
	assert.NotEmpty(t, entries[0].ID)
}

func TestSession_Actions(t *testing.T) {
	s := NewSession()

	tests := []struct {
		name   string
		action func(string) (string, error)
		value  string
		want   string
	}{
		{name: "square", action: s.Square, value: "12", want: "144"},
		{name: "square of negative", action: s.Square, value: "-3", want: "9"},
		{name: "reciprocal", action: s.Reciprocal, value: "4", want: "0.25"},
		{name: "reciprocal of half", action: s.Reciprocal, value: "0.5", want: "2"},
		{name: "factorize", action: s.Factorize, value: "24", want: "2^3 x 3"},
		{name: "totient", action: s.Totient, value: "9", want: "6"},
		{name: "primecount", action: s.PrimeCount, value: "10", want: "4"},
		{name: "floor", action: s.Floor, value: "2.7", want: "2"},
		{name: "floor of negative", action: s.Floor, value: "-2.5", want: "-3"},
		{name: "ceil", action: s.Ceil, value: "2.1", want: "3"},
		{name: "deg to rad lands on pi", action: s.DegToRad, value: "180", want: "π"},
		{name: "deg to rad off multiple", action: s.DegToRad, value: "90", want: "1.5707963268"},
		{name: "rad to deg", action: s.RadToDeg, value: "3.141592653589793", want: "180"},
		{name: "scientific", action: s.Scientific, value: "1234.5678", want: "1.234568 x 10^3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.action(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// actions rewrite the entry value and never touch the history
	assert.Empty(t, s.History())
}

func TestSession_ActionsPiModeOff(t *testing.T) {
	s := NewSessionWithModes(Modes{Angle: Degrees})
	got, err := s.DegToRad("180")
	require.NoError(t, err)
	assert.Equal(t, "3.1415926536", got)
}

func TestSession_ActionErrors(t *testing.T) {
	s := NewSession()

	tests := []struct {
		name   string
		action func(string) (string, error)
		value  string
	}{
		{name: "square of non-number", action: s.Square, value: "abc"},
		{name: "reciprocal of zero", action: s.Reciprocal, value: "0"},
		{name: "factorize of non-integer", action: s.Factorize, value: "2.5"},
		{name: "totient of zero", action: s.Totient, value: "0"},
		{name: "primecount above limit", action: s.PrimeCount, value: "10000001"},
		{name: "scientific of non-number", action: s.Scientific, value: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.action(tt.value)
			require.Error(t, err)

			var eErr *EvalError
			assert.ErrorAs(t, err, &eErr, "want *EvalError, got %T", err)
		})
	}
}
