package calc

// AngleMode selects how trigonometric arguments and results are interpreted.
type AngleMode int

const (
	// Degrees converts trig inputs from degrees and inverse-trig results
	// back to degrees.
	Degrees AngleMode = iota
	// Radians passes trig values through unchanged.
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "Radians"
	}
	return "Degrees"
}

// ParseAngleMode maps a label back to its mode. Unrecognized values fall
// back to Degrees, the startup default.
func ParseAngleMode(s string) AngleMode {
	if s == "Radians" || s == "radians" {
		return Radians
	}
	return Degrees
}

// Modes holds the three display flags read by the formatter.
type Modes struct {
	Fraction bool
	Pi       bool
	Angle    AngleMode
}

// DefaultModes returns the startup state: decimal display, π formatting on,
// degree trigonometry.
func DefaultModes() Modes {
	return Modes{Fraction: false, Pi: true, Angle: Degrees}
}

// FractionLabel is the status-bar label for the fraction flag.
func (m Modes) FractionLabel() string {
	if m.Fraction {
		return "Fraction"
	}
	return "Decimal"
}

// PiLabel is the status-bar label for the π-format flag.
func (m Modes) PiLabel() string {
	if m.Pi {
		return "π"
	}
	return "Exact"
}

// AngleLabel is the status-bar label for the angle mode.
func (m Modes) AngleLabel() string {
	return m.Angle.String()
}
