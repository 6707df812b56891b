package calc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// piTolerance is the absolute tolerance for treating a value as an integer
// multiple of π.
const piTolerance = 1e-10

// fractionMaxDenominator bounds the denominator search in fraction mode.
const fractionMaxDenominator = 1000

// fractionTolerance is the relative error accepted for a fraction rendering
// before falling back to decimal.
const fractionTolerance = 1e-9

// displayPlaces is how many decimal places survive rounding before display.
const displayPlaces = 10

// FormatResult renders an evaluation result according to the active modes,
// in decision order: multiples of π when π formatting is on, then reduced
// fractions when fraction mode is on, then plain decimal.
func FormatResult(v float64, modes Modes) string {
	if modes.Pi {
		if s, ok := piForm(v); ok {
			return s
		}
	}
	if modes.Fraction {
		if s, ok := fractionForm(v); ok {
			return s
		}
	}
	return decimalForm(v)
}

// ToScientific renders v as "m.mmmmmm x 10^e" with a six-digit mantissa.
func ToScientific(v float64) string {
	s := fmt.Sprintf("%.6e", v)
	mantissa, expPart, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	exponent, err := strconv.Atoi(expPart)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s x 10^%d", mantissa, exponent)
}

// piForm renders v as a multiple of π when it is within piTolerance of one:
// "π", "-π", "k·π", or "0" when the nearest multiple is zero.
func piForm(v float64) (string, bool) {
	factor := math.Round(v / math.Pi)
	// beyond 2^53 the multiple is no longer an exact integer
	if math.Abs(factor) >= 1e15 {
		return "", false
	}
	if math.Abs(v-factor*math.Pi) >= piTolerance {
		return "", false
	}
	switch factor {
	case 0:
		return "0", true
	case 1:
		return "π", true
	case -1:
		return "-π", true
	}
	return strconv.FormatFloat(factor, 'f', -1, 64) + "·π", true
}

// fractionForm renders v as the reduced fraction p/q with q ≤ 1000 closest
// to it, provided that fraction is within fractionTolerance of v. Whole
// values render without a denominator.
func fractionForm(v float64) (string, bool) {
	num, den, ok := limitDenominator(v, fractionMaxDenominator)
	if !ok {
		return "", false
	}

	approx, _ := new(big.Rat).SetFrac(num, den).Float64()
	tolerance := fractionTolerance * math.Max(1, math.Abs(v))
	if math.Abs(v-approx) > tolerance {
		return "", false
	}

	if den.Cmp(big.NewInt(1)) == 0 {
		return num.String(), true
	}
	return num.String() + "/" + den.String(), true
}

// limitDenominator finds the rational closest to v whose denominator does
// not exceed maxDen, walking the continued-fraction convergents of v's
// exact binary value and comparing the final convergent against the best
// semiconvergent.
func limitDenominator(v float64, maxDen int64) (num, den *big.Int, ok bool) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, nil, false
	}

	limit := big.NewInt(maxDen)
	if r.Denom().Cmp(limit) <= 0 {
		return r.Num(), r.Denom(), true
	}

	neg := r.Sign() < 0
	n := new(big.Int).Abs(r.Num())
	d := new(big.Int).Set(r.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)

		remainder := new(big.Int).Mul(a, d)
		remainder.Sub(n, remainder)

		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, remainder
	}

	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)

	semiNum := new(big.Int).Mul(k, p1)
	semiNum.Add(semiNum, p0)
	semiDen := new(big.Int).Mul(k, q1)
	semiDen.Add(semiDen, q0)

	semi := new(big.Rat).SetFrac(semiNum, semiDen)
	convergent := new(big.Rat).SetFrac(p1, q1)

	target := new(big.Rat).Abs(r)
	semiErr := new(big.Rat).Sub(semi, target)
	semiErr.Abs(semiErr)
	convErr := new(big.Rat).Sub(convergent, target)
	convErr.Abs(convErr)

	best := convergent
	if convErr.Cmp(semiErr) > 0 {
		best = semi
	}

	num = new(big.Int).Set(best.Num())
	den = new(big.Int).Set(best.Denom())
	if neg {
		num.Neg(num)
	}
	return num, den, true
}

// decimalForm renders v in its shortest decimal representation: plain
// digits in ordinary ranges, exponent form only at extreme magnitudes.
func decimalForm(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// roundDisplay rounds v to displayPlaces decimal places through its
// correctly rounded decimal text, hiding float noise such as
// 0.30000000000000004.
func roundDisplay(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s := strconv.FormatFloat(v, 'f', displayPlaces, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}
