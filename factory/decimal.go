package factory

import (
	"log/slog"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxDecimalExponent bounds the exponent accepted by [ParseDecimal].
const maxDecimalExponent = 1000

var (
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
)

// ParseDecimal returns s in canonical decimal form: an optional '-', the
// integer digits, and the fractional digits without trailing zeros. It
// accepts an optional sign, a fraction and an exponent ("1.5", "-0.25",
// "3e2"). Anything else, including "NaN" and "Inf", is an error.
func ParseDecimal(s string) (string, error) {
	text := strings.TrimSpace(s)

	invalid := func(reason string) error {
		return ErrInvalidLiteral.With(
			slog.String("decimal", s),
			slog.String("reason", reason))
	}

	mantissa, exp, hasExp := strings.Cut(strings.ToLower(text), "e")
	if mantissa == "" || strings.Trim(mantissa, "+-.0123456789") != "" {
		return "", invalid("not a decimal number")
	}

	if hasExp {
		n, err := strconv.Atoi(exp)
		if err != nil || n < -maxDecimalExponent || n > maxDecimalExponent {
			return "", invalid("exponent out of range")
		}
	}

	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return "", invalid("not a decimal number")
	}

	// The denominator of a reduced decimal is 2^a 5^b; max(a, b) fractional
	// digits render it exactly.
	den := new(big.Int).Set(r.Denom())
	twos := removeFactor(den, bigTwo)
	fives := removeFactor(den, bigFive)

	if den.Cmp(big.NewInt(1)) != 0 {
		return "", invalid("not a finite decimal")
	}

	return r.FloatString(max(twos, fives)), nil
}

// removeFactor divides n by p as long as it divides evenly and returns how
// many times it did.
func removeFactor(n, p *big.Int) int {
	var (
		count int
		q, m  big.Int
	)

	for {
		q.QuoRem(n, p, &m)
		if m.Sign() != 0 {
			return count
		}

		n.Set(&q)
		count++
	}
}

// Decimal returns the exact decimal literal of v. NaN and infinities have
// no literal and panic with [ErrInvalidLiteral].
func (f *Factory) Decimal(v float64) Expression {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(ErrInvalidLiteral.With(slog.Float64("decimal", v)))
	}

	return f.DecimalText(strconv.FormatFloat(v, 'f', -1, 64))
}

// DecimalText returns the exact decimal literal of the number written in
// s; see [ParseDecimal]. Malformed text panics with [ErrInvalidLiteral].
func (f *Factory) DecimalText(s string) Expression {
	text, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}

	return f.backend.Decimal(text)
}
