// Package money provides fixed-point decimal helpers for monetary values.
//
// All persisted monetary amounts are rounded to two decimal places using
// round-half-up. Intermediate arithmetic stays in decimal form and never
// passes through binary floating point.
package money

import "github.com/shopspring/decimal"

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// Round2 rounds an amount to two decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Total computes unitPrice × quantity rounded to two decimal places.
func Total(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return Round2(unitPrice.Mul(quantity))
}

// Outstanding returns total − paid, floored at zero and rounded to two
// decimal places.
func Outstanding(total, paid decimal.Decimal) decimal.Decimal {
	rem := Round2(total.Sub(paid))
	if rem.IsNegative() {
		return Zero
	}
	return rem
}

// Clamp bounds d to the inclusive range [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// FromString parses a decimal amount. It is a thin wrapper kept so callers
// outside this package never import the decimal library for parsing.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal amount and panics on invalid input.
// Intended for constants and test fixtures only.
func MustFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
