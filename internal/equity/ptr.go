package equity

import "github.com/shopspring/decimal"

// Str returns a pointer to the given string
func Str(s string) *string {
	return &s
}

// Dec parses a decimal literal and returns a pointer to it.
// Panics on an invalid literal, so only use with trusted input.
func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DecFloat converts a float64 to a decimal pointer
func DecFloat(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}
