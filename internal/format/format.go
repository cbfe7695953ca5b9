// Package format turns raw field values into display strings. Missing
// values render as "N/A"; values that cannot be coerced to a number are
// stringified rather than failing the render.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is the placeholder for missing values
const NotAvailable = "N/A"

// Currency formats a value as a dollar string, abbreviating large
// values with T/B/M suffixes: 1500000000 -> "$1.50B", 42.5 -> "$42.50".
func Currency(value *decimal.Decimal) string {
	if value == nil {
		return NotAvailable
	}

	v := value.InexactFloat64()
	tiers := []struct {
		divisor float64
		suffix  string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
	}
	for _, tier := range tiers {
		if math.Abs(v) >= tier.divisor {
			return fmt.Sprintf("$%.2f%s", v/tier.divisor, tier.suffix)
		}
	}
	return "$" + groupThousands(v, 2)
}

// Pct formats a decimal ratio as a percentage: 0.15 -> "15.00%".
func Pct(value *decimal.Decimal) string {
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", value.InexactFloat64()*100)
}

// Number formats a value with thousands separators and the given number
// of decimal places. Values that cannot be coerced to a number are
// returned via fmt.Sprint.
func Number(value interface{}, decimals int) string {
	if isNil(value) {
		return NotAvailable
	}

	v, ok := coerceFloat(value)
	if !ok {
		return fmt.Sprint(value)
	}
	return groupThousands(v, decimals)
}

// LargeNumber abbreviates with B/M/K suffixes, no currency symbol:
// 2500000000 -> "2.50B", 1200 -> "1.2K".
func LargeNumber(value *decimal.Decimal) string {
	if value == nil {
		return NotAvailable
	}

	v := value.InexactFloat64()
	tiers := []struct {
		divisor  float64
		suffix   string
		decimals int
	}{
		{1e9, "B", 2},
		{1e6, "M", 2},
		{1e3, "K", 1},
	}
	for _, tier := range tiers {
		if math.Abs(v) >= tier.divisor {
			return fmt.Sprintf("%.*f%s", tier.decimals, v/tier.divisor, tier.suffix)
		}
	}
	return groupThousands(v, 0)
}

// Ratio formats a ratio with one decimal and an 'x' suffix: 15.2 ->
// "15.2x". Non-numeric values are returned via fmt.Sprint.
func Ratio(value interface{}) string {
	if isNil(value) {
		return NotAvailable
	}

	v, ok := coerceFloat(value)
	if !ok {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf("%.1fx", v)
}

// coerceFloat attempts to turn a value of any supported type into a
// float64
func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case *decimal.Decimal:
		return v.InexactFloat64(), true
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case *string:
		if v == nil {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isNil(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *decimal.Decimal:
		return v == nil
	case *string:
		return v == nil
	default:
		return false
	}
}

// groupThousands renders v with the given decimal places and commas in
// the integer part: 1234567.5 -> "1,234,567.50"
func groupThousands(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + fracPart
	if neg {
		return "-" + out
	}
	return out
}
