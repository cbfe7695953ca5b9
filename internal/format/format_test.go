package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jwyoon/equityboard/internal/equity"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value *decimalArg
		want  string
	}{
		{"nil", nil, "N/A"},
		{"billions", dec("1500000000"), "$1.50B"},
		{"trillions", dec("2400000000000"), "$2.40T"},
		{"millions", dec("7250000"), "$7.25M"},
		{"plain", dec("42.5"), "$42.50"},
		{"thousands grouping", dec("1234.5"), "$1,234.50"},
		{"negative billions", dec("-1500000000"), "$-1.50B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value.ptr()))
		})
	}
}

func TestPct(t *testing.T) {
	assert.Equal(t, "N/A", Pct(nil))
	assert.Equal(t, "15.00%", Pct(equity.Dec("0.15")))
	assert.Equal(t, "-3.20%", Pct(equity.Dec("-0.032")))
	assert.Equal(t, "110.00%", Pct(equity.Dec("1.1")))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "N/A", Number(nil, 2))
	assert.Equal(t, "1,000,000.00", Number(1000000.0, 2))
	assert.Equal(t, "42.50", Number(equity.Dec("42.5"), 2))
	assert.Equal(t, "1.8", Number("1.8", 1))
	// Coercion failure falls back to stringifying
	assert.Equal(t, "n/m", Number("n/m", 2))
}

func TestLargeNumber(t *testing.T) {
	assert.Equal(t, "N/A", LargeNumber(nil))
	assert.Equal(t, "2.50B", LargeNumber(equity.Dec("2500000000")))
	assert.Equal(t, "13.10M", LargeNumber(equity.Dec("13100000")))
	assert.Equal(t, "1.2K", LargeNumber(equity.Dec("1200")))
	assert.Equal(t, "999", LargeNumber(equity.Dec("999")))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "N/A", Ratio(nil))
	assert.Equal(t, "15.2x", Ratio(equity.Dec("15.23")))
	assert.Equal(t, "7.0x", Ratio("7"))
	assert.Equal(t, "--", Ratio("--"))
}

func TestAnalystRating(t *testing.T) {
	tests := []struct {
		name      string
		value     *string
		wantLabel string
		wantColor string
	}{
		{"nil", nil, "N/A", "#808495"},
		{"strong buy string", equity.Str("Strong Buy"), "Strong Buy", "#15803d"},
		{"buy uppercase", equity.Str("BUY"), "Buy", "#16a34a"},
		{"neutral maps to hold", equity.Str("Neutral"), "Hold", "#d97706"},
		{"underperform maps to sell", equity.Str("Underperform"), "Sell", "#dc2626"},
		{"numeric strong buy", equity.Str("1.2"), "Strong Buy", "#15803d"},
		{"numeric hold", equity.Str("3.0"), "Hold", "#d97706"},
		{"numeric strong sell", equity.Str("4.9"), "Strong Sell", "#991b1b"},
		{"unrecognized passthrough", equity.Str("Speculative"), "Speculative", "#808495"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalystRating(tt.value)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantColor, got.Color)
		})
	}
}

// decimalArg lets table tests express nil decimals cleanly
type decimalArg struct{ s string }

func dec(s string) *decimalArg { return &decimalArg{s} }

func (d *decimalArg) ptr() *decimal.Decimal {
	if d == nil {
		return nil
	}
	return equity.Dec(d.s)
}
