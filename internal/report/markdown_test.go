package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwyoon/equityboard/internal/equity"
)

func TestMarkdown(t *testing.T) {
	equities := []equity.CanonicalEquity{
		{
			SnapshotDate: equity.Str("2026-08-21"),
			Identity:     equity.Identity{Name: equity.Str("Acme Corp")},
			Financials: equity.Financials{
				Sector:    equity.Str("Technology"),
				LastPrice: equity.Dec("42.5"),
				MarketCap: equity.Dec("1500000000"),
			},
		},
		{SnapshotDate: equity.Str("2026-08-21")},
	}

	doc, err := Markdown(Build(equities))
	require.NoError(t, err)

	assert.Contains(t, doc, "# Data Integrity Report")
	assert.Contains(t, doc, "Snapshot: **2026-08-21**")
	assert.Contains(t, doc, "| Name | 1/2 | 50.0% |")
	assert.Contains(t, doc, "| Small ($300M-$2B) | 1 |")
	assert.Contains(t, doc, "## Completeness")
	assert.Contains(t, doc, "| Technology |")
}

func TestMarkdownEmptySet(t *testing.T) {
	doc, err := Markdown(Build(nil))
	require.NoError(t, err)

	assert.Contains(t, doc, "Equities: **0**")
	assert.NotContains(t, doc, "Snapshot: **")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2.5e12, "$2.50T"},
		{1.5e9, "$1.50B"},
		{300e6, "$300.00M"},
		{42.5, "$42.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.value))
	}
}
