package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwyoon/equityboard/internal/equity"
)

func TestColumnsRegistry(t *testing.T) {
	columns := Columns()
	assert.Len(t, columns, 38)

	seen := make(map[string]bool)
	for _, col := range columns {
		assert.False(t, seen[col.Name], "duplicate column %q", col.Name)
		seen[col.Name] = true
		require.NotNil(t, col.Value, "column %q has no accessor", col.Name)
	}

	identifiers := 0
	for _, col := range columns {
		if col.Identifier {
			identifiers++
		}
	}
	assert.Equal(t, 7, identifiers)
}

func TestGroupsCoverKnownColumns(t *testing.T) {
	groups := Groups()
	assert.Len(t, groups, 8)

	known := make(map[string]bool)
	for _, col := range Columns() {
		known[col.Name] = true
	}
	for _, g := range groups {
		for _, name := range g.Columns {
			assert.True(t, known[name], "group %q references unknown column %q", g.Header, name)
		}
	}
}

func TestBuildRow(t *testing.T) {
	eq := equity.CanonicalEquity{
		Identity: equity.Identity{
			Name:   equity.Str("Acme Corp"),
			Symbol: equity.Str("ACME"),
			ISIN:   equity.Str("US0000000001"),
		},
		Financials: equity.Financials{
			MICs:         []string{"XNAS", "XNYS"},
			LastPrice:    equity.Dec("42.5"),
			MarketCap:    equity.Dec("1500000000"),
			ProfitMargin: equity.Dec("0.15"),
			MarketVolume: equity.Dec("2500000"),
			TrailingPE:   equity.Dec("15.23"),
		},
	}

	row := BuildRow(&eq, Columns())

	assert.Equal(t, "Acme Corp", row.Cells["Name"].Raw)
	assert.Equal(t, "XNAS, XNYS", row.Cells["MICs"].Raw)
	assert.Equal(t, "$42.50", row.Cells["Last Price"].Display)
	assert.Equal(t, "$1.5B", row.Cells["Market Cap"].Display)
	assert.Equal(t, "15.0%", row.Cells["Profit Margin"].Display)
	assert.Equal(t, "2.5M", row.Cells["Market Volume"].Display)
	assert.Equal(t, "15.2x", row.Cells["Trailing P/E"].Display)

	// Missing values: nil raw, blank display
	assert.Nil(t, row.Cells["Revenue"].Raw)
	assert.Equal(t, "", row.Cells["Revenue"].Display)
	assert.Nil(t, row.Cells["CUSIP"].Raw)
}

func TestBuildRowThousandsSeparators(t *testing.T) {
	eq := equity.CanonicalEquity{
		Financials: equity.Financials{LastPrice: equity.Dec("1234.5")},
	}
	row := BuildRow(&eq, Columns())
	assert.Equal(t, "$1,234.50", row.Cells["Last Price"].Display)
}

func TestFilterText(t *testing.T) {
	eq := equity.CanonicalEquity{
		Identity: equity.Identity{
			Name:           equity.Str("Acme Corp"),
			Symbol:         equity.Str("ACME"),
			ISIN:           equity.Str("US0000000001"),
			ShareClassFIGI: equity.Str("BBG000BLNNH6"),
		},
	}

	text := FilterText(&eq)
	assert.Equal(t, "Acme Corp US0000000001 BBG000BLNNH6", text)
	assert.NotContains(t, text, "ACME", "symbol is not part of the quick filter")
}

func TestBuildGrid(t *testing.T) {
	equities := []equity.CanonicalEquity{
		{SnapshotDate: equity.Str("2026-08-21"), Identity: equity.Identity{Name: equity.Str("Acme Corp")}},
		{SnapshotDate: equity.Str("2026-08-21")},
	}

	grid := BuildGrid(equities)

	require.NotNil(t, grid.SnapshotDate)
	assert.Equal(t, "2026-08-21", *grid.SnapshotDate)
	assert.Len(t, grid.Columns, 38)
	assert.Len(t, grid.Groups, 8)
	assert.Len(t, grid.Rows, 2)
}

func TestBuildGridEmpty(t *testing.T) {
	grid := BuildGrid(nil)
	assert.Nil(t, grid.SnapshotDate)
	assert.Empty(t, grid.Rows)
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		value  float64
		prefix string
		want   string
	}{
		{2.5e12, "$", "$2.5T"},
		{1.5e9, "$", "$1.5B"},
		{300e6, "", "300.0M"},
		{1200, "", "1.2K"},
		{-4.2e9, "$", "$-4.2B"},
		{950, "$", "$950.00"},
		{950, "", "950"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, abbreviate(tt.value, tt.prefix))
	}
}
