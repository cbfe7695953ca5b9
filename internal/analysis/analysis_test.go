package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwyoon/equityboard/internal/equity"
)

func sampleEquity() *equity.CanonicalEquity {
	return &equity.CanonicalEquity{
		Identity: equity.Identity{
			Name:           equity.Str("Acme Corp"),
			Symbol:         equity.Str("ACME"),
			ShareClassFIGI: equity.Str("BBG000000001"),
		},
		Financials: equity.Financials{
			MICs:             []string{"XNAS"},
			Sector:           equity.Str("Technology"),
			Industry:         equity.Str("Semiconductors"),
			LastPrice:        equity.Dec("75"),
			MarketCap:        equity.Dec("1500000000"),
			FiftyTwoWeekMin:  equity.Dec("50"),
			FiftyTwoWeekMax:  equity.Dec("100"),
			TrailingPE:       equity.Dec("15.23"),
			DividendYield:    equity.Dec("0.02"),
			Performance1Year: equity.Dec("0.25"),
			ProfitMargin:     equity.Dec("0.15"),
			ReturnOnEquity:   equity.Dec("-0.05"),
			AnalystRating:    equity.Str("1.2"),
		},
	}
}

func TestBuildHeader(t *testing.T) {
	p := Build(sampleEquity(), "NASDAQ:ACME", "https://example.com/acme.svg")

	assert.Equal(t, "Acme Corp", p.Header.Name)
	assert.Equal(t, "ACME", p.Header.Symbol)
	assert.Equal(t, "https://example.com/acme.svg", p.Header.LogoURL)
	require.NotNil(t, p.Header.Sector)
	assert.Equal(t, "Technology", *p.Header.Sector)
	assert.Equal(t, "NASDAQ:ACME", p.ResolvedSymbol)
}

func TestBuildBanner(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	require.Len(t, p.Banner, 4)
	assert.Equal(t, "Last Price", p.Banner[0].Label)
	assert.Equal(t, "$75.00", p.Banner[0].Value)
	assert.Equal(t, "25.00% (1Y)", p.Banner[0].Delta)
	assert.Equal(t, "$1.50B", p.Banner[1].Value)
	assert.Equal(t, "15.2x", p.Banner[2].Value)
	assert.Equal(t, "2.00%", p.Banner[3].Value)
}

func TestBuildRatingNumeric(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	assert.Equal(t, "Strong Buy", p.Rating.Label)
	assert.Equal(t, "#15803d", p.Rating.Color)
	assert.Equal(t, "1.2", p.Rating.Score)
}

func TestBuildRatingString(t *testing.T) {
	eq := sampleEquity()
	eq.Financials.AnalystRating = equity.Str("Moderate Buy")
	p := Build(eq, "", "")

	assert.Equal(t, "Buy", p.Rating.Label)
	assert.Empty(t, p.Rating.Score)
}

func TestBuildRatingMissing(t *testing.T) {
	eq := sampleEquity()
	eq.Financials.AnalystRating = nil
	p := Build(eq, "", "")

	assert.Equal(t, "N/A", p.Rating.Label)
	assert.Equal(t, "#808495", p.Rating.Color)
}

func TestBuildRange(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	require.NotNil(t, p.Range)
	assert.Equal(t, "$50.00", p.Range.Low)
	assert.Equal(t, "$100.00", p.Range.High)
	assert.Equal(t, "$75.00", p.Range.Price)
	assert.InDelta(t, 50.0, p.Range.Position, 1e-9)
}

func TestBuildRangeClamped(t *testing.T) {
	eq := sampleEquity()
	eq.Financials.LastPrice = equity.Dec("120")
	p := Build(eq, "", "")
	require.NotNil(t, p.Range)
	assert.Equal(t, 100.0, p.Range.Position)

	eq.Financials.LastPrice = equity.Dec("40")
	p = Build(eq, "", "")
	require.NotNil(t, p.Range)
	assert.Equal(t, 0.0, p.Range.Position)
}

func TestBuildRangeMissing(t *testing.T) {
	eq := sampleEquity()
	eq.Financials.FiftyTwoWeekMax = nil
	assert.Nil(t, Build(eq, "", "").Range)

	// Degenerate range: max not above min
	eq = sampleEquity()
	eq.Financials.FiftyTwoWeekMax = equity.Dec("50")
	assert.Nil(t, Build(eq, "", "").Range)
}

func TestBuildTabs(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	require.Len(t, p.Tabs, 5)
	names := make([]string, len(p.Tabs))
	for i, tab := range p.Tabs {
		names[i] = tab.Name
	}
	assert.Equal(t, []string{"Valuation", "Profitability", "Ownership & Float", "Financials", "Identifiers"}, names)
}

func TestProfitabilityColors(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	profitability := p.Tabs[1]
	byLabel := make(map[string]Metric)
	for _, m := range profitability.Metrics {
		byLabel[m.Label] = m
	}

	assert.Equal(t, "#16a34a", byLabel["Profit Margin"].Color)
	assert.Equal(t, "#dc2626", byLabel["ROE"].Color)
	assert.Empty(t, byLabel["Gross Margin"].Color, "missing value carries no accent")
	assert.Equal(t, "N/A", byLabel["Gross Margin"].Value)
}

func TestIdentifiersTab(t *testing.T) {
	p := Build(sampleEquity(), "", "")

	identifiers := p.Tabs[4]
	byLabel := make(map[string]string)
	for _, m := range identifiers.Metrics {
		byLabel[m.Label] = m.Value
	}

	assert.Equal(t, "ACME", byLabel["Symbol"])
	assert.Equal(t, "BBG000000001", byLabel["Share Class FIGI"])
	assert.Equal(t, "XNAS", byLabel["MICs"])
	assert.Equal(t, "N/A", byLabel["ISIN"])
	assert.Equal(t, "N/A", byLabel["Currency"])
}
