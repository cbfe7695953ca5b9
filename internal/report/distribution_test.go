package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwyoon/equityboard/internal/equity"
)

func TestBuildMarketCapDistribution(t *testing.T) {
	equities := []equity.CanonicalEquity{
		{Financials: equity.Financials{MarketCap: equity.Dec("40000000")}},     // Nano
		{Financials: equity.Financials{MarketCap: equity.Dec("50000000")}},     // Micro (lower bound inclusive)
		{Financials: equity.Financials{MarketCap: equity.Dec("1500000000")}},   // Small
		{Financials: equity.Financials{MarketCap: equity.Dec("250000000000")}}, // Mega
		{Financials: equity.Financials{MarketCap: equity.Dec("-5")}},           // excluded
		{Financials: equity.Financials{MarketCap: equity.Dec("0")}},            // excluded
		{Financials: equity.Financials{}},                                      // excluded
	}

	dist := BuildMarketCapDistribution(equities)

	assert.Equal(t, 4, dist.Count)
	assert.Len(t, dist.Tiers, 6)

	counts := make(map[string]int)
	for _, tier := range dist.Tiers {
		counts[tier.Label] = tier.Count
	}
	assert.Equal(t, 1, counts["Nano (<$50M)"])
	assert.Equal(t, 1, counts["Micro ($50M-$300M)"])
	assert.Equal(t, 1, counts["Small ($300M-$2B)"])
	assert.Equal(t, 0, counts["Mid ($2B-$10B)"])
	assert.Equal(t, 0, counts["Large ($10B-$200B)"])
	assert.Equal(t, 1, counts["Mega (>$200B)"])

	assert.InDelta(t, (50e6+1.5e9)/2, dist.Median, 1e-3)
}

func TestBuildMarketCapDistributionEmpty(t *testing.T) {
	dist := BuildMarketCapDistribution(nil)

	assert.Equal(t, 0, dist.Count)
	assert.Equal(t, 0.0, dist.Median)
	assert.Equal(t, 0.0, dist.Mean)
	for _, tier := range dist.Tiers {
		assert.Equal(t, 0, tier.Count)
	}
}

func TestCompletenessScore(t *testing.T) {
	fields := equity.FinancialFields()

	empty := equity.CanonicalEquity{}
	assert.Equal(t, 0, CompletenessScore(&empty, fields))

	full := fullyPopulatedEquity()
	assert.Equal(t, 31, CompletenessScore(&full, fields))

	partial := equity.CanonicalEquity{Financials: equity.Financials{
		MICs:              []string{"XNAS"},
		Currency:          equity.Str("USD"),
		LastPrice:         equity.Dec("10"),
		MarketCap:         equity.Dec("1000"),
		FiftyTwoWeekMin:   equity.Dec("5"),
		FiftyTwoWeekMax:   equity.Dec("15"),
		DividendYield:     equity.Dec("0.02"),
		MarketVolume:      equity.Dec("100000"),
		HeldInsiders:      equity.Dec("0.1"),
		HeldInstitutions:  equity.Dec("0.6"),
		ShortInterest:     equity.Dec("0.01"),
		ShareFloat:        equity.Dec("900"),
		SharesOutstanding: equity.Dec("1000"),
		RevenuePerShare:   equity.Dec("3"),
		ProfitMargin:      equity.Dec("0.1"),
	}}
	assert.Equal(t, 15, CompletenessScore(&partial, fields))
}

func TestBuildCompletenessDistribution(t *testing.T) {
	full := fullyPopulatedEquity()
	equities := []equity.CanonicalEquity{
		{}, // score 0
		full,
		{Financials: equity.Financials{Currency: equity.Str("USD")}}, // score 1
	}

	dist := BuildCompletenessDistribution(equities)

	assert.Equal(t, 3, dist.Count)
	assert.Equal(t, 31, dist.MaxFields)
	assert.Len(t, dist.Histogram, 32)
	assert.Equal(t, 1.0, dist.Median)
	assert.InDelta(t, 32.0/3.0, dist.Mean, 1e-9)

	assert.Equal(t, 1, dist.Histogram[0].Count)
	assert.Equal(t, 1, dist.Histogram[1].Count)
	assert.Equal(t, 1, dist.Histogram[31].Count)
	assert.InDelta(t, 100.0/3.0, dist.Histogram[31].Pct, 1e-9)
	assert.Equal(t, 0, dist.Histogram[15].Count)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 7},
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count midpoint", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, median(tt.values))
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func fullyPopulatedEquity() equity.CanonicalEquity {
	return equity.CanonicalEquity{Financials: equity.Financials{
		MICs:              []string{"XNAS"},
		Currency:          equity.Str("USD"),
		LastPrice:         equity.Dec("10"),
		MarketCap:         equity.Dec("1000"),
		FiftyTwoWeekMin:   equity.Dec("5"),
		FiftyTwoWeekMax:   equity.Dec("15"),
		DividendYield:     equity.Dec("0.02"),
		MarketVolume:      equity.Dec("100000"),
		HeldInsiders:      equity.Dec("0.1"),
		HeldInstitutions:  equity.Dec("0.6"),
		ShortInterest:     equity.Dec("0.01"),
		ShareFloat:        equity.Dec("900"),
		SharesOutstanding: equity.Dec("1000"),
		RevenuePerShare:   equity.Dec("3"),
		ProfitMargin:      equity.Dec("0.1"),
		GrossMargin:       equity.Dec("0.4"),
		OperatingMargin:   equity.Dec("0.2"),
		FreeCashFlow:      equity.Dec("500"),
		OperatingCashFlow: equity.Dec("700"),
		ReturnOnEquity:    equity.Dec("0.15"),
		ReturnOnAssets:    equity.Dec("0.08"),
		Performance1Year:  equity.Dec("0.25"),
		TotalDebt:         equity.Dec("2000"),
		Revenue:           equity.Dec("3000"),
		EBITDA:            equity.Dec("800"),
		TrailingPE:        equity.Dec("20"),
		PriceToBook:       equity.Dec("3"),
		TrailingEPS:       equity.Dec("0.5"),
		AnalystRating:     equity.Str("Buy"),
		Industry:          equity.Str("Semiconductors"),
		Sector:            equity.Str("Technology"),
	}}
}
