package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwyoon/equityboard/internal/equity"
)

func sampleHistory() []equity.CanonicalEquity {
	return []equity.CanonicalEquity{
		{
			SnapshotDate: equity.Str("2026-06-01"),
			Financials: equity.Financials{
				LastPrice:   equity.Dec("40"),
				GrossMargin: equity.Dec("0.5"),
				TrailingEPS: equity.Dec("1.2"),
			},
		},
		{
			SnapshotDate: equity.Str("2026-07-01"),
			Financials: equity.Financials{
				LastPrice:    equity.Dec("42"),
				GrossMargin:  equity.Dec("0.52"),
				ProfitMargin: equity.Dec("0.12"),
			},
		},
		{
			SnapshotDate: equity.Str("2026-08-01"),
			Financials: equity.Financials{
				LastPrice: equity.Dec("45"),
			},
		},
	}
}

func TestBuildSeries(t *testing.T) {
	s := BuildSeries(sampleHistory())

	assert.Equal(t, []string{"2026-06-01", "2026-07-01", "2026-08-01"}, s.Dates)
	require.Len(t, s.LastPrice, 3)
	assert.Equal(t, 40.0, *s.LastPrice[0])
	assert.Equal(t, 45.0, *s.LastPrice[2])

	// Gaps stay nil to keep series aligned with dates
	require.Len(t, s.ProfitMargin, 3)
	assert.Nil(t, s.ProfitMargin[0])
	assert.Equal(t, 0.12, *s.ProfitMargin[1])
	assert.Nil(t, s.ProfitMargin[2])

	assert.Nil(t, s.Revenue[0])
}

func TestBuildSeriesEmpty(t *testing.T) {
	s := BuildSeries(nil)
	assert.Empty(t, s.Dates)
	assert.Empty(t, s.LastPrice)
}

func TestPriceChart(t *testing.T) {
	s := BuildSeries(sampleHistory())

	c := PriceChart(s)
	require.NotNil(t, c)
	assert.Equal(t, "Price", c.Title)
	require.Len(t, c.Traces, 1)
	assert.Equal(t, "line", c.Traces[0].Kind)

	empty := BuildSeries([]equity.CanonicalEquity{{SnapshotDate: equity.Str("2026-08-01")}})
	assert.Nil(t, PriceChart(empty))
}

func TestMarginChartOnlyAvailableSeries(t *testing.T) {
	s := BuildSeries(sampleHistory())

	c := MarginChart(s)
	require.NotNil(t, c)
	assert.True(t, c.PercentAxis)

	names := make([]string, len(c.Traces))
	for i, tr := range c.Traces {
		names[i] = tr.Name
	}
	assert.Equal(t, []string{"Gross Margin", "Profit Margin"}, names, "operating margin has no data")
}

func TestEarningsChartDualAxis(t *testing.T) {
	history := []equity.CanonicalEquity{
		{SnapshotDate: equity.Str("2026-08-01"), Financials: equity.Financials{
			TrailingEPS:     equity.Dec("1.2"),
			RevenuePerShare: equity.Dec("10"),
		}},
	}
	c := EarningsChart(BuildSeries(history))
	require.NotNil(t, c)
	require.Len(t, c.Traces, 2)

	// Bars first, behind the line
	assert.Equal(t, "bar", c.Traces[0].Kind)
	assert.Equal(t, "right", c.Traces[0].Axis)
	assert.Equal(t, "line", c.Traces[1].Kind)
	assert.Equal(t, "left", c.Traces[1].Axis)
}

func TestEarningsChartEPSOnly(t *testing.T) {
	c := EarningsChart(BuildSeries(sampleHistory()))
	require.NotNil(t, c)
	require.Len(t, c.Traces, 1)
	assert.Equal(t, "Trailing EPS", c.Traces[0].Name)
}

func TestCashFlowChartGrouped(t *testing.T) {
	history := []equity.CanonicalEquity{
		{SnapshotDate: equity.Str("2026-08-01"), Financials: equity.Financials{
			OperatingCashFlow: equity.Dec("700"),
			FreeCashFlow:      equity.Dec("500"),
		}},
	}
	c := CashFlowChart(BuildSeries(history))
	require.NotNil(t, c)
	assert.True(t, c.Grouped)
	assert.Len(t, c.Traces, 2)
}

func TestDebtSharesChart(t *testing.T) {
	history := []equity.CanonicalEquity{
		{SnapshotDate: equity.Str("2026-08-01"), Financials: equity.Financials{
			TotalDebt: equity.Dec("2000"),
		}},
	}
	c := DebtSharesChart(BuildSeries(history))
	require.NotNil(t, c)
	require.Len(t, c.Traces, 1)
	assert.Equal(t, "Total Debt", c.Traces[0].Name)
}

func TestOwnershipChartNilWithoutData(t *testing.T) {
	assert.Nil(t, OwnershipChart(BuildSeries(sampleHistory())))
}

func TestBuildPayloadOmitsEmptyCharts(t *testing.T) {
	p := BuildPayload(BuildSeries(sampleHistory()))

	require.NotNil(t, p.Series)
	assert.NotNil(t, p.Price)
	assert.NotNil(t, p.Margins)
	assert.NotNil(t, p.Earnings)
	assert.Nil(t, p.Valuation)
	assert.Nil(t, p.CashFlow)
	assert.Nil(t, p.DebtShares)
	assert.Nil(t, p.Ownership)
}

func TestBuildPayloadEmptyHistory(t *testing.T) {
	p := BuildPayload(BuildSeries(nil))
	assert.NotNil(t, p.Series)
	assert.Nil(t, p.Price)
}
