// Package trends turns an equity's snapshot history into time series
// and chart payloads. Builders return nil when their columns carry no
// data so clients can skip empty charts.
package trends

import (
	"github.com/shopspring/decimal"

	"github.com/jwyoon/equityboard/internal/equity"
)

// Series holds the historical columns, one entry per snapshot, oldest
// first. Missing values stay nil to keep the series aligned with Dates.
type Series struct {
	Dates []string `json:"dates"`

	LastPrice         []*float64 `json:"last_price"`
	TrailingPE        []*float64 `json:"trailing_pe"`
	PriceToBook       []*float64 `json:"price_to_book"`
	TrailingEPS       []*float64 `json:"trailing_eps"`
	RevenuePerShare   []*float64 `json:"revenue_per_share"`
	ProfitMargin      []*float64 `json:"profit_margin"`
	GrossMargin       []*float64 `json:"gross_margin"`
	OperatingMargin   []*float64 `json:"operating_margin"`
	OperatingCashFlow []*float64 `json:"operating_cash_flow"`
	FreeCashFlow      []*float64 `json:"free_cash_flow"`
	TotalDebt         []*float64 `json:"total_debt"`
	SharesOutstanding []*float64 `json:"shares_outstanding"`
	HeldInsiders      []*float64 `json:"held_insiders"`
	HeldInstitutions  []*float64 `json:"held_institutions"`
	Revenue           []*float64 `json:"revenue"`
	EBITDA            []*float64 `json:"ebitda"`
}

// BuildSeries maps history snapshots into aligned columns
func BuildSeries(history []equity.CanonicalEquity) *Series {
	n := len(history)
	s := &Series{
		Dates:             make([]string, n),
		LastPrice:         make([]*float64, n),
		TrailingPE:        make([]*float64, n),
		PriceToBook:       make([]*float64, n),
		TrailingEPS:       make([]*float64, n),
		RevenuePerShare:   make([]*float64, n),
		ProfitMargin:      make([]*float64, n),
		GrossMargin:       make([]*float64, n),
		OperatingMargin:   make([]*float64, n),
		OperatingCashFlow: make([]*float64, n),
		FreeCashFlow:      make([]*float64, n),
		TotalDebt:         make([]*float64, n),
		SharesOutstanding: make([]*float64, n),
		HeldInsiders:      make([]*float64, n),
		HeldInstitutions:  make([]*float64, n),
		Revenue:           make([]*float64, n),
		EBITDA:            make([]*float64, n),
	}

	for i := range history {
		if d := history[i].SnapshotDate; d != nil {
			s.Dates[i] = *d
		}
		f := &history[i].Financials
		s.LastPrice[i] = toFloat(f.LastPrice)
		s.TrailingPE[i] = toFloat(f.TrailingPE)
		s.PriceToBook[i] = toFloat(f.PriceToBook)
		s.TrailingEPS[i] = toFloat(f.TrailingEPS)
		s.RevenuePerShare[i] = toFloat(f.RevenuePerShare)
		s.ProfitMargin[i] = toFloat(f.ProfitMargin)
		s.GrossMargin[i] = toFloat(f.GrossMargin)
		s.OperatingMargin[i] = toFloat(f.OperatingMargin)
		s.OperatingCashFlow[i] = toFloat(f.OperatingCashFlow)
		s.FreeCashFlow[i] = toFloat(f.FreeCashFlow)
		s.TotalDebt[i] = toFloat(f.TotalDebt)
		s.SharesOutstanding[i] = toFloat(f.SharesOutstanding)
		s.HeldInsiders[i] = toFloat(f.HeldInsiders)
		s.HeldInstitutions[i] = toFloat(f.HeldInstitutions)
		s.Revenue[i] = toFloat(f.Revenue)
		s.EBITDA[i] = toFloat(f.EBITDA)
	}
	return s
}

func toFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// hasData reports whether a column contains at least one value
func hasData(values []*float64) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}
