package trends

// Trace is one plotted series within a chart
type Trace struct {
	Name   string     `json:"name"`
	Kind   string     `json:"kind"` // "line" or "bar"
	Axis   string     `json:"axis"` // "left" or "right"
	Values []*float64 `json:"values"`
}

// Chart is one renderable chart payload. Percent charts expect the
// client to scale values by 100 on the axis.
type Chart struct {
	Title       string   `json:"title"`
	Dates       []string `json:"dates"`
	LeftAxis    string   `json:"left_axis"`
	RightAxis   string   `json:"right_axis,omitempty"`
	PercentAxis bool     `json:"percent_axis,omitempty"`
	Grouped     bool     `json:"grouped,omitempty"`
	Traces      []Trace  `json:"traces"`
}

// Payload bundles every chart for one equity. Charts with no data are
// nil and omitted from the JSON.
type Payload struct {
	Series     *Series `json:"series"`
	Price      *Chart  `json:"price,omitempty"`
	Margins    *Chart  `json:"margins,omitempty"`
	Earnings   *Chart  `json:"earnings,omitempty"`
	Valuation  *Chart  `json:"valuation,omitempty"`
	CashFlow   *Chart  `json:"cash_flow,omitempty"`
	DebtShares *Chart  `json:"debt_shares,omitempty"`
	Ownership  *Chart  `json:"ownership,omitempty"`
}

// BuildPayload builds the full trends payload from a series
func BuildPayload(s *Series) *Payload {
	return &Payload{
		Series:     s,
		Price:      PriceChart(s),
		Margins:    MarginChart(s),
		Earnings:   EarningsChart(s),
		Valuation:  ValuationChart(s),
		CashFlow:   CashFlowChart(s),
		DebtShares: DebtSharesChart(s),
		Ownership:  OwnershipChart(s),
	}
}

// PriceChart is the last price line
func PriceChart(s *Series) *Chart {
	if !hasData(s.LastPrice) {
		return nil
	}
	return &Chart{
		Title:    "Price",
		Dates:    s.Dates,
		LeftAxis: "Price",
		Traces:   []Trace{{Name: "Price", Kind: "line", Axis: "left", Values: s.LastPrice}},
	}
}

// MarginChart overlays gross, operating, and profit margins
func MarginChart(s *Series) *Chart {
	traces := lines(map[string][]*float64{
		"Gross Margin":     s.GrossMargin,
		"Operating Margin": s.OperatingMargin,
		"Profit Margin":    s.ProfitMargin,
	}, []string{"Gross Margin", "Operating Margin", "Profit Margin"})
	if len(traces) == 0 {
		return nil
	}
	return &Chart{
		Title:       "Margins",
		Dates:       s.Dates,
		LeftAxis:    "Margin",
		PercentAxis: true,
		Traces:      traces,
	}
}

// EarningsChart pairs the EPS line with revenue-per-share bars on a
// second axis
func EarningsChart(s *Series) *Chart {
	hasEPS := hasData(s.TrailingEPS)
	hasRev := hasData(s.RevenuePerShare)
	if !hasEPS && !hasRev {
		return nil
	}

	c := &Chart{
		Title:     "Earnings",
		Dates:     s.Dates,
		LeftAxis:  "EPS",
		RightAxis: "Revenue/Share",
	}
	if hasRev {
		c.Traces = append(c.Traces, Trace{Name: "Revenue/Share", Kind: "bar", Axis: "right", Values: s.RevenuePerShare})
	}
	if hasEPS {
		c.Traces = append(c.Traces, Trace{Name: "Trailing EPS", Kind: "line", Axis: "left", Values: s.TrailingEPS})
	}
	return c
}

// ValuationChart overlays the P/B and P/E ratios
func ValuationChart(s *Series) *Chart {
	traces := lines(map[string][]*float64{
		"P/B": s.PriceToBook,
		"P/E": s.TrailingPE,
	}, []string{"P/B", "P/E"})
	if len(traces) == 0 {
		return nil
	}
	return &Chart{
		Title:    "Valuation",
		Dates:    s.Dates,
		LeftAxis: "Ratio",
		Traces:   traces,
	}
}

// CashFlowChart groups operating and free cash flow bars
func CashFlowChart(s *Series) *Chart {
	var traces []Trace
	for _, col := range []struct {
		name   string
		values []*float64
	}{
		{"Operating Cash Flow", s.OperatingCashFlow},
		{"Free Cash Flow", s.FreeCashFlow},
	} {
		if hasData(col.values) {
			traces = append(traces, Trace{Name: col.name, Kind: "bar", Axis: "left", Values: col.values})
		}
	}
	if len(traces) == 0 {
		return nil
	}
	return &Chart{
		Title:    "Cash Flow",
		Dates:    s.Dates,
		LeftAxis: "Cash Flow",
		Grouped:  true,
		Traces:   traces,
	}
}

// DebtSharesChart pairs total debt bars with the shares outstanding
// line on a second axis
func DebtSharesChart(s *Series) *Chart {
	hasDebt := hasData(s.TotalDebt)
	hasShares := hasData(s.SharesOutstanding)
	if !hasDebt && !hasShares {
		return nil
	}

	c := &Chart{
		Title:     "Debt & Shares",
		Dates:     s.Dates,
		LeftAxis:  "Total Debt",
		RightAxis: "Shares Outstanding",
	}
	if hasDebt {
		c.Traces = append(c.Traces, Trace{Name: "Total Debt", Kind: "bar", Axis: "left", Values: s.TotalDebt})
	}
	if hasShares {
		c.Traces = append(c.Traces, Trace{Name: "Shares Outstanding", Kind: "line", Axis: "right", Values: s.SharesOutstanding})
	}
	return c
}

// OwnershipChart overlays insider and institutional holdings
func OwnershipChart(s *Series) *Chart {
	traces := lines(map[string][]*float64{
		"Insiders":     s.HeldInsiders,
		"Institutions": s.HeldInstitutions,
	}, []string{"Insiders", "Institutions"})
	if len(traces) == 0 {
		return nil
	}
	return &Chart{
		Title:       "Ownership",
		Dates:       s.Dates,
		LeftAxis:    "Ownership %",
		PercentAxis: true,
		Traces:      traces,
	}
}

// lines builds line traces for the columns that have data, in the given
// order
func lines(columns map[string][]*float64, order []string) []Trace {
	var traces []Trace
	for _, name := range order {
		if values := columns[name]; hasData(values) {
			traces = append(traces, Trace{Name: name, Kind: "line", Axis: "left", Values: values})
		}
	}
	return traces
}
