package equity

// FieldSpec names one field of the canonical record and knows how to
// tell whether a given record has it populated. Accessors are explicit
// per field; there is no reflective path resolution anywhere.
type FieldSpec struct {
	Label     string
	Populated func(*CanonicalEquity) bool
}

// IdentityFields returns the 7 identity field specifications, in
// report order.
func IdentityFields() []FieldSpec {
	return []FieldSpec{
		{"Name", func(e *CanonicalEquity) bool { return e.Identity.Name != nil }},
		{"Symbol", func(e *CanonicalEquity) bool { return e.Identity.Symbol != nil }},
		{"FIGI", func(e *CanonicalEquity) bool { return e.Identity.ShareClassFIGI != nil }},
		{"ISIN", func(e *CanonicalEquity) bool { return e.Identity.ISIN != nil }},
		{"CUSIP", func(e *CanonicalEquity) bool { return e.Identity.CUSIP != nil }},
		{"CIK", func(e *CanonicalEquity) bool { return e.Identity.CIK != nil }},
		{"LEI", func(e *CanonicalEquity) bool { return e.Identity.LEI != nil }},
	}
}

// FinancialFields returns the 31 financial field specifications, in
// report order. Completeness scores are counts over this exact list.
func FinancialFields() []FieldSpec {
	return []FieldSpec{
		{"MICs", func(e *CanonicalEquity) bool { return e.Financials.MICs != nil }},
		{"Currency", func(e *CanonicalEquity) bool { return e.Financials.Currency != nil }},
		{"Last Price", func(e *CanonicalEquity) bool { return e.Financials.LastPrice != nil }},
		{"Market Cap", func(e *CanonicalEquity) bool { return e.Financials.MarketCap != nil }},
		{"52W Min", func(e *CanonicalEquity) bool { return e.Financials.FiftyTwoWeekMin != nil }},
		{"52W Max", func(e *CanonicalEquity) bool { return e.Financials.FiftyTwoWeekMax != nil }},
		{"Dividend Yield", func(e *CanonicalEquity) bool { return e.Financials.DividendYield != nil }},
		{"Market Volume", func(e *CanonicalEquity) bool { return e.Financials.MarketVolume != nil }},
		{"Held Insiders", func(e *CanonicalEquity) bool { return e.Financials.HeldInsiders != nil }},
		{"Held Institutions", func(e *CanonicalEquity) bool { return e.Financials.HeldInstitutions != nil }},
		{"Short Interest", func(e *CanonicalEquity) bool { return e.Financials.ShortInterest != nil }},
		{"Share Float", func(e *CanonicalEquity) bool { return e.Financials.ShareFloat != nil }},
		{"Shares Outstanding", func(e *CanonicalEquity) bool { return e.Financials.SharesOutstanding != nil }},
		{"Revenue/Share", func(e *CanonicalEquity) bool { return e.Financials.RevenuePerShare != nil }},
		{"Profit Margin", func(e *CanonicalEquity) bool { return e.Financials.ProfitMargin != nil }},
		{"Gross Margin", func(e *CanonicalEquity) bool { return e.Financials.GrossMargin != nil }},
		{"Operating Margin", func(e *CanonicalEquity) bool { return e.Financials.OperatingMargin != nil }},
		{"Free Cash Flow", func(e *CanonicalEquity) bool { return e.Financials.FreeCashFlow != nil }},
		{"Operating Cash Flow", func(e *CanonicalEquity) bool { return e.Financials.OperatingCashFlow != nil }},
		{"ROE", func(e *CanonicalEquity) bool { return e.Financials.ReturnOnEquity != nil }},
		{"ROA", func(e *CanonicalEquity) bool { return e.Financials.ReturnOnAssets != nil }},
		{"1Y Performance", func(e *CanonicalEquity) bool { return e.Financials.Performance1Year != nil }},
		{"Total Debt", func(e *CanonicalEquity) bool { return e.Financials.TotalDebt != nil }},
		{"Revenue", func(e *CanonicalEquity) bool { return e.Financials.Revenue != nil }},
		{"EBITDA", func(e *CanonicalEquity) bool { return e.Financials.EBITDA != nil }},
		{"Trailing P/E", func(e *CanonicalEquity) bool { return e.Financials.TrailingPE != nil }},
		{"Price/Book", func(e *CanonicalEquity) bool { return e.Financials.PriceToBook != nil }},
		{"Trailing EPS", func(e *CanonicalEquity) bool { return e.Financials.TrailingEPS != nil }},
		{"Analyst Rating", func(e *CanonicalEquity) bool { return e.Financials.AnalystRating != nil }},
		{"Industry", func(e *CanonicalEquity) bool { return e.Financials.Industry != nil }},
		{"Sector", func(e *CanonicalEquity) bool { return e.Financials.Sector != nil }},
	}
}

// HeatmapFields returns the financial fields minus those trivially at
// 100% once records are grouped by sector (industry, sector, currency).
func HeatmapFields() []FieldSpec {
	excluded := map[string]bool{
		"Industry": true,
		"Sector":   true,
		"Currency": true,
	}

	fields := FinancialFields()
	kept := make([]FieldSpec, 0, len(fields))
	for _, f := range fields {
		if !excluded[f.Label] {
			kept = append(kept, f)
		}
	}
	return kept
}
