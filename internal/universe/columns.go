// Package universe builds the grid view of the full equity set: a fixed
// column registry with header groups and formatter classes, display
// rows, and the quick-filter text used by the search index.
package universe

import (
	"github.com/shopspring/decimal"

	"github.com/jwyoon/equityboard/internal/equity"
)

// Class selects the display formatter for a column
type Class int

const (
	ClassText Class = iota
	ClassCurrency
	ClassLargeCurrency
	ClassPercentage
	ClassLargeNumber
	ClassRatio
)

// ColumnSpec maps one display column to an explicit accessor on the
// canonical record. Decimal values surface as float64, lists as joined
// strings; accessors never fail on missing data.
type ColumnSpec struct {
	Name       string
	Class      Class
	Identifier bool
	PctStyle   bool
	Value      func(*equity.CanonicalEquity) interface{}
}

// ColumnGroup is a named header group of display columns
type ColumnGroup struct {
	Header  string   `json:"header"`
	Columns []string `json:"columns"`
}

type dv = decimal.Decimal

func str(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// dec adapts a financials accessor into a column value function.
// Decimals surface as float64 for the grid's numeric filters.
func dec(get func(*equity.Financials) *dv) func(*equity.CanonicalEquity) interface{} {
	return func(e *equity.CanonicalEquity) interface{} {
		d := get(&e.Financials)
		if d == nil {
			return nil
		}
		return d.InexactFloat64()
	}
}

// Columns returns the 38 display columns in grid order
func Columns() []ColumnSpec {
	return []ColumnSpec{
		{Name: "Name", Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.Name) }},
		{Name: "Symbol", Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.Symbol) }},
		{Name: "Share Class FIGI", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.ShareClassFIGI) }},
		{Name: "ISIN", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.ISIN) }},
		{Name: "CUSIP", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.CUSIP) }},
		{Name: "CIK", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.CIK) }},
		{Name: "LEI", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Identity.LEI) }},
		{Name: "MICs", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} {
			if len(e.Financials.MICs) == 0 {
				return nil
			}
			return e.Financials.JoinedMICs()
		}},
		{Name: "Currency", Identifier: true, Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Financials.Currency) }},
		{Name: "Last Price", Class: ClassCurrency, Value: dec(func(f *equity.Financials) *dv { return f.LastPrice })},
		{Name: "Market Cap", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.MarketCap })},
		{Name: "52W Min", Class: ClassCurrency, Value: dec(func(f *equity.Financials) *dv { return f.FiftyTwoWeekMin })},
		{Name: "52W Max", Class: ClassCurrency, Value: dec(func(f *equity.Financials) *dv { return f.FiftyTwoWeekMax })},
		{Name: "Dividend Yield", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.DividendYield })},
		{Name: "Market Volume", Class: ClassLargeNumber, Value: dec(func(f *equity.Financials) *dv { return f.MarketVolume })},
		{Name: "Held Insiders", Class: ClassPercentage, Value: dec(func(f *equity.Financials) *dv { return f.HeldInsiders })},
		{Name: "Held Institutions", Class: ClassPercentage, Value: dec(func(f *equity.Financials) *dv { return f.HeldInstitutions })},
		{Name: "Short Interest", Class: ClassPercentage, Value: dec(func(f *equity.Financials) *dv { return f.ShortInterest })},
		{Name: "Share Float", Class: ClassLargeNumber, Value: dec(func(f *equity.Financials) *dv { return f.ShareFloat })},
		{Name: "Shares Outstanding", Class: ClassLargeNumber, Value: dec(func(f *equity.Financials) *dv { return f.SharesOutstanding })},
		{Name: "Revenue/Share", Class: ClassCurrency, Value: dec(func(f *equity.Financials) *dv { return f.RevenuePerShare })},
		{Name: "Profit Margin", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.ProfitMargin })},
		{Name: "Gross Margin", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.GrossMargin })},
		{Name: "Operating Margin", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.OperatingMargin })},
		{Name: "Free Cash Flow", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.FreeCashFlow })},
		{Name: "Operating Cash Flow", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.OperatingCashFlow })},
		{Name: "ROE", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.ReturnOnEquity })},
		{Name: "ROA", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.ReturnOnAssets })},
		{Name: "1Y Performance", Class: ClassPercentage, PctStyle: true, Value: dec(func(f *equity.Financials) *dv { return f.Performance1Year })},
		{Name: "Total Debt", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.TotalDebt })},
		{Name: "Revenue", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.Revenue })},
		{Name: "EBITDA", Class: ClassLargeCurrency, Value: dec(func(f *equity.Financials) *dv { return f.EBITDA })},
		{Name: "Trailing P/E", Class: ClassRatio, Value: dec(func(f *equity.Financials) *dv { return f.TrailingPE })},
		{Name: "Price/Book", Class: ClassRatio, Value: dec(func(f *equity.Financials) *dv { return f.PriceToBook })},
		{Name: "Trailing EPS", Class: ClassCurrency, Value: dec(func(f *equity.Financials) *dv { return f.TrailingEPS })},
		{Name: "Analyst Rating", Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Financials.AnalystRating) }},
		{Name: "Industry", Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Financials.Industry) }},
		{Name: "Sector", Value: func(e *equity.CanonicalEquity) interface{} { return str(e.Financials.Sector) }},
	}
}

// Groups returns the 8 header groups. Columns outside every group
// render ungrouped after them.
func Groups() []ColumnGroup {
	return []ColumnGroup{
		{Header: "Equity", Columns: []string{"Name", "Symbol"}},
		{Header: "Market", Columns: []string{"Last Price", "Market Cap", "52W Min", "52W Max", "Market Volume"}},
		{Header: "Ownership", Columns: []string{"Held Insiders", "Held Institutions", "Short Interest", "Share Float", "Shares Outstanding"}},
		{Header: "Valuation", Columns: []string{"Trailing P/E", "Price/Book", "Trailing EPS", "Revenue/Share", "Dividend Yield"}},
		{Header: "Profitability", Columns: []string{"Profit Margin", "Gross Margin", "Operating Margin", "ROE", "ROA"}},
		{Header: "Financials", Columns: []string{"Revenue", "EBITDA", "Free Cash Flow", "Operating Cash Flow", "Total Debt"}},
		{Header: "Performance", Columns: []string{"1Y Performance", "Analyst Rating"}},
		{Header: "Classification", Columns: []string{"Industry", "Sector"}},
	}
}
