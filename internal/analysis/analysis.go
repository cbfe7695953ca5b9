// Package analysis builds the single-equity detail payload: header with
// classification badges, headline metrics, the 52-week range position,
// and the detail tabs.
package analysis

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jwyoon/equityboard/internal/equity"
	"github.com/jwyoon/equityboard/internal/format"
)

// Positive/negative accents for percentage metrics
const (
	positiveColor = "#16a34a"
	negativeColor = "#dc2626"
)

// Metric is one labelled display value. Color is set only for metrics
// with a directional accent.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	Color string `json:"color,omitempty"`
}

// Rating is the analyst rating metric with its colour and the raw
// numeric score when one was reported
type Rating struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Score string `json:"score,omitempty"`
}

// Header carries the page heading content
type Header struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	LogoURL  string  `json:"logo_url,omitempty"`
	Sector   *string `json:"sector,omitempty"`
	Industry *string `json:"industry,omitempty"`
}

// RangePosition locates the last price within the 52-week range.
// Position is a percentage clamped to [0,100].
type RangePosition struct {
	Low      string  `json:"low"`
	High     string  `json:"high"`
	Price    string  `json:"price"`
	Position float64 `json:"position"`
}

// Tab is one named group of detail metrics
type Tab struct {
	Name    string   `json:"name"`
	Metrics []Metric `json:"metrics"`
}

// Payload is the full analysis response for one equity
type Payload struct {
	Header         Header         `json:"header"`
	Banner         []Metric       `json:"banner"`
	Rating         Rating         `json:"rating"`
	Range          *RangePosition `json:"range,omitempty"`
	Tabs           []Tab          `json:"tabs"`
	ResolvedSymbol string         `json:"resolved_symbol,omitempty"`
}

// Build assembles the analysis payload. The resolved symbol and logo
// URL come from the scanner and may be empty.
func Build(eq *equity.CanonicalEquity, resolvedSymbol, logoURL string) *Payload {
	f := &eq.Financials
	return &Payload{
		Header:         buildHeader(eq, logoURL),
		Banner:         buildBanner(f),
		Rating:         buildRating(f.AnalystRating),
		Range:          buildRange(f),
		Tabs:           buildTabs(eq),
		ResolvedSymbol: resolvedSymbol,
	}
}

func buildHeader(eq *equity.CanonicalEquity, logoURL string) Header {
	h := Header{
		LogoURL:  logoURL,
		Sector:   eq.Financials.Sector,
		Industry: eq.Financials.Industry,
	}
	if eq.Identity.Name != nil {
		h.Name = *eq.Identity.Name
	}
	if eq.Identity.Symbol != nil {
		h.Symbol = *eq.Identity.Symbol
	}
	return h
}

func buildBanner(f *equity.Financials) []Metric {
	price := Metric{Label: "Last Price", Value: format.Currency(f.LastPrice)}
	if f.Performance1Year != nil {
		price.Delta = format.Pct(f.Performance1Year) + " (1Y)"
	}
	return []Metric{
		price,
		{Label: "Market Cap", Value: format.Currency(f.MarketCap)},
		{Label: "Trailing P/E", Value: format.Ratio(f.TrailingPE)},
		{Label: "Dividend Yield", Value: format.Pct(f.DividendYield)},
	}
}

func buildRating(raw *string) Rating {
	result := format.AnalystRating(raw)
	rating := Rating{Label: result.Label, Color: result.Color}
	if raw != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64); err == nil {
			rating.Score = format.Number(v, 1)
		}
	}
	return rating
}

// buildRange needs all three prices and a non-degenerate range
func buildRange(f *equity.Financials) *RangePosition {
	low := f.FiftyTwoWeekMin
	high := f.FiftyTwoWeekMax
	price := f.LastPrice
	if low == nil || high == nil || price == nil || !high.GreaterThan(*low) {
		return nil
	}

	span := high.Sub(*low)
	position := price.Sub(*low).Div(span).InexactFloat64() * 100
	if position < 0 {
		position = 0
	}
	if position > 100 {
		position = 100
	}

	return &RangePosition{
		Low:      format.Currency(low),
		High:     format.Currency(high),
		Price:    format.Currency(price),
		Position: position,
	}
}

func buildTabs(eq *equity.CanonicalEquity) []Tab {
	f := &eq.Financials
	return []Tab{
		{Name: "Valuation", Metrics: []Metric{
			{Label: "Trailing P/E", Value: format.Ratio(f.TrailingPE)},
			{Label: "Price/Book", Value: format.Ratio(f.PriceToBook)},
			{Label: "Trailing EPS", Value: format.Currency(f.TrailingEPS)},
			{Label: "Dividend Yield", Value: format.Pct(f.DividendYield)},
			{Label: "Market Volume", Value: format.LargeNumber(f.MarketVolume)},
			{Label: "Revenue/Share", Value: format.Currency(f.RevenuePerShare)},
			{Label: "52W Min", Value: format.Currency(f.FiftyTwoWeekMin)},
			{Label: "52W Max", Value: format.Currency(f.FiftyTwoWeekMax)},
		}},
		{Name: "Profitability", Metrics: []Metric{
			coloredPct("Profit Margin", f.ProfitMargin),
			coloredPct("Gross Margin", f.GrossMargin),
			coloredPct("Operating Margin", f.OperatingMargin),
			coloredPct("ROE", f.ReturnOnEquity),
			coloredPct("ROA", f.ReturnOnAssets),
			coloredPct("1Y Performance", f.Performance1Year),
		}},
		{Name: "Ownership & Float", Metrics: []Metric{
			{Label: "Held by Insiders", Value: format.Pct(f.HeldInsiders)},
			{Label: "Held by Institutions", Value: format.Pct(f.HeldInstitutions)},
			{Label: "Short Interest", Value: format.LargeNumber(f.ShortInterest)},
			{Label: "Share Float", Value: format.LargeNumber(f.ShareFloat)},
			{Label: "Shares Outstanding", Value: format.LargeNumber(f.SharesOutstanding)},
			{Label: "Market Cap", Value: format.Currency(f.MarketCap)},
		}},
		{Name: "Financials", Metrics: []Metric{
			{Label: "Revenue", Value: format.Currency(f.Revenue)},
			{Label: "EBITDA", Value: format.Currency(f.EBITDA)},
			{Label: "Total Debt", Value: format.Currency(f.TotalDebt)},
			{Label: "Free Cash Flow", Value: format.Currency(f.FreeCashFlow)},
			{Label: "Operating Cash Flow", Value: format.Currency(f.OperatingCashFlow)},
			{Label: "Revenue/Share", Value: format.Currency(f.RevenuePerShare)},
		}},
		{Name: "Identifiers", Metrics: []Metric{
			identifier("Symbol", eq.Identity.Symbol),
			identifier("Share Class FIGI", eq.Identity.ShareClassFIGI),
			identifier("ISIN", eq.Identity.ISIN),
			identifier("CUSIP", eq.Identity.CUSIP),
			identifier("CIK", eq.Identity.CIK),
			identifier("LEI", eq.Identity.LEI),
			micsIdentifier(f),
			identifier("Currency", f.Currency),
		}},
	}
}

// coloredPct accents positive values green and negative red
func coloredPct(label string, value *decimal.Decimal) Metric {
	m := Metric{Label: label, Value: format.Pct(value)}
	if value == nil {
		return m
	}
	if value.IsPositive() {
		m.Color = positiveColor
	} else if value.IsNegative() {
		m.Color = negativeColor
	}
	return m
}

func identifier(label string, value *string) Metric {
	if value == nil {
		return Metric{Label: label, Value: format.NotAvailable}
	}
	return Metric{Label: label, Value: *value}
}

func micsIdentifier(f *equity.Financials) Metric {
	if len(f.MICs) == 0 {
		return Metric{Label: "MICs", Value: format.NotAvailable}
	}
	return Metric{Label: "MICs", Value: f.JoinedMICs()}
}
