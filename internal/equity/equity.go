package equity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CanonicalEquity is one deduplicated, normalized security from the
// upstream aggregation service. Every field is independently nullable;
// consumers must treat a nil field as "not reported", never as zero.
type CanonicalEquity struct {
	SnapshotDate *string    `json:"snapshot_date"` // ISO date (YYYY-MM-DD)
	Identity     Identity   `json:"identity"`
	Financials   Financials `json:"financials"`
}

// Identity groups the naming and identifier-code fields
type Identity struct {
	Name           *string `json:"name"`
	Symbol         *string `json:"symbol"`
	ShareClassFIGI *string `json:"share_class_figi"`
	ISIN           *string `json:"isin"`
	CUSIP          *string `json:"cusip"`
	CIK            *string `json:"cik"`
	LEI            *string `json:"lei"`
}

// Financials groups the 31 reported financial fields.
// Ratios and percentages are decimal fractions (0.15 = 15%).
type Financials struct {
	MICs     []string `json:"mics"`
	Currency *string  `json:"currency"`

	LastPrice       *decimal.Decimal `json:"last_price"`
	MarketCap       *decimal.Decimal `json:"market_cap"`
	FiftyTwoWeekMin *decimal.Decimal `json:"fifty_two_week_min"`
	FiftyTwoWeekMax *decimal.Decimal `json:"fifty_two_week_max"`
	DividendYield   *decimal.Decimal `json:"dividend_yield"`
	MarketVolume    *decimal.Decimal `json:"market_volume"`

	HeldInsiders      *decimal.Decimal `json:"held_insiders"`
	HeldInstitutions  *decimal.Decimal `json:"held_institutions"`
	ShortInterest     *decimal.Decimal `json:"short_interest"`
	ShareFloat        *decimal.Decimal `json:"share_float"`
	SharesOutstanding *decimal.Decimal `json:"shares_outstanding"`

	RevenuePerShare *decimal.Decimal `json:"revenue_per_share"`

	ProfitMargin    *decimal.Decimal `json:"profit_margin"`
	GrossMargin     *decimal.Decimal `json:"gross_margin"`
	OperatingMargin *decimal.Decimal `json:"operating_margin"`

	FreeCashFlow      *decimal.Decimal `json:"free_cash_flow"`
	OperatingCashFlow *decimal.Decimal `json:"operating_cash_flow"`

	ReturnOnEquity   *decimal.Decimal `json:"return_on_equity"`
	ReturnOnAssets   *decimal.Decimal `json:"return_on_assets"`
	Performance1Year *decimal.Decimal `json:"performance_1_year"`

	TotalDebt *decimal.Decimal `json:"total_debt"`
	Revenue   *decimal.Decimal `json:"revenue"`
	EBITDA    *decimal.Decimal `json:"ebitda"`

	TrailingPE  *decimal.Decimal `json:"trailing_pe"`
	PriceToBook *decimal.Decimal `json:"price_to_book"`
	TrailingEPS *decimal.Decimal `json:"trailing_eps"`

	AnalystRating *string `json:"analyst_rating"`
	Industry      *string `json:"industry"`
	Sector        *string `json:"sector"`
}

// JoinedMICs returns the MIC codes as a comma-separated string, or ""
// when none are reported.
func (f *Financials) JoinedMICs() string {
	return strings.Join(f.MICs, ", ")
}
