package report

import (
	"github.com/shopspring/decimal"

	"github.com/jwyoon/equityboard/internal/equity"
)

// Tolerances and thresholds shared by the plausibility checks. The 5%
// tolerances accommodate stale range data and rounding across sources.
var (
	rangeTolerance     = decimal.RequireFromString("1.05")
	holdingsLimit      = decimal.RequireFromString("1.05")
	yieldLimit         = decimal.NewFromInt(1)
	peMagnitudeLimit   = decimal.NewFromInt(1000)
	returnMagnitudeCap = decimal.NewFromInt(5)
)

// RunCrossFieldChecks detects presence-pairing inconsistencies across
// all equities. A missing operand is itself the signal here, so these
// predicates fire on absence.
func RunCrossFieldChecks(equities []equity.CanonicalEquity) []ConsistencyFinding {
	return []ConsistencyFinding{
		finding("Price recorded without market cap", equities, func(f *equity.Financials) bool {
			return f.LastPrice != nil && f.MarketCap == nil
		}),
		finding("Market cap recorded without price", equities, func(f *equity.Financials) bool {
			return f.MarketCap != nil && f.LastPrice == nil
		}),
		finding("Price and market cap both missing", equities, func(f *equity.Financials) bool {
			return f.LastPrice == nil && f.MarketCap == nil
		}),
		finding("Partial 52-week range", equities, func(f *equity.Financials) bool {
			return (f.FiftyTwoWeekMin != nil) != (f.FiftyTwoWeekMax != nil)
		}),
	}
}

// RunRatioChecks detects logically inconsistent ratio relationships.
// Ordering predicates require both operands; a missing operand means
// the check does not apply.
func RunRatioChecks(equities []equity.CanonicalEquity) []ConsistencyFinding {
	return []ConsistencyFinding{
		finding("Profit margin exceeds gross margin", equities, func(f *equity.Financials) bool {
			return bothPresentAndGreater(f.ProfitMargin, f.GrossMargin)
		}),
		finding("Operating margin exceeds gross margin", equities, func(f *equity.Financials) bool {
			return bothPresentAndGreater(f.OperatingMargin, f.GrossMargin)
		}),
		finding("Trailing P/E without EPS", equities, func(f *equity.Financials) bool {
			return f.TrailingPE != nil && f.TrailingEPS == nil
		}),
		finding("Revenue/share without revenue", equities, func(f *equity.Financials) bool {
			return f.RevenuePerShare != nil && f.Revenue == nil
		}),
		finding("Price/book without price", equities, func(f *equity.Financials) bool {
			return f.PriceToBook != nil && f.LastPrice == nil
		}),
	}
}

// RunPlausibilityChecks detects individual field values outside
// plausible ranges
func RunPlausibilityChecks(equities []equity.CanonicalEquity) []ConsistencyFinding {
	return []ConsistencyFinding{
		finding("52-week min exceeds max", equities, func(f *equity.Financials) bool {
			return bothPresentAndGreater(f.FiftyTwoWeekMin, f.FiftyTwoWeekMax)
		}),
		finding("Price outside 52-week range", equities, priceOutsideRange),
		finding("Extreme dividend yield (>100%)", equities, func(f *equity.Financials) bool {
			return f.DividendYield != nil && f.DividendYield.GreaterThan(yieldLimit)
		}),
		finding("Extreme trailing P/E (±1000)", equities, func(f *equity.Financials) bool {
			return f.TrailingPE != nil && f.TrailingPE.Abs().GreaterThan(peMagnitudeLimit)
		}),
		finding("Holdings exceed 100%", equities, holdingsExceed),
		finding("Extreme ROE or ROA (±500%)", equities, hasExtremeReturn),
	}
}

// finding counts the records for which the predicate holds
func finding(description string, equities []equity.CanonicalEquity, predicate func(*equity.Financials) bool) ConsistencyFinding {
	count := 0
	for i := range equities {
		if predicate(&equities[i].Financials) {
			count++
		}
	}
	return ConsistencyFinding{
		Description: description,
		Count:       count,
		Total:       len(equities),
	}
}

// bothPresentAndGreater reports a > b when both operands are present
func bothPresentAndGreater(a, b *decimal.Decimal) bool {
	return a != nil && b != nil && a.GreaterThan(*b)
}

// priceOutsideRange flags a last price below the 52-week minimum or
// more than 5% above the maximum. All three operands must be present.
func priceOutsideRange(f *equity.Financials) bool {
	price := f.LastPrice
	min := f.FiftyTwoWeekMin
	max := f.FiftyTwoWeekMax
	if price == nil || min == nil || max == nil {
		return false
	}
	return price.LessThan(*min) || price.GreaterThan(max.Mul(rangeTolerance))
}

// holdingsExceed flags insider plus institutional holdings above 105%
func holdingsExceed(f *equity.Financials) bool {
	if f.HeldInsiders == nil || f.HeldInstitutions == nil {
		return false
	}
	return f.HeldInsiders.Add(*f.HeldInstitutions).GreaterThan(holdingsLimit)
}

// hasExtremeReturn flags |ROE| or |ROA| beyond 500%
func hasExtremeReturn(f *equity.Financials) bool {
	if f.ReturnOnEquity != nil && f.ReturnOnEquity.Abs().GreaterThan(returnMagnitudeCap) {
		return true
	}
	return f.ReturnOnAssets != nil && f.ReturnOnAssets.Abs().GreaterThan(returnMagnitudeCap)
}
