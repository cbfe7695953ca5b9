package report

import (
	"math"
	"sort"

	"github.com/jwyoon/equityboard/internal/equity"
)

// marketCapTiers are the standard financial size tiers used for the
// histogram. Upper bounds are exclusive.
var marketCapTiers = []struct {
	label string
	lo    float64
	hi    float64
}{
	{"Nano (<$50M)", 0, 50e6},
	{"Micro ($50M-$300M)", 50e6, 300e6},
	{"Small ($300M-$2B)", 300e6, 2e9},
	{"Mid ($2B-$10B)", 2e9, 10e9},
	{"Large ($10B-$200B)", 10e9, 200e9},
	{"Mega (>$200B)", 200e9, math.Inf(1)},
}

// BuildMarketCapDistribution filters to positive market caps and
// computes count, median, mean, and the tier histogram
func BuildMarketCapDistribution(equities []equity.CanonicalEquity) MarketCapDistribution {
	values := make([]float64, 0, len(equities))
	for i := range equities {
		mc := equities[i].Financials.MarketCap
		if mc != nil && mc.IsPositive() {
			values = append(values, mc.InexactFloat64())
		}
	}

	tiers := make([]TierBucket, len(marketCapTiers))
	for i, tier := range marketCapTiers {
		count := 0
		for _, v := range values {
			if v >= tier.lo && v < tier.hi {
				count++
			}
		}
		tiers[i] = TierBucket{Label: tier.label, Count: count}
	}

	return MarketCapDistribution{
		Count:  len(values),
		Median: median(values),
		Mean:   mean(values),
		Tiers:  tiers,
	}
}

// BuildCompletenessDistribution scores each equity by its populated
// financial field count (0-31) and summarizes the scores
func BuildCompletenessDistribution(equities []equity.CanonicalEquity) CompletenessDistribution {
	fields := equity.FinancialFields()
	maxFields := len(fields)

	scores := make([]float64, len(equities))
	counts := make([]int, maxFields+1)
	for i := range equities {
		score := CompletenessScore(&equities[i], fields)
		scores[i] = float64(score)
		counts[score]++
	}

	total := len(equities)
	histogram := make([]ScoreBucket, maxFields+1)
	for score, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		histogram[score] = ScoreBucket{Score: score, Count: count, Pct: pct}
	}

	return CompletenessDistribution{
		Count:     total,
		Median:    median(scores),
		Mean:      mean(scores),
		MaxFields: maxFields,
		Histogram: histogram,
	}
}

// CompletenessScore counts how many of the given financial fields are
// populated for one equity
func CompletenessScore(eq *equity.CanonicalEquity, fields []equity.FieldSpec) int {
	score := 0
	for _, f := range fields {
		if f.Populated(eq) {
			score++
		}
	}
	return score
}

// median returns the middle value (or midpoint of the two middle
// values) of an unsorted slice; 0 for an empty slice
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mean returns the arithmetic mean; 0 for an empty slice
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
