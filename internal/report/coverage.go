package report

import (
	"github.com/jwyoon/equityboard/internal/equity"
)

// BuildCoverageReport computes field coverage and headline counts over
// the full equity set
func BuildCoverageReport(equities []equity.CanonicalEquity) CoverageReport {
	var snapshotDate *string
	if len(equities) > 0 {
		snapshotDate = equities[0].SnapshotDate
	}

	return CoverageReport{
		TotalEquities:      len(equities),
		SnapshotDate:       snapshotDate,
		TotalSnapshots:     countDistinctSnapshots(equities),
		DistinctSectors:    countDistinct(equities, func(e *equity.CanonicalEquity) *string { return e.Financials.Sector }),
		DistinctIndustries: countDistinct(equities, func(e *equity.CanonicalEquity) *string { return e.Financials.Industry }),
		IdentityCoverage:   ComputeCoverage(equities, equity.IdentityFields()),
		FinancialCoverage:  ComputeCoverage(equities, equity.FinancialFields()),
	}
}

// ComputeCoverage counts populated records for each field in the fixed
// ordered list
func ComputeCoverage(equities []equity.CanonicalEquity, fields []equity.FieldSpec) []FieldCoverage {
	total := len(equities)
	coverage := make([]FieldCoverage, len(fields))
	for i, f := range fields {
		count := 0
		for j := range equities {
			if f.Populated(&equities[j]) {
				count++
			}
		}
		coverage[i] = FieldCoverage{Label: f.Label, Count: count, Total: total}
	}
	return coverage
}

// OverallCoverage is the weighted coverage across fields: sum of counts
// over sum of totals, not an average of per-field percentages.
func OverallCoverage(coverage []FieldCoverage) float64 {
	totalCount := 0
	totalPossible := 0
	for _, fc := range coverage {
		totalCount += fc.Count
		totalPossible += fc.Total
	}
	if totalPossible == 0 {
		return 0
	}
	return float64(totalCount) / float64(totalPossible) * 100
}

// countDistinctSnapshots counts distinct non-nil snapshot dates
func countDistinctSnapshots(equities []equity.CanonicalEquity) int {
	seen := make(map[string]struct{})
	for i := range equities {
		if d := equities[i].SnapshotDate; d != nil {
			seen[*d] = struct{}{}
		}
	}
	return len(seen)
}

// countDistinct counts distinct non-nil values of one string attribute
func countDistinct(equities []equity.CanonicalEquity, value func(*equity.CanonicalEquity) *string) int {
	seen := make(map[string]struct{})
	for i := range equities {
		if v := value(&equities[i]); v != nil {
			seen[*v] = struct{}{}
		}
	}
	return len(seen)
}
