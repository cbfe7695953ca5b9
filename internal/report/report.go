package report

import (
	"github.com/jwyoon/equityboard/internal/equity"
)

// Build runs every section of the integrity report over the equity
// set. Each section is an independent single pass; evaluation order
// does not matter and there is no early exit.
func Build(equities []equity.CanonicalEquity) *IntegrityReport {
	return &IntegrityReport{
		Coverage:       BuildCoverageReport(equities),
		CrossField:     RunCrossFieldChecks(equities),
		Ratio:          RunRatioChecks(equities),
		Plausibility:   RunPlausibilityChecks(equities),
		MarketCap:      BuildMarketCapDistribution(equities),
		Completeness:   BuildCompletenessDistribution(equities),
		SectorCoverage: BuildSectorFieldCoverage(equities),
	}
}
