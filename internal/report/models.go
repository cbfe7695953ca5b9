// Package report computes the data-integrity report over the full
// canonical equity set: field coverage, cross-field consistency
// findings, distribution statistics, and the sector coverage heatmap.
// Everything here is a single pass over an in-memory slice; callers are
// responsible for caching.
package report

// FieldCoverage holds populated/total counts for a single field
type FieldCoverage struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

// Pct returns the coverage percentage, clamped to [0,100]. A zero
// total yields 0.
func (fc FieldCoverage) Pct() float64 {
	if fc.Total == 0 {
		return 0
	}
	pct := float64(fc.Count) / float64(fc.Total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CoverageReport aggregates field coverage for identity and financial
// fields plus headline counts
type CoverageReport struct {
	TotalEquities      int             `json:"total_equities"`
	SnapshotDate       *string         `json:"snapshot_date"`
	TotalSnapshots     int             `json:"total_snapshots"`
	DistinctSectors    int             `json:"distinct_sectors"`
	DistinctIndustries int             `json:"distinct_industries"`
	IdentityCoverage   []FieldCoverage `json:"identity_coverage"`
	FinancialCoverage  []FieldCoverage `json:"financial_coverage"`
}

// ConsistencyFinding is the result of one named consistency predicate
// evaluated across the whole set
type ConsistencyFinding struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
	Total       int    `json:"total"`
}

// Pct returns the affected share as a percentage of the set
func (f ConsistencyFinding) Pct() float64 {
	if f.Total == 0 {
		return 0
	}
	return float64(f.Count) / float64(f.Total) * 100
}

// TierBucket is one market-cap tier with its equity count
type TierBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MarketCapDistribution summarizes market capitalisation across
// equities reporting a positive value
type MarketCapDistribution struct {
	Count  int          `json:"count"`
	Median float64      `json:"median"`
	Mean   float64      `json:"mean"`
	Tiers  []TierBucket `json:"tiers"`
}

// ScoreBucket is one completeness score (0-31) with its equity count
// and share of the set
type ScoreBucket struct {
	Score int     `json:"score"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// CompletenessDistribution summarizes per-equity populated financial
// field counts
type CompletenessDistribution struct {
	Count     int           `json:"count"`
	Median    float64       `json:"median"`
	Mean      float64       `json:"mean"`
	MaxFields int           `json:"max_fields"`
	Histogram []ScoreBucket `json:"histogram"`
}

// SectorFieldCoverage is the sector x field coverage matrix, with rows
// and columns already in display order
type SectorFieldCoverage struct {
	Sectors     []string    `json:"sectors"`
	Fields      []string    `json:"fields"`
	Percentages [][]float64 `json:"percentages"`
}

// IntegrityReport bundles every section of the report for the API
type IntegrityReport struct {
	Coverage       CoverageReport           `json:"coverage"`
	CrossField     []ConsistencyFinding     `json:"cross_field"`
	Ratio          []ConsistencyFinding     `json:"ratio"`
	Plausibility   []ConsistencyFinding     `json:"plausibility"`
	MarketCap      MarketCapDistribution    `json:"market_cap"`
	Completeness   CompletenessDistribution `json:"completeness"`
	SectorCoverage SectorFieldCoverage      `json:"sector_coverage"`
}
