package report

import (
	"sort"

	"github.com/jwyoon/equityboard/internal/equity"
)

// BuildSectorFieldCoverage groups equities by sector (records without
// one are excluded), computes per-field coverage within each group, and
// orders sectors ascending by mean row coverage and fields descending
// by mean column coverage. The ordering is for display only.
func BuildSectorFieldCoverage(equities []equity.CanonicalEquity) SectorFieldCoverage {
	fields := equity.HeatmapFields()
	grouped := groupBySector(equities)
	if len(grouped) == 0 {
		return SectorFieldCoverage{Sectors: []string{}, Fields: []string{}, Percentages: [][]float64{}}
	}

	// Stable sector order before ranking, so ties stay deterministic
	sectors := make([]string, 0, len(grouped))
	for sector := range grouped {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	rows := make([][]float64, len(sectors))
	for i, sector := range sectors {
		rows[i] = sectorCoverageRow(grouped[sector], fields)
	}

	// Rank sectors ascending by mean row coverage
	order := make([]int, len(sectors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return mean(rows[order[a]]) < mean(rows[order[b]])
	})

	colOrder := rankColumnsByCoverage(rows)

	out := SectorFieldCoverage{
		Sectors:     make([]string, len(sectors)),
		Fields:      make([]string, len(colOrder)),
		Percentages: make([][]float64, len(sectors)),
	}
	for i, c := range colOrder {
		out.Fields[i] = fields[c].Label
	}
	for i, r := range order {
		out.Sectors[i] = sectors[r]
		row := make([]float64, len(colOrder))
		for j, c := range colOrder {
			row[j] = rows[r][c]
		}
		out.Percentages[i] = row
	}
	return out
}

// groupBySector buckets equities by their (non-nil) sector
func groupBySector(equities []equity.CanonicalEquity) map[string][]*equity.CanonicalEquity {
	grouped := make(map[string][]*equity.CanonicalEquity)
	for i := range equities {
		if sector := equities[i].Financials.Sector; sector != nil {
			grouped[*sector] = append(grouped[*sector], &equities[i])
		}
	}
	return grouped
}

// sectorCoverageRow computes per-field coverage percentages within one
// sector group
func sectorCoverageRow(group []*equity.CanonicalEquity, fields []equity.FieldSpec) []float64 {
	total := len(group)
	row := make([]float64, len(fields))
	if total == 0 {
		return row
	}
	for i, f := range fields {
		count := 0
		for _, eq := range group {
			if f.Populated(eq) {
				count++
			}
		}
		row[i] = float64(count) / float64(total) * 100
	}
	return row
}

// rankColumnsByCoverage returns column indices sorted by mean coverage
// descending
func rankColumnsByCoverage(rows [][]float64) []int {
	if len(rows) == 0 {
		return nil
	}
	numCols := len(rows[0])

	colMeans := make([]float64, numCols)
	for c := 0; c < numCols; c++ {
		sum := 0.0
		for _, row := range rows {
			sum += row[c]
		}
		colMeans[c] = sum / float64(len(rows))
	}

	order := make([]int, numCols)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return colMeans[order[a]] > colMeans[order[b]]
	})
	return order
}
