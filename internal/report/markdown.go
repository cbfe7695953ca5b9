package report

import (
	"fmt"
	"strings"
	"text/template"
)

// reportTemplate renders the integrity report as a markdown document.
// The terminal renderer in the CLI takes this output as-is.
const reportTemplate = `# Data Integrity Report

Equities: **{{.Coverage.TotalEquities}}**{{with .Coverage.SnapshotDate}} | Snapshot: **{{.}}**{{end}} | Snapshots loaded: **{{.Coverage.TotalSnapshots}}**
Sectors: **{{.Coverage.DistinctSectors}}** | Industries: **{{.Coverage.DistinctIndustries}}**

## Field Coverage

Identity fields overall: **{{pct (overall .Coverage.IdentityCoverage)}}**
Financial fields overall: **{{pct (overall .Coverage.FinancialCoverage)}}**

| Identity Field | Populated | Coverage |
|---|---|---|
{{range .Coverage.IdentityCoverage}}| {{.Label}} | {{.Count}}/{{.Total}} | {{pct .Pct}} |
{{end}}
| Financial Field | Populated | Coverage |
|---|---|---|
{{range .Coverage.FinancialCoverage}}| {{.Label}} | {{.Count}}/{{.Total}} | {{pct .Pct}} |
{{end}}
## Consistency Checks

| Cross-Field Check | Affected | Share |
|---|---|---|
{{range .CrossField}}| {{.Description}} | {{.Count}}/{{.Total}} | {{pct .Pct}} |
{{end}}
| Ratio Check | Affected | Share |
|---|---|---|
{{range .Ratio}}| {{.Description}} | {{.Count}}/{{.Total}} | {{pct .Pct}} |
{{end}}
| Plausibility Check | Affected | Share |
|---|---|---|
{{range .Plausibility}}| {{.Description}} | {{.Count}}/{{.Total}} | {{pct .Pct}} |
{{end}}
## Market Capitalisation

Reporting: **{{.MarketCap.Count}}** | Median: **{{money .MarketCap.Median}}** | Mean: **{{money .MarketCap.Mean}}**

| Tier | Count |
|---|---|
{{range .MarketCap.Tiers}}| {{.Label}} | {{.Count}} |
{{end}}
## Completeness

Median populated fields: **{{num .Completeness.Median}}/{{.Completeness.MaxFields}}** | Mean: **{{num .Completeness.Mean}}/{{.Completeness.MaxFields}}**

| Score | Equities | Share |
|---|---|---|
{{range .Completeness.Histogram}}{{if gt .Count 0}}| {{.Score}} | {{.Count}} | {{pct .Pct}} |
{{end}}{{end}}
## Sparsest Sectors

| Sector | Mean Field Coverage |
|---|---|
{{range sectorMeans .SectorCoverage}}| {{.Name}} | {{pct .Mean}} |
{{end}}`

type sectorMean struct {
	Name string
	Mean float64
}

var reportTmpl = template.Must(template.New("integrity").Funcs(template.FuncMap{
	"pct":     func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"num":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"money":   formatMoney,
	"overall": OverallCoverage,
	"sectorMeans": func(sc SectorFieldCoverage) []sectorMean {
		means := make([]sectorMean, len(sc.Sectors))
		for i, name := range sc.Sectors {
			means[i] = sectorMean{Name: name, Mean: mean(sc.Percentages[i])}
		}
		return means
	},
}).Parse(reportTemplate))

// Markdown renders the full report as a markdown document
func Markdown(r *IntegrityReport) (string, error) {
	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, r); err != nil {
		return "", fmt.Errorf("failed to render integrity report: %w", err)
	}
	return sb.String(), nil
}

// formatMoney abbreviates a dollar amount for the report headline
func formatMoney(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}
