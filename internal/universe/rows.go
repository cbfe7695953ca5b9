package universe

import (
	"fmt"
	"math"
	"strings"

	"github.com/jwyoon/equityboard/internal/equity"
	"github.com/jwyoon/equityboard/internal/format"
)

// Cell carries a raw value for sorting and filtering plus its display
// string. Raw is nil for missing values and the display is then empty.
type Cell struct {
	Raw     interface{} `json:"raw"`
	Display string      `json:"display"`
}

// Row is one grid row keyed by display column name
type Row struct {
	Cells      map[string]Cell `json:"cells"`
	FilterText string          `json:"filter_text"`
}

// Grid is the full universe grid response
type Grid struct {
	SnapshotDate *string       `json:"snapshot_date"`
	Groups       []ColumnGroup `json:"groups"`
	Columns      []string      `json:"columns"`
	Rows         []Row         `json:"rows"`
}

// BuildGrid maps the equity set into display rows under the fixed
// column registry
func BuildGrid(equities []equity.CanonicalEquity) *Grid {
	columns := Columns()

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}

	var snapshotDate *string
	if len(equities) > 0 {
		snapshotDate = equities[0].SnapshotDate
	}

	rows := make([]Row, len(equities))
	for i := range equities {
		rows[i] = BuildRow(&equities[i], columns)
	}

	return &Grid{
		SnapshotDate: snapshotDate,
		Groups:       Groups(),
		Columns:      names,
		Rows:         rows,
	}
}

// BuildRow maps one equity through the column accessors
func BuildRow(eq *equity.CanonicalEquity, columns []ColumnSpec) Row {
	cells := make(map[string]Cell, len(columns))
	for _, col := range columns {
		raw := col.Value(eq)
		cells[col.Name] = Cell{Raw: raw, Display: display(col.Class, raw)}
	}
	return Row{Cells: cells, FilterText: FilterText(eq)}
}

// FilterText concatenates the name and identifier codes for quick
// filtering
func FilterText(eq *equity.CanonicalEquity) string {
	parts := make([]string, 0, 6)
	for _, v := range []*string{
		eq.Identity.Name,
		eq.Identity.ISIN,
		eq.Identity.CUSIP,
		eq.Identity.CIK,
		eq.Identity.LEI,
		eq.Identity.ShareClassFIGI,
	} {
		if v != nil {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, " ")
}

// display renders a cell value under its column class. Missing values
// render empty; the grid shows blank cells, not placeholders.
func display(class Class, raw interface{}) string {
	if raw == nil {
		return ""
	}

	v, isNumber := raw.(float64)
	if !isNumber {
		return fmt.Sprint(raw)
	}

	switch class {
	case ClassCurrency:
		return "$" + format.Number(v, 2)
	case ClassLargeCurrency:
		return abbreviate(v, "$")
	case ClassPercentage:
		return fmt.Sprintf("%.1f%%", v*100)
	case ClassLargeNumber:
		return abbreviate(v, "")
	case ClassRatio:
		return fmt.Sprintf("%.1fx", v)
	default:
		return format.Number(v, 2)
	}
}

// abbreviate renders a magnitude with T/B/M/K suffixes and an optional
// currency prefix
func abbreviate(v float64, prefix string) string {
	tiers := []struct {
		divisor float64
		suffix  string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}
	for _, tier := range tiers {
		if math.Abs(v) >= tier.divisor {
			return fmt.Sprintf("%s%.1f%s", prefix, v/tier.divisor, tier.suffix)
		}
	}
	if prefix != "" {
		return prefix + format.Number(v, 2)
	}
	return format.Number(v, 0)
}
