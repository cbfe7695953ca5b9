package format

import (
	"strconv"
	"strings"
)

// RatingResult is an analyst rating display label with its colour
type RatingResult struct {
	Label string
	Color string
}

const ratingNeutralColor = "#808495"

// AnalystRating maps a raw analyst rating (free-form string or a
// numeric 1-5 scale) to a display label and hex colour. Unrecognized
// values come back unchanged in a neutral colour.
func AnalystRating(value *string) RatingResult {
	if value == nil {
		return RatingResult{NotAvailable, ratingNeutralColor}
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(*value), 64); err == nil {
		return matchNumericRating(v)
	}
	return matchStringRating(*value)
}

// matchStringRating matches by substring; "strong sell" must be tested
// before "sell", and "strong buy" before "buy"
func matchStringRating(value string) RatingResult {
	lowered := strings.ToLower(strings.TrimSpace(value))
	patterns := []struct {
		pattern string
		label   string
		color   string
	}{
		{"strong buy", "Strong Buy", "#15803d"},
		{"strong sell", "Strong Sell", "#991b1b"},
		{"buy", "Buy", "#16a34a"},
		{"hold", "Hold", "#d97706"},
		{"neutral", "Hold", "#d97706"},
		{"sell", "Sell", "#dc2626"},
		{"underperform", "Sell", "#dc2626"},
	}
	for _, p := range patterns {
		if strings.Contains(lowered, p.pattern) {
			return RatingResult{p.label, p.color}
		}
	}
	return RatingResult{value, ratingNeutralColor}
}

// matchNumericRating maps a 1-5 scale rating via thresholds
func matchNumericRating(value float64) RatingResult {
	thresholds := []struct {
		max   float64
		label string
		color string
	}{
		{1.5, "Strong Buy", "#15803d"},
		{2.5, "Buy", "#16a34a"},
		{3.5, "Hold", "#d97706"},
		{4.5, "Sell", "#dc2626"},
	}
	for _, t := range thresholds {
		if value <= t.max {
			return RatingResult{t.label, t.color}
		}
	}
	return RatingResult{"Strong Sell", "#991b1b"}
}
