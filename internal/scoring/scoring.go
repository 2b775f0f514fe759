package scoring

import (
	"fmt"

	"github.com/gruntled/assessment-backend/internal/catalog"
)

// ScoreMap is the recorded ratings: dimension key -> statement key -> rating.
type ScoreMap map[string]map[string]int

// DimensionSummary is the derived view of one dimension used by the
// completion page, the coach view and the report renderer.
type DimensionSummary struct {
	Key            string       `json:"key"`
	Title          string       `json:"title"`
	Total          int          `json:"total"`
	MaxTotal       int          `json:"max_total"`
	Band           catalog.Band `json:"band"`
	Interpretation string       `json:"interpretation"`
	Development    string       `json:"development"`
}

// DimensionTotals sums the recorded ratings per dimension. Every catalog
// dimension appears in the result; a dimension with no recorded ratings
// totals 0 so in-progress and partial assessments display without special
// casing.
func DimensionTotals(scores ScoreMap) map[string]int {
	totals := make(map[string]int, len(catalog.AllDimensions()))
	for _, d := range catalog.AllDimensions() {
		total := 0
		for _, rating := range scores[d.Key] {
			total += rating
		}
		totals[d.Key] = total
	}
	return totals
}

// Interpret maps one dimension total to its band. The key must come from
// the catalog.
func Interpret(dimensionKey string, total int) catalog.Band {
	if _, ok := catalog.DimensionByKey(dimensionKey); !ok {
		panic(fmt.Sprintf("scoring: unknown dimension %q", dimensionKey))
	}
	return catalog.BandFor(total)
}

// Summaries computes the full derived view, in catalog order.
func Summaries(scores ScoreMap) []DimensionSummary {
	totals := DimensionTotals(scores)

	summaries := make([]DimensionSummary, 0, len(catalog.AllDimensions()))
	for _, d := range catalog.AllDimensions() {
		total := totals[d.Key]
		band := catalog.BandFor(total)
		text := catalog.TextFor(d.Key, band)
		summaries = append(summaries, DimensionSummary{
			Key:            d.Key,
			Title:          d.Title,
			Total:          total,
			MaxTotal:       catalog.MaxDimensionScore,
			Band:           band,
			Interpretation: text.Interpretation,
			Development:    text.Development,
		})
	}
	return summaries
}
