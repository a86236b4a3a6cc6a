package calibrate

import (
	"sort"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/rules"
)

// FontStats summarizes the font-size distribution of one document.
type FontStats struct {
	// BodySize is the most frequent font size (0 when no lines were seen).
	BodySize float64

	// Sizes holds the distinct font sizes in descending order.
	Sizes []float64

	// LineCount is the number of lines sampled.
	LineCount int
}

// Analyze computes font statistics from a multiset of per-line font sizes.
// Frequency ties for the body size resolve toward the smaller size, since
// body text runs smaller than display text; this keeps the result
// deterministic regardless of input order.
func Analyze(sizes []float64) FontStats {
	stats := FontStats{LineCount: len(sizes)}
	if len(sizes) == 0 {
		return stats
	}

	counts := make(map[float64]int, len(sizes))
	for _, s := range sizes {
		counts[s]++
	}

	distinct := make([]float64, 0, len(counts))
	for s := range counts {
		distinct = append(distinct, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))
	stats.Sizes = distinct

	// Walk ascending so that on equal counts the smaller size sticks.
	best := -1
	for i := len(distinct) - 1; i >= 0; i-- {
		s := distinct[i]
		if counts[s] > best {
			best = counts[s]
			stats.BodySize = s
		}
	}

	return stats
}

// AnalyzeLines computes font statistics directly from line records,
// skipping lines with empty text.
func AnalyzeLines(lines []model.LineRecord) FontStats {
	sizes := make([]float64, 0, len(lines))
	for _, rec := range lines {
		if rec.IsEmpty() {
			continue
		}
		sizes = append(sizes, rec.FontSize)
	}
	return Analyze(sizes)
}

// Thresholds returns the threshold overrides implied by the statistics, or
// nil when fewer than four distinct sizes were observed (calibration is a
// no-op in that case, by contract).
func (s FontStats) Thresholds() map[string]float64 {
	if len(s.Sizes) < 4 {
		return nil
	}
	return map[string]float64{
		rules.TitleFontMin:    s.Sizes[0],
		rules.H1FontMin:       s.Sizes[1],
		rules.H2FontMin:       s.Sizes[2],
		rules.H3FontMin:       s.Sizes[3],
		rules.BodyTextFontMax: s.BodySize,
	}
}

// Calibrate is a convenience composition: analyze the document's lines and
// merge the implied overrides into the given threshold set, returning a new
// set. The input set is never modified.
func Calibrate(base rules.ThresholdSet, lines []model.LineRecord) rules.ThresholdSet {
	return base.Merge(AnalyzeLines(lines).Thresholds())
}
