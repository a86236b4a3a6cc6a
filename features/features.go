package features

import (
	"math"
	"strings"

	"github.com/tsawler/strata/model"
)

// Config holds configuration for feature derivation.
type Config struct {
	// FooterHeaderKeywords are case-insensitive substrings whose presence
	// sets the contains_keywords feature (typically running-header and
	// footer vocabulary).
	FooterHeaderKeywords []string

	// SeparatorPatterns are case-insensitive substrings whose presence sets
	// the contains_separators feature (rule lines, field separators).
	SeparatorPatterns []string

	// CenteredTolerance is the maximum difference between left and right
	// margins, as a fraction of page width, for a line to count as centered.
	// Default: 0.10
	CenteredTolerance float64

	// TopOfPageRatio is the fraction of page height below the top edge
	// within which a line counts as top-of-page. Default: 0.25
	TopOfPageRatio float64

	// MarginX and MarginY are the distances from the page edges, in absolute
	// page units (not normalized), within which a line counts as at-margins.
	// Indentation thresholds elsewhere are normalized by page width; these
	// two are deliberately absolute to match header/footer bands, which do
	// not scale with page size. Defaults: 100 and 50.
	MarginX float64
	MarginY float64

	// MinAllCapsLength is the minimum trimmed text length for the all-caps
	// predicate, guarding against short tokens like "II" or "OK".
	// Default: 3
	MinAllCapsLength int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		FooterHeaderKeywords: []string{"page", "chapter", "confidential"},
		SeparatorPatterns:    []string{"-------", ":"},
		CenteredTolerance:    0.10,
		TopOfPageRatio:       0.25,
		MarginX:              100,
		MarginY:              50,
		MinAllCapsLength:     3,
	}
}

// DerivedFeatures is the feature set for one line: the raw record fields
// plus everything derived from them. Computed fresh per classification call
// and discarded afterwards; the embedded record is never written to.
type DerivedFeatures struct {
	model.LineRecord

	// X0Normalized is the left edge divided by page width (0 when the page
	// width is unknown or non-positive).
	X0Normalized float64

	// IsCentered reports a symmetric-margin test: left and right margins
	// differ by less than the configured fraction of page width.
	IsCentered bool

	// IsTopOfPage reports whether the line starts within the top quarter
	// (by default) of the page.
	IsTopOfPage bool

	// IsAtMargins reports whether the line sits inside the absolute margin
	// bands at any page edge.
	IsAtMargins bool

	// ContainsKeywords and ContainsSeparators report membership against the
	// configured pattern lists.
	ContainsKeywords   bool
	ContainsSeparators bool

	// Text-shape features, computed from the trimmed text.
	LineLength               int
	NumWords                 int
	IsAllCaps                bool
	IsTitleCase              bool
	EndsWithPunctuation      bool
	StartsWithNumberOrBullet bool
}

// Deriver computes DerivedFeatures from line records.
type Deriver struct {
	config Config
}

// NewDeriver creates a deriver with default configuration.
func NewDeriver() *Deriver {
	return &Deriver{config: DefaultConfig()}
}

// NewDeriverWithConfig creates a deriver with custom configuration.
func NewDeriverWithConfig(config Config) *Deriver {
	return &Deriver{config: config}
}

// Derive computes the feature set for one line. It is deterministic and has
// no side effects; the same record always yields the same features.
func (d *Deriver) Derive(rec model.LineRecord) DerivedFeatures {
	f := DerivedFeatures{LineRecord: rec}

	pw := rec.PageWidth
	ph := rec.PageHeight

	if pw > 0 {
		f.X0Normalized = rec.BBox.X0 / pw
		leftMargin := rec.BBox.X0
		rightMargin := pw - rec.BBox.X1
		f.IsCentered = math.Abs(leftMargin-rightMargin) < pw*d.config.CenteredTolerance
	}
	if ph > 0 {
		f.IsTopOfPage = rec.BBox.Y0 < ph*d.config.TopOfPageRatio
	}
	f.IsAtMargins = rec.BBox.X0 < d.config.MarginX ||
		rec.BBox.X0 > pw-d.config.MarginX ||
		rec.BBox.Y0 < d.config.MarginY ||
		rec.BBox.Y0 > ph-d.config.MarginY

	text := rec.TrimmedText()
	lower := strings.ToLower(text)

	for _, kw := range d.config.FooterHeaderKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			f.ContainsKeywords = true
			break
		}
	}
	for _, sep := range d.config.SeparatorPatterns {
		if strings.Contains(lower, strings.ToLower(sep)) {
			f.ContainsSeparators = true
			break
		}
	}

	f.LineLength = len(text)
	f.NumWords = len(strings.Fields(text))
	f.IsAllCaps = isAllCaps(text, d.config.MinAllCapsLength)
	f.IsTitleCase = isTitleCase(text)
	f.EndsWithPunctuation = endsWithPunctuation(text)
	f.StartsWithNumberOrBullet = startsWithNumberOrBullet(text)

	return f
}

// Feature resolves a feature by its rule-table name. It returns ok=false
// for names this version does not know, which the rule engine treats as a
// failed condition rather than an error — the documented contract that lets
// newer rule tables run against older feature sets.
func (f *DerivedFeatures) Feature(name string) (Value, bool) {
	switch name {
	case "text":
		return Text(f.Text), true
	case "font_size":
		return Number(f.FontSize), true
	case "is_bold":
		return Boolean(f.IsBold), true
	case "font_name":
		return Text(f.FontName), true
	case "x0":
		return Number(f.BBox.X0), true
	case "y0":
		return Number(f.BBox.Y0), true
	case "x1":
		return Number(f.BBox.X1), true
	case "y1":
		return Number(f.BBox.Y1), true
	case "page":
		return Number(float64(f.Page)), true
	case "page_width":
		return Number(f.PageWidth), true
	case "page_height":
		return Number(f.PageHeight), true
	case "space_above":
		return Number(f.SpaceAbove), true
	case "x0_normalized":
		return Number(f.X0Normalized), true
	case "is_centered":
		return Boolean(f.IsCentered), true
	case "is_top_of_page":
		return Boolean(f.IsTopOfPage), true
	case "is_at_margins":
		return Boolean(f.IsAtMargins), true
	case "contains_keywords":
		return Boolean(f.ContainsKeywords), true
	case "contains_separators":
		return Boolean(f.ContainsSeparators), true
	case "line_length":
		return Number(float64(f.LineLength)), true
	case "num_words":
		return Number(float64(f.NumWords)), true
	case "is_all_caps":
		return Boolean(f.IsAllCaps), true
	case "is_title_case":
		return Boolean(f.IsTitleCase), true
	case "ends_with_punctuation":
		return Boolean(f.EndsWithPunctuation), true
	case "starts_with_number_or_bullet":
		return Boolean(f.StartsWithNumberOrBullet), true
	default:
		return Value{}, false
	}
}
