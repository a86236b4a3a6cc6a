package model

import "strings"

// Label is the structural role assigned to a line by the rule engine.
type Label string

const (
	LabelTitle    Label = "Title"
	LabelH1       Label = "H1"
	LabelH2       Label = "H2"
	LabelH3       Label = "H3"
	LabelBodyText Label = "BodyText"
	LabelOther    Label = "Other"
)

// IsHeading returns true for the heading levels that appear in an outline
// (H1, H2, H3). Title is not a heading; it is reported separately.
func (l Label) IsHeading() bool {
	switch l {
	case LabelH1, LabelH2, LabelH3:
		return true
	default:
		return false
	}
}

// Level returns the numeric heading level (1-3), or 0 for non-heading labels.
func (l Label) Level() int {
	switch l {
	case LabelH1:
		return 1
	case LabelH2:
		return 2
	case LabelH3:
		return 3
	default:
		return 0
	}
}

// Valid returns true if the label is one of the defined values.
func (l Label) Valid() bool {
	switch l {
	case LabelTitle, LabelH1, LabelH2, LabelH3, LabelBodyText, LabelOther:
		return true
	default:
		return false
	}
}

// LineRecord is one visually contiguous run of text at a single vertical
// position on a page, as reported by the upstream document parser. Records
// are immutable once produced; missing numeric fields default to 0 and
// missing text/boolean fields to their zero values, which classification
// degrades through gracefully rather than rejecting the record.
type LineRecord struct {
	// Text is the line content with surrounding whitespace already trimmed
	// by the parser. Classification trims again before computing predicates.
	Text string `json:"text"`

	// FontSize is the dominant font size on the line, in points.
	FontSize float64 `json:"font_size"`

	// IsBold reports whether the dominant font carries a bold weight.
	IsBold bool `json:"is_bold"`

	// FontName is a sample font name from the line.
	FontName string `json:"font_name"`

	// BBox is the line's bounding box in page coordinates (top-left origin).
	BBox BBox `json:"bbox"`

	// Page is the 1-based page number the line appears on.
	Page int `json:"page"`

	// PageWidth and PageHeight are the dimensions of that page.
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`

	// SpaceAbove is the vertical gap to the previous line on the same page,
	// clamped at 0. It is 0 for the first line of a page or when unknown.
	SpaceAbove float64 `json:"space_above"`
}

// TrimmedText returns the line text with surrounding whitespace removed.
func (r LineRecord) TrimmedText() string {
	return strings.TrimSpace(r.Text)
}

// IsEmpty returns true if the line has no text content after trimming.
func (r LineRecord) IsEmpty() bool {
	return r.TrimmedText() == ""
}

// ClassifiedLine is a LineRecord together with its assigned label.
type ClassifiedLine struct {
	LineRecord
	Label Label `json:"label"`
}
