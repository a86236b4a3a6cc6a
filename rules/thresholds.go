package rules

// Threshold names used by the default rule table.
const (
	TitleFontMin     = "TITLE_FONT_MIN"
	H1FontMin        = "H1_FONT_MIN"
	H2FontMin        = "H2_FONT_MIN"
	H3FontMin        = "H3_FONT_MIN"
	BodyTextFontMax  = "BODY_TEXT_FONT_MAX"
	LargeSpaceAbove  = "LARGE_SPACE_ABOVE"
	MediumSpaceAbove = "MEDIUM_SPACE_ABOVE"
	SmallSpaceAbove  = "SMALL_SPACE_ABOVE"
	MainIndentX0Max  = "MAIN_INDENT_X0_MAX"
	SubIndentX0Min   = "SUB_INDENT_X0_MIN"
	SubSubIndentMin  = "SUB_SUB_INDENT_X0_MIN"
)

// ThresholdSet maps threshold names to numeric cutoffs. Sets are treated as
// values: Merge returns a new set rather than updating in place, so a
// calibrated set for one document never leaks into another processed
// concurrently.
//
// The engine does not validate internal consistency (for example
// H1_FONT_MIN >= H2_FONT_MIN >= H3_FONT_MIN); an inconsistent set is a
// caller configuration defect and simply classifies accordingly.
type ThresholdSet map[string]float64

// DefaultThresholds returns the built-in threshold values. Font sizes are
// in points; space cutoffs in page units; indent cutoffs are normalized by
// page width.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		TitleFontMin:     20.0,
		H1FontMin:        15.0,
		H2FontMin:        12.0,
		H3FontMin:        11.0,
		BodyTextFontMax:  12.5,
		LargeSpaceAbove:  15,
		MediumSpaceAbove: 8,
		SmallSpaceAbove:  3,
		MainIndentX0Max:  0.15,
		SubIndentX0Min:   0.15,
		SubSubIndentMin:  0.20,
	}
}

// Clone returns an independent copy of the set.
func (t ThresholdSet) Clone() ThresholdSet {
	out := make(ThresholdSet, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a new set with the overrides applied on top of t,
// last writer wins. A nil or empty override map yields a plain clone.
func (t ThresholdSet) Merge(overrides map[string]float64) ThresholdSet {
	out := t.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Value returns the named threshold, or 0 when the name is not present.
func (t ThresholdSet) Value(name string) float64 {
	return t[name]
}
