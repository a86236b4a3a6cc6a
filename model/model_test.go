package model

import "testing"

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 45)

	if got := b.Width(); got != 100 {
		t.Errorf("Width() = %f, want 100", got)
	}
	if got := b.Height(); got != 25 {
		t.Errorf("Height() = %f, want 25", got)
	}
	if got := b.CenterX(); got != 60 {
		t.Errorf("CenterX() = %f, want 60", got)
	}
	if got := b.CenterY(); got != 32.5 {
		t.Errorf("CenterY() = %f, want 32.5", got)
	}
	if got := b.Area(); got != 2500 {
		t.Errorf("Area() = %f, want 2500", got)
	}
	if !b.IsValid() {
		t.Error("expected box to be valid")
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 100, 50)

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{50, 25, true},
		{0, 0, true},
		{100, 50, true},
		{101, 25, false},
		{50, 51, false},
		{-1, 25, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%f, %f) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestBBoxIntersectsAndUnion(t *testing.T) {
	a := NewBBox(0, 0, 50, 50)
	b := NewBBox(25, 25, 75, 75)
	c := NewBBox(60, 60, 70, 70)

	if !a.Intersects(b) {
		t.Error("expected a to intersect b")
	}
	if a.Intersects(c) {
		t.Error("expected a not to intersect c")
	}

	u := a.Union(b)
	want := NewBBox(0, 0, 75, 75)
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestLabelIsHeading(t *testing.T) {
	tests := []struct {
		label    Label
		expected bool
	}{
		{LabelTitle, false},
		{LabelH1, true},
		{LabelH2, true},
		{LabelH3, true},
		{LabelBodyText, false},
		{LabelOther, false},
	}

	for _, tt := range tests {
		if got := tt.label.IsHeading(); got != tt.expected {
			t.Errorf("Label(%q).IsHeading() = %v, want %v", tt.label, got, tt.expected)
		}
	}
}

func TestLabelLevel(t *testing.T) {
	tests := []struct {
		label    Label
		expected int
	}{
		{LabelH1, 1},
		{LabelH2, 2},
		{LabelH3, 3},
		{LabelTitle, 0},
		{LabelBodyText, 0},
	}

	for _, tt := range tests {
		if got := tt.label.Level(); got != tt.expected {
			t.Errorf("Label(%q).Level() = %d, want %d", tt.label, got, tt.expected)
		}
	}
}

func TestLabelValid(t *testing.T) {
	if !LabelH2.Valid() {
		t.Error("expected H2 to be valid")
	}
	if Label("H7").Valid() {
		t.Error("expected H7 to be invalid")
	}
}

func TestLineRecordTrimming(t *testing.T) {
	r := LineRecord{Text: "  Introduction  "}
	if got := r.TrimmedText(); got != "Introduction" {
		t.Errorf("TrimmedText() = %q, want %q", got, "Introduction")
	}
	if r.IsEmpty() {
		t.Error("expected record not to be empty")
	}

	empty := LineRecord{Text: "   "}
	if !empty.IsEmpty() {
		t.Error("expected whitespace-only record to be empty")
	}
}

func TestDocumentOutlineHelpers(t *testing.T) {
	var nilOutline *DocumentOutline
	if nilOutline.EntryCount() != 0 {
		t.Error("expected 0 entries for nil outline")
	}
	if nilOutline.HasTitle() {
		t.Error("expected nil outline to have no title")
	}

	o := &DocumentOutline{
		Title: "Sample",
		Outline: []OutlineEntry{
			{Level: LabelH1, Text: "One", Page: 0},
			{Level: LabelH2, Text: "One point one", Page: 0},
			{Level: LabelH1, Text: "Two", Page: 3},
		},
	}

	if o.EntryCount() != 3 {
		t.Errorf("EntryCount() = %d, want 3", o.EntryCount())
	}
	if got := len(o.EntriesAtLevel(LabelH1)); got != 2 {
		t.Errorf("EntriesAtLevel(H1) returned %d entries, want 2", got)
	}
	if !o.HasTitle() {
		t.Error("expected outline to have a title")
	}
}
