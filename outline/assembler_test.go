package outline

import (
	"testing"

	"github.com/tsawler/strata/model"
)

// classified creates a classified line for assembler tests.
func classified(label model.Label, text string, page int) model.ClassifiedLine {
	return model.ClassifiedLine{
		LineRecord: model.LineRecord{Text: text, Page: page},
		Label:      label,
	}
}

func TestAssembleBasicOutline(t *testing.T) {
	a := NewAssembler()

	lines := []model.ClassifiedLine{
		classified(model.LabelTitle, "Network Design Guide", 1),
		classified(model.LabelBodyText, "Some introductory prose.", 1),
		classified(model.LabelH1, "Topology", 2),
		classified(model.LabelH2, "Spine and Leaf", 2),
		classified(model.LabelOther, "Page 2 of 9", 2),
		classified(model.LabelH1, "Addressing", 5),
	}

	o := a.Assemble(lines)

	if o.Title != "Network Design Guide" {
		t.Errorf("Title = %q, want %q", o.Title, "Network Design Guide")
	}
	if len(o.Outline) != 3 {
		t.Fatalf("outline has %d entries, want 3", len(o.Outline))
	}

	want := []model.OutlineEntry{
		{Level: model.LabelH1, Text: "Topology", Page: 1},
		{Level: model.LabelH2, Text: "Spine and Leaf", Page: 1},
		{Level: model.LabelH1, Text: "Addressing", Page: 4},
	}
	for i, e := range want {
		if o.Outline[i] != e {
			t.Errorf("entry %d = %+v, want %+v", i, o.Outline[i], e)
		}
	}
}

func TestAssemblePageConvention(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH1, "First", 1),
		classified(model.LabelH1, "Later", 12),
	})

	if o.Outline[0].Page != 0 || o.Outline[1].Page != 11 {
		t.Errorf("pages = %d, %d; want 0-indexed 0 and 11", o.Outline[0].Page, o.Outline[1].Page)
	}

	// A malformed record with page 0 must not go negative.
	o = a.Assemble([]model.ClassifiedLine{classified(model.LabelH2, "Odd", 0)})
	if o.Outline[0].Page != 0 {
		t.Errorf("page = %d, want clamped to 0", o.Outline[0].Page)
	}
}

func TestAssembleFirstTitleWins(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelTitle, "Real Title", 1),
		classified(model.LabelTitle, "Subtitle Also Labeled Title", 1),
	})

	if o.Title != "Real Title" {
		t.Errorf("Title = %q, want the first Title-labeled line", o.Title)
	}
}

func TestAssembleNoTitle(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH1, "Only a Heading", 1),
	})

	if o.Title != "" {
		t.Errorf("Title = %q, want empty", o.Title)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble(nil)
	if o.Title != "" {
		t.Errorf("Title = %q, want empty", o.Title)
	}
	if o.Outline == nil || len(o.Outline) != 0 {
		t.Errorf("Outline = %v, want empty non-nil slice", o.Outline)
	}
}

func TestAssembleDropsEmptyText(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH1, "   ", 2),
		classified(model.LabelH1, "Kept", 2),
	})

	if len(o.Outline) != 1 || o.Outline[0].Text != "Kept" {
		t.Errorf("outline = %v, want only the non-empty entry", o.Outline)
	}
}

func TestAssemblePreservesDuplicatesByDefault(t *testing.T) {
	a := NewAssembler()

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH2, "Repeated", 3),
		classified(model.LabelH2, "Repeated", 3),
	})

	if len(o.Outline) != 2 {
		t.Errorf("outline has %d entries, want duplicates preserved (2)", len(o.Outline))
	}
}

func TestAssembleDedupeOptIn(t *testing.T) {
	a := NewAssemblerWithConfig(Config{Dedupe: true})

	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH2, "Repeated", 3),
		classified(model.LabelH2, "REPEATED", 3), // case-insensitive match
		classified(model.LabelH2, "Repeated", 4), // different page survives
		classified(model.LabelH3, "Repeated", 3), // different level survives
	})

	if len(o.Outline) != 3 {
		t.Fatalf("outline has %d entries, want 3 after dedup", len(o.Outline))
	}
	if o.Outline[0].Text != "Repeated" {
		t.Errorf("dedup kept %q, want the first occurrence", o.Outline[0].Text)
	}
}

func TestAssembleMonotonicPageOrder(t *testing.T) {
	a := NewAssembler()

	// Out-of-order input: the assembler re-sorts stably by page.
	o := a.Assemble([]model.ClassifiedLine{
		classified(model.LabelH1, "Chapter Two", 5),
		classified(model.LabelH1, "Chapter One", 2),
		classified(model.LabelH2, "Two Point One", 5),
	})

	pages := []int{o.Outline[0].Page, o.Outline[1].Page, o.Outline[2].Page}
	if !(pages[0] <= pages[1] && pages[1] <= pages[2]) {
		t.Errorf("pages %v are not monotonic", pages)
	}
	if o.Outline[1].Text != "Chapter Two" || o.Outline[2].Text != "Two Point One" {
		t.Error("equal-page entries lost their appearance order")
	}
}
