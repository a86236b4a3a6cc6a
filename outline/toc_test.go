package outline

import (
	"strings"
	"testing"

	"github.com/tsawler/strata/model"
)

func sampleEntries() []model.OutlineEntry {
	return []model.OutlineEntry{
		{Level: model.LabelH1, Text: "Topology", Page: 1},
		{Level: model.LabelH2, Text: "Spine and Leaf", Page: 1},
		{Level: model.LabelH3, Text: "Oversubscription", Page: 2},
		{Level: model.LabelH2, Text: "Full Mesh", Page: 3},
		{Level: model.LabelH1, Text: "Addressing", Page: 4},
	}
}

func TestNest(t *testing.T) {
	roots := Nest(sampleEntries())

	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}

	topo := roots[0]
	if topo.Entry.Text != "Topology" || topo.Depth != 0 {
		t.Errorf("first root = %q depth %d, want Topology at depth 0", topo.Entry.Text, topo.Depth)
	}
	if len(topo.Children) != 2 {
		t.Fatalf("Topology has %d children, want 2", len(topo.Children))
	}
	if topo.Children[0].Entry.Text != "Spine and Leaf" {
		t.Errorf("first child = %q, want Spine and Leaf", topo.Children[0].Entry.Text)
	}
	if len(topo.Children[0].Children) != 1 || topo.Children[0].Children[0].Entry.Text != "Oversubscription" {
		t.Error("expected Oversubscription nested under Spine and Leaf")
	}
	if topo.Children[0].Children[0].Depth != 2 {
		t.Errorf("H3 depth = %d, want 2", topo.Children[0].Children[0].Depth)
	}
	if topo.Children[1].Entry.Text != "Full Mesh" {
		t.Errorf("second child = %q, want Full Mesh", topo.Children[1].Entry.Text)
	}

	if roots[1].Entry.Text != "Addressing" {
		t.Errorf("second root = %q, want Addressing", roots[1].Entry.Text)
	}
}

func TestNestLeadingSubHeading(t *testing.T) {
	// A document that opens with an H2 roots it at depth 0.
	roots := Nest([]model.OutlineEntry{
		{Level: model.LabelH2, Text: "Orphan", Page: 0},
		{Level: model.LabelH1, Text: "Chapter", Page: 1},
	})

	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Depth != 0 {
		t.Errorf("leading H2 depth = %d, want 0", roots[0].Depth)
	}
}

func TestNestEmpty(t *testing.T) {
	if got := Nest(nil); got != nil {
		t.Errorf("Nest(nil) = %v, want nil", got)
	}
}

func TestRenderText(t *testing.T) {
	o := &model.DocumentOutline{Title: "Guide", Outline: sampleEntries()}
	got := RenderText(o)

	want := "Topology\n" +
		"  Spine and Leaf\n" +
		"    Oversubscription\n" +
		"  Full Mesh\n" +
		"Addressing\n"
	if got != want {
		t.Errorf("RenderText:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMarkdown(t *testing.T) {
	o := &model.DocumentOutline{Title: "Guide", Outline: sampleEntries()}
	got := RenderMarkdown(o)

	if !strings.HasPrefix(got, "# Guide\n\n") {
		t.Errorf("markdown does not open with the title heading: %q", got)
	}
	if !strings.Contains(got, "- Topology\n") {
		t.Error("missing top-level bullet for Topology")
	}
	if !strings.Contains(got, "    - Oversubscription\n") {
		t.Error("missing doubly indented bullet for Oversubscription")
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := RenderText(nil); got != "" {
		t.Errorf("RenderText(nil) = %q, want empty", got)
	}
	if got := RenderMarkdown(&model.DocumentOutline{}); got != "" {
		t.Errorf("RenderMarkdown(empty) = %q, want empty", got)
	}
}
