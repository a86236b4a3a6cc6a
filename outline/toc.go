package outline

import (
	"strings"

	"github.com/tsawler/strata/model"
)

// Node is one entry of a hierarchical outline, with its subordinate
// headings nested beneath it.
type Node struct {
	Entry    model.OutlineEntry
	Children []Node

	// Depth is the nesting depth (0 = top level). A document that opens
	// with an H2 still nests at depth 0; depth reflects structure, not the
	// label's nominal level.
	Depth int
}

// Nest converts a flat, ordered entry list into a tree using heading
// levels: each entry becomes a child of the nearest preceding entry with a
// strictly smaller level. Entries at or above the level of everything
// before them start new top-level branches.
func Nest(entries []model.OutlineEntry) []Node {
	if len(entries) == 0 {
		return nil
	}

	var roots []Node
	var stack []*Node

	for _, e := range entries {
		// Pop anything at the same or deeper level.
		for len(stack) > 0 && stack[len(stack)-1].Entry.Level.Level() >= e.Level.Level() {
			stack = stack[:len(stack)-1]
		}

		node := Node{Entry: e, Depth: len(stack)}

		if len(stack) == 0 {
			roots = append(roots, node)
			stack = append(stack, &roots[len(roots)-1])
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, &parent.Children[len(parent.Children)-1])
		}
	}

	return roots
}

// RenderText returns a plain-text table of contents, one entry per line,
// indented two spaces per heading level.
func RenderText(o *model.DocumentOutline) string {
	if o == nil || len(o.Outline) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range o.Outline {
		sb.WriteString(strings.Repeat("  ", indentFor(e.Level)))
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderMarkdown returns a Markdown bullet-list table of contents.
func RenderMarkdown(o *model.DocumentOutline) string {
	if o == nil || len(o.Outline) == 0 {
		return ""
	}

	var sb strings.Builder
	if o.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(o.Title)
		sb.WriteString("\n\n")
	}
	for _, e := range o.Outline {
		sb.WriteString(strings.Repeat("  ", indentFor(e.Level)))
		sb.WriteString("- ")
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// indentFor maps a heading label to its indentation depth (H1 = 0).
func indentFor(level model.Label) int {
	l := level.Level()
	if l < 1 {
		return 0
	}
	return l - 1
}
