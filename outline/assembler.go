package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/strata/model"
)

// Config holds configuration for outline assembly.
type Config struct {
	// Dedupe drops repeated (level, text, page) entries, comparing text
	// case-insensitively. Off by default: within one document, duplicates
	// produced by the rule engine are preserved as-is.
	Dedupe bool
}

// DefaultConfig returns the default assembly configuration.
func DefaultConfig() Config {
	return Config{Dedupe: false}
}

// Assembler builds document outlines from classified lines.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultConfig()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{config: config}
}

// Assemble produces the outline for one document. The input must be in
// reading order (page ascending, then vertical position); entries keep that
// order, stably re-sorted by page so the outline is always monotonic even
// if the caller's ordering slipped. Lines whose trimmed text is empty are
// dropped silently. An empty input yields an empty title and empty outline,
// not an error.
func (a *Assembler) Assemble(lines []model.ClassifiedLine) *model.DocumentOutline {
	title := ""
	entries := []model.OutlineEntry{}

	for _, line := range lines {
		text := line.TrimmedText()
		if text == "" {
			continue
		}

		switch {
		case line.Label == model.LabelTitle:
			if title == "" {
				title = text
			}
		case line.Label.IsHeading():
			page := line.Page - 1
			if page < 0 {
				page = 0
			}
			entries = append(entries, model.OutlineEntry{
				Level: line.Label,
				Text:  text,
				Page:  page,
			})
		}
	}

	// Stable: equal pages keep appearance order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})

	if a.config.Dedupe {
		entries = dedupe(entries)
	}

	return &model.DocumentOutline{
		Title:   title,
		Outline: entries,
	}
}

// dedupe removes exact repeats of (level, lowercased text, page), keeping
// the first occurrence.
func dedupe(entries []model.OutlineEntry) []model.OutlineEntry {
	seen := make(map[model.OutlineEntry]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := model.OutlineEntry{
			Level: e.Level,
			Text:  strings.ToLower(e.Text),
			Page:  e.Page,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
