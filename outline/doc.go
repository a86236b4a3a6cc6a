// Package outline assembles classified lines into a document outline.
//
// The [Assembler] selects the document title (the first Title-labeled line
// in reading order), collects H1-H3 lines as outline entries with pages
// converted to the 0-based output convention, and keeps entries in
// monotonic page order. Duplicate entries are preserved by default;
// deduplication is an opt-in caller policy.
//
// [Nest] turns the flat entry list into a level-nested tree, and
// [RenderText] / [RenderMarkdown] produce human-readable tables of
// contents.
package outline
