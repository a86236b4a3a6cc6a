// Package rules implements the declarative, priority-ordered classification
// engine that assigns structural labels to document lines.
//
// A [Rule] pairs a label with a condition tree: a Required conjunction, an
// optional AnyOf disjunction whose branches may themselves be AllOf
// conjunctions, and a parallel list of Exclusions that veto the rule when
// any of them holds. Conditions compare a named feature against either a
// literal value or a named threshold (plus optional offset) resolved from a
// [ThresholdSet] at evaluation time, so a single rule table adapts to
// document-specific calibration without changes.
//
// The [Engine] evaluates rules in ascending priority order and returns the
// label of the first rule whose exclusions all fail and whose conditions
// all hold. When nothing matches, the label is BodyText. Evaluation is a
// pure function of (line, thresholds): an Engine is safe for concurrent
// read-only use as long as its thresholds are not updated mid-document.
//
// [DefaultRules] and [DefaultThresholds] provide the built-in table;
// [Load] and [Parse] read replacements or overrides from YAML.
package rules
