// Package features derives higher-order classification features from raw
// line records.
//
// The [Deriver] is a pure function of its inputs: given a
// [model.LineRecord] it computes positional features (normalized
// indentation, centering, page-margin proximity), keyword and separator
// membership against configured pattern lists, and text-shape predicates
// (all-caps, title-case, terminal punctuation, leading enumerators). Nothing
// on the record is mutated; the result is a fresh [DerivedFeatures] value.
//
// Derived features are addressable by name through
// [DerivedFeatures.Feature], which the rule engine uses to resolve
// conditions. Unknown names report ok=false, which the engine treats as a
// non-matching condition — this keeps rule tables forward-compatible with
// features added later.
package features
