// Package calibrate derives document-specific font-size thresholds from the
// distribution of sizes observed across a document's lines.
//
// The most frequent size is taken as the body text size; when at least four
// distinct sizes exist, the four largest become the Title/H1/H2/H3 minimum
// cutoffs. With fewer distinct sizes calibration is a no-op and the engine's
// defaults stand — it never errors and never partially applies.
//
// Calibration must complete before any line of the document is classified,
// and the resulting thresholds apply uniformly to every line of that
// document.
package calibrate
