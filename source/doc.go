// Package source loads line records produced by an upstream document
// parser and normalizes them for classification.
//
// The parser collaborator emits one JSON array of line records per
// document ([Load], [LoadFile]). [Normalize] then prepares the records for
// the sequential classification pass: text is NFC-normalized and trimmed,
// empty lines are dropped, records are sorted into reading order (page
// ascending, then vertical position, then horizontal position), and
// space_above is recomputed from consecutive bounding boxes on the same
// page. Classification depends on that ordering — space_above is defined
// by the immediately preceding line — so Normalize is the one place the
// ordering contract is enforced.
package source
