// Package model defines the core data types shared across strata packages.
//
// The central type is [LineRecord], one positioned line of text as reported
// by an upstream document parser. Classification attaches a [Label] to each
// record, and the outline stage turns labeled records into [OutlineEntry]
// values collected in a [DocumentOutline].
//
// All types in this package are plain values with no hidden state. A
// LineRecord is never mutated after construction; derived information lives
// in the features package instead.
package model
