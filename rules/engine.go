package rules

import (
	"sort"

	"github.com/tsawler/strata/features"
	"github.com/tsawler/strata/model"
)

// DefaultLabel is returned when no rule matches a line.
const DefaultLabel = model.LabelBodyText

// Engine classifies lines by evaluating a fixed rule table in priority
// order. The first rule whose exclusions all fail and whose conditions all
// hold wins; evaluation short-circuits there.
//
// Classification is a pure function of (line, thresholds). The engine's own
// threshold set may be replaced between documents via [Engine.SetThresholds]
// but must not be replaced while a document is being classified; callers
// wanting full isolation use [Engine.ClassifyWith] with their own set.
type Engine struct {
	deriver    *features.Deriver
	rules      []Rule
	thresholds ThresholdSet
}

// NewEngine creates an engine with the default rule table, default
// thresholds, and a default feature deriver.
func NewEngine() *Engine {
	return NewEngineWithRules(DefaultRules())
}

// NewEngineWithRules creates an engine with a custom rule table. The rules
// are copied and sorted by ascending priority; ties keep their given order.
func NewEngineWithRules(ruleTable []Rule) *Engine {
	sorted := make([]Rule, len(ruleTable))
	copy(sorted, ruleTable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	return &Engine{
		deriver:    features.NewDeriver(),
		rules:      sorted,
		thresholds: DefaultThresholds(),
	}
}

// SetDeriver replaces the feature deriver (for custom keyword lists or
// margin geometry).
func (e *Engine) SetDeriver(d *features.Deriver) {
	if d != nil {
		e.deriver = d
	}
}

// SetThresholds merges overrides into the engine's threshold set, last
// writer wins. Call between documents, never mid-classification.
func (e *Engine) SetThresholds(overrides map[string]float64) {
	e.thresholds = e.thresholds.Merge(overrides)
}

// Thresholds returns a copy of the engine's current threshold set.
func (e *Engine) Thresholds() ThresholdSet {
	return e.thresholds.Clone()
}

// Rules returns the rule table in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Classify labels one line using the engine's current thresholds.
func (e *Engine) Classify(rec model.LineRecord) model.Label {
	return e.ClassifyWith(rec, e.thresholds)
}

// ClassifyWith labels one line against an explicit threshold set. This is
// the concurrency-safe entry point: it reads no mutable engine state beyond
// the immutable rule table and deriver configuration.
func (e *Engine) ClassifyWith(rec model.LineRecord, thresholds ThresholdSet) model.Label {
	f := e.deriver.Derive(rec)

	for _, r := range e.rules {
		if r.Matches(&f, thresholds) {
			return r.Label
		}
	}
	return DefaultLabel
}

// ClassifyAll labels a sequence of lines in order against an explicit
// threshold set, preserving input order.
func (e *Engine) ClassifyAll(recs []model.LineRecord, thresholds ThresholdSet) []model.ClassifiedLine {
	out := make([]model.ClassifiedLine, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.ClassifiedLine{
			LineRecord: rec,
			Label:      e.ClassifyWith(rec, thresholds),
		})
	}
	return out
}
