package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/strata/features"
	"github.com/tsawler/strata/model"
)

// Clause is one branch of an AnyOf disjunction: either a single condition
// or an AllOf conjunction that must hold in full for the branch to hold.
type Clause struct {
	Cond  *Condition
	AllOf []Condition
}

// Eval evaluates the clause against a feature set.
func (cl Clause) Eval(f *features.DerivedFeatures, thresholds ThresholdSet) bool {
	if len(cl.AllOf) > 0 {
		for _, c := range cl.AllOf {
			if !c.Eval(f, thresholds) {
				return false
			}
		}
		return true
	}
	if cl.Cond != nil {
		return cl.Cond.Eval(f, thresholds)
	}
	return false
}

// UnmarshalYAML decodes a clause from either an all_of group or a bare
// condition mapping.
func (cl *Clause) UnmarshalYAML(node *yaml.Node) error {
	var group struct {
		AllOf []Condition `yaml:"all_of"`
	}
	if err := node.Decode(&group); err == nil && len(group.AllOf) > 0 {
		cl.AllOf = group.AllOf
		return nil
	}

	var cond Condition
	if err := node.Decode(&cond); err != nil {
		return err
	}
	cl.Cond = &cond
	return nil
}

// MarshalYAML encodes the clause back into the form it was written in.
func (cl Clause) MarshalYAML() (any, error) {
	if len(cl.AllOf) > 0 {
		return map[string][]Condition{"all_of": cl.AllOf}, nil
	}
	if cl.Cond != nil {
		return *cl.Cond, nil
	}
	return nil, fmt.Errorf("empty clause")
}

// ConditionTree is the main condition structure of a rule. The tree holds
// when every Required condition holds and, if AnyOf is non-empty, at least
// one of its clauses holds. An absent AnyOf is vacuously true.
type ConditionTree struct {
	Required []Condition `yaml:"required,omitempty"`
	AnyOf    []Clause    `yaml:"any_of,omitempty"`
}

// Eval evaluates the tree against a feature set.
func (tr ConditionTree) Eval(f *features.DerivedFeatures, thresholds ThresholdSet) bool {
	for _, c := range tr.Required {
		if !c.Eval(f, thresholds) {
			return false
		}
	}

	if len(tr.AnyOf) > 0 {
		satisfied := false
		for _, cl := range tr.AnyOf {
			if cl.Eval(f, thresholds) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

// Rule maps a condition tree to a structural label. Rules are static
// configuration: loaded once, sorted by priority, never mutated at runtime.
// Thresholds referenced by name are the only part that varies per document.
type Rule struct {
	// Name identifies the rule in configuration and diagnostics.
	Name string `yaml:"name"`

	// Priority orders evaluation; lower numbers are tried first. Specific,
	// contextual rules (title detection, form-field exclusions) must carry
	// lower numbers than the generic font-size rules they preempt.
	Priority int `yaml:"priority"`

	// Label is returned when the rule matches.
	Label model.Label `yaml:"label"`

	// Conditions is the main condition tree.
	Conditions ConditionTree `yaml:"conditions"`

	// Exclusions veto the rule: if any of them holds, the rule is skipped
	// regardless of the main conditions.
	Exclusions []Condition `yaml:"exclusions,omitempty"`
}

// Matches reports whether the rule applies to the feature set: no exclusion
// holds and the condition tree holds.
func (r Rule) Matches(f *features.DerivedFeatures, thresholds ThresholdSet) bool {
	for _, ex := range r.Exclusions {
		if ex.Eval(f, thresholds) {
			return false
		}
	}
	return r.Conditions.Eval(f, thresholds)
}

// validate checks the rule's structural soundness.
func (r Rule) validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule has no name")
	}
	if !r.Label.Valid() {
		return fmt.Errorf("rule %q: unknown label %q", r.Name, r.Label)
	}
	for _, c := range r.Conditions.Required {
		if err := c.validate(); err != nil {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
	}
	for _, cl := range r.Conditions.AnyOf {
		conds := cl.AllOf
		if cl.Cond != nil {
			conds = []Condition{*cl.Cond}
		}
		if len(conds) == 0 {
			return fmt.Errorf("rule %q: empty any_of clause", r.Name)
		}
		for _, c := range conds {
			if err := c.validate(); err != nil {
				return fmt.Errorf("rule %q: %w", r.Name, err)
			}
		}
	}
	for _, c := range r.Exclusions {
		if err := c.validate(); err != nil {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
	}
	return nil
}
