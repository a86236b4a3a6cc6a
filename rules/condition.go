package rules

import (
	"fmt"
	"strings"

	"github.com/tsawler/strata/features"
)

// Op is a condition comparison operator.
type Op string

const (
	OpEq       Op = "=="
	OpNe       Op = "!="
	OpLt       Op = "<"
	OpLe       Op = "<="
	OpGt       Op = ">"
	OpGe       Op = ">="
	OpContains Op = "contains"
)

// Valid returns true if the operator is one of the defined values.
func (o Op) Valid() bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpContains:
		return true
	default:
		return false
	}
}

// Condition compares a named feature against a comparison value. The value
// is either the Value literal or, when Threshold is set, the named entry of
// the threshold set in scope plus Offset, resolved at evaluation time.
type Condition struct {
	Feature   string  `yaml:"feature"`
	Op        Op      `yaml:"operator"`
	Value     any     `yaml:"value,omitempty"`
	Threshold string  `yaml:"threshold,omitempty"`
	Offset    float64 `yaml:"offset,omitempty"`
}

// Eval evaluates the condition against a derived feature set.
//
// A feature name unknown to the feature set evaluates to false rather than
// erroring. This is a documented forward-compatibility contract: rule
// tables written for newer feature vocabularies silently no-op on the
// branches an older deriver cannot resolve.
func (c Condition) Eval(f *features.DerivedFeatures, thresholds ThresholdSet) bool {
	fv, ok := f.Feature(c.Feature)
	if !ok {
		return false
	}

	var cv features.Value
	if c.Threshold != "" {
		cv = features.Number(thresholds.Value(c.Threshold) + c.Offset)
	} else {
		cv, ok = literalValue(c.Value)
		if !ok {
			return false
		}
	}

	return compare(fv, c.Op, cv)
}

// literalValue converts a literal from the rule table (as decoded from YAML
// or written in Go) into a feature value.
func literalValue(v any) (features.Value, bool) {
	switch t := v.(type) {
	case bool:
		return features.Boolean(t), true
	case int:
		return features.Number(float64(t)), true
	case int64:
		return features.Number(float64(t)), true
	case float32:
		return features.Number(float64(t)), true
	case float64:
		return features.Number(t), true
	case string:
		return features.Text(t), true
	default:
		return features.Value{}, false
	}
}

// compare applies the operator to a feature value and a comparison value.
// Comparisons across mismatched kinds evaluate to false.
func compare(fv features.Value, op Op, cv features.Value) bool {
	if fv.Kind() != cv.Kind() {
		return false
	}

	switch fv.Kind() {
	case features.KindBool:
		switch op {
		case OpEq:
			return fv.Bool() == cv.Bool()
		case OpNe:
			return fv.Bool() != cv.Bool()
		}
		return false

	case features.KindNumber:
		a, b := fv.Num(), cv.Num()
		switch op {
		case OpEq:
			return a == b
		case OpNe:
			return a != b
		case OpLt:
			return a < b
		case OpLe:
			return a <= b
		case OpGt:
			return a > b
		case OpGe:
			return a >= b
		}
		return false

	case features.KindText:
		a, b := fv.Str(), cv.Str()
		switch op {
		case OpEq:
			return a == b
		case OpNe:
			return a != b
		case OpContains:
			return strings.Contains(strings.ToLower(a), strings.ToLower(b))
		}
		return false
	}

	return false
}

// validate checks that the condition is structurally sound: it names a
// feature, carries a known operator, and has exactly one source for its
// comparison value.
func (c Condition) validate() error {
	if c.Feature == "" {
		return fmt.Errorf("condition has no feature name")
	}
	if !c.Op.Valid() {
		return fmt.Errorf("condition on %q: unknown operator %q", c.Feature, c.Op)
	}
	if c.Threshold == "" && c.Value == nil {
		return fmt.Errorf("condition on %q: neither value nor threshold given", c.Feature)
	}
	if c.Threshold != "" && c.Value != nil {
		return fmt.Errorf("condition on %q: both value and threshold given", c.Feature)
	}
	return nil
}
