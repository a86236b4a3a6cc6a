package rules

import "github.com/tsawler/strata/model"

// DefaultRules returns the built-in rule table.
//
// The ordering intent: the title rule and the two exclusion rules carry the
// lowest priorities so they preempt the generic font-size heading rules.
// H1/H2/H3 then separate on font size, spacing above, and indentation, each
// rejecting lines that read like sentences (terminal punctuation) or run
// too long.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "title",
			Priority: 1,
			Label:    model.LabelTitle,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "page", Op: OpEq, Value: 1},
					{Feature: "is_bold", Op: OpEq, Value: true},
				},
				AnyOf: []Clause{
					{AllOf: []Condition{
						{Feature: "font_size", Op: OpGe, Threshold: TitleFontMin},
						{Feature: "is_centered", Op: OpEq, Value: true},
						{Feature: "is_top_of_page", Op: OpEq, Value: true},
					}},
					{AllOf: []Condition{
						{Feature: "font_size", Op: OpGe, Threshold: H1FontMin},
						{Feature: "is_centered", Op: OpEq, Value: true},
						{Feature: "is_top_of_page", Op: OpEq, Value: true},
						{Feature: "line_length", Op: OpLt, Value: 80},
					}},
				},
			},
		},
		{
			Name:     "exclude-form-fields",
			Priority: 2,
			Label:    model.LabelBodyText,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "starts_with_number_or_bullet", Op: OpEq, Value: true},
					{Feature: "font_size", Op: OpLe, Threshold: BodyTextFontMax, Offset: 1},
					{Feature: "is_bold", Op: OpEq, Value: false},
				},
			},
		},
		{
			Name:     "exclude-header-footer",
			Priority: 3,
			Label:    model.LabelOther,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "contains_keywords", Op: OpEq, Value: true},
					{Feature: "font_size", Op: OpLt, Threshold: H3FontMin, Offset: 2},
				},
				AnyOf: []Clause{
					{Cond: &Condition{Feature: "is_at_margins", Op: OpEq, Value: true}},
				},
			},
		},
		{
			Name:     "h1",
			Priority: 4,
			Label:    model.LabelH1,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "font_size", Op: OpGe, Threshold: H1FontMin},
					{Feature: "is_bold", Op: OpEq, Value: true},
					{Feature: "space_above", Op: OpGe, Threshold: LargeSpaceAbove},
					{Feature: "line_length", Op: OpLt, Value: 80},
					{Feature: "ends_with_punctuation", Op: OpEq, Value: false},
					{Feature: "x0_normalized", Op: OpLt, Threshold: MainIndentX0Max},
				},
			},
			Exclusions: []Condition{
				{Feature: "contains_separators", Op: OpEq, Value: true},
			},
		},
		{
			Name:     "h2",
			Priority: 5,
			Label:    model.LabelH2,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "font_size", Op: OpGe, Threshold: H2FontMin},
					{Feature: "is_bold", Op: OpEq, Value: true},
					{Feature: "space_above", Op: OpGe, Threshold: MediumSpaceAbove},
					{Feature: "line_length", Op: OpLt, Value: 90},
					{Feature: "ends_with_punctuation", Op: OpEq, Value: false},
					{Feature: "x0_normalized", Op: OpGe, Threshold: SubIndentX0Min},
					{Feature: "x0_normalized", Op: OpLt, Threshold: SubSubIndentMin},
				},
			},
		},
		{
			Name:     "h3",
			Priority: 6,
			Label:    model.LabelH3,
			Conditions: ConditionTree{
				Required: []Condition{
					{Feature: "font_size", Op: OpGe, Threshold: H3FontMin},
					{Feature: "is_bold", Op: OpEq, Value: true},
					{Feature: "space_above", Op: OpGe, Threshold: SmallSpaceAbove},
					{Feature: "line_length", Op: OpLt, Value: 100},
					{Feature: "ends_with_punctuation", Op: OpEq, Value: false},
					{Feature: "x0_normalized", Op: OpGe, Threshold: SubSubIndentMin},
				},
			},
		},
	}
}
