package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML configuration surface for the engine: threshold
// overrides applied on top of the defaults, and an optional replacement
// rule table. An absent rules section keeps the built-in table.
//
// Example:
//
//	thresholds:
//	  TITLE_FONT_MIN: 22
//	  LARGE_SPACE_ABOVE: 18
//	rules:
//	  - name: title
//	    priority: 1
//	    label: Title
//	    conditions:
//	      required:
//	        - {feature: page, operator: "==", value: 1}
//	        - {feature: is_bold, operator: "==", value: true}
//	      any_of:
//	        - all_of:
//	            - {feature: font_size, operator: ">=", threshold: TITLE_FONT_MIN}
//	            - {feature: is_centered, operator: "==", value: true}
type File struct {
	Thresholds map[string]float64 `yaml:"thresholds,omitempty"`
	Rules      []Rule             `yaml:"rules,omitempty"`
}

// Parse decodes and validates a YAML rule configuration.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules config: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a YAML rule configuration from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// validate checks every rule in the file and rejects duplicate rule names.
func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Rules))
	for _, r := range f.Rules {
		if err := r.validate(); err != nil {
			return err
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate rule name %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// Engine builds an engine from the file: the file's rule table when
// present (the defaults otherwise), with threshold overrides merged on top
// of the defaults.
func (f *File) Engine() *Engine {
	table := f.Rules
	if len(table) == 0 {
		table = DefaultRules()
	}
	e := NewEngineWithRules(table)
	e.SetThresholds(f.Thresholds)
	return e
}
