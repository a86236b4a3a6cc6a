// Package strata classifies the structural role of document lines — title,
// heading levels, body text, or noise — from layout and typographic
// signals, and assembles the headings into a table of contents. It does
// not parse documents itself: an upstream parser supplies positioned line
// records (see the source package for the JSON form), and strata turns
// them into an outline.
//
// Basic usage:
//
//	p := strata.New(strata.Config{})
//	result := p.Process(lines)
//	fmt.Println(result.Title, result.EntryCount(), "headings")
//
// Classification runs a priority-ordered rule table (rules package) over
// features derived from each line (features package), with font-size
// thresholds optionally calibrated per document (calibrate package), and
// the outline package assembles the labeled lines.
package strata

import (
	"log/slog"

	"github.com/tsawler/strata/calibrate"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/outline"
	"github.com/tsawler/strata/rules"
)

// Config holds configuration for a Processor.
type Config struct {
	// Engine is the rule engine to classify with. Nil means the default
	// rule table and thresholds.
	Engine *rules.Engine

	// Thresholds are overrides merged on top of the engine's set before
	// any calibration.
	Thresholds map[string]float64

	// NoCalibration disables per-document font-size calibration. By
	// default each document's font census adjusts the size thresholds
	// before its lines are classified.
	NoCalibration bool

	// Dedupe drops repeated (level, text, page) outline entries.
	Dedupe bool

	// Logger receives debug-level processing logs. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// defaults fills zero-valued fields.
func (c *Config) defaults() {
	if c.Engine == nil {
		c.Engine = rules.NewEngine()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Processor classifies documents and assembles their outlines.
//
// A Processor holds no per-document state: every Process call snapshots
// its own threshold set (post-calibration) and walks the lines
// sequentially, so one Processor may serve many documents from separate
// goroutines concurrently.
type Processor struct {
	cfg       Config
	engine    *rules.Engine
	assembler *outline.Assembler
	logger    *slog.Logger
}

// New creates a Processor with the given configuration.
func New(cfg Config) *Processor {
	cfg.defaults()
	cfg.Engine.SetThresholds(cfg.Thresholds)
	return &Processor{
		cfg:       cfg,
		engine:    cfg.Engine,
		assembler: outline.NewAssemblerWithConfig(outline.Config{Dedupe: cfg.Dedupe}),
		logger:    cfg.Logger,
	}
}

// Process classifies one document's lines and assembles its outline. The
// lines must be in reading order (page ascending, then vertical position);
// use source.Normalize when the upstream ordering is not guaranteed. An
// empty input yields an empty title and empty outline.
func (p *Processor) Process(lines []model.LineRecord) *model.DocumentOutline {
	return p.assembler.Assemble(p.Classify(lines))
}

// Classify labels each line of one document, in order, and returns the
// labeled lines. Calibration (unless disabled) runs over the whole
// document first, and the resulting thresholds apply uniformly to every
// line — they are frozen before the first classification call.
func (p *Processor) Classify(lines []model.LineRecord) []model.ClassifiedLine {
	thresholds := p.engine.Thresholds()

	if !p.cfg.NoCalibration {
		stats := calibrate.AnalyzeLines(lines)
		if overrides := stats.Thresholds(); overrides != nil {
			thresholds = thresholds.Merge(overrides)
			p.logger.Debug("calibrated font thresholds",
				"body_size", stats.BodySize,
				"distinct_sizes", len(stats.Sizes),
				"lines", stats.LineCount)
		} else {
			p.logger.Debug("calibration skipped, keeping defaults",
				"distinct_sizes", len(stats.Sizes))
		}
	}

	return p.engine.ClassifyAll(lines, thresholds)
}

// Engine returns the processor's rule engine.
func (p *Processor) Engine() *rules.Engine {
	return p.engine
}
