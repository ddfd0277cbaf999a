// Package engine classifies hexagram lines by running a fixed priority
// cascade: reconciled per-line overrides, conditional constructions,
// strong keyword evidence, then a structural blend of the trigram-pair
// baseline with the keyword score. Later steps only run when earlier
// steps decline.
package engine

// #region imports
import (
	"errors"
	"fmt"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
	"github.com/mingshu-dev/yaocast/internal/lookup"
	"github.com/mingshu-dev/yaocast/internal/textscan"
)

// #endregion

// #region config

// Rule identifies which cascade step decided a classification.
type Rule string

const (
	RuleOverride      Rule = "override"
	RuleConditional   Rule = "conditional"
	RuleStrongKeyword Rule = "strong_keyword"
	RuleStructural    Rule = "structural"
	RuleDefault       Rule = "default"
)

// Config carries the cascade thresholds.
type Config struct {
	// StructuralWeight scales the baseline label score in the blend.
	StructuralWeight float64 `yaml:"structural_weight" mapstructure:"structural_weight"`
	// TextWeight scales the keyword score in the blend.
	TextWeight float64 `yaml:"text_weight" mapstructure:"text_weight"`
	// UpperCut is the blend value above which a line is auspicious.
	UpperCut float64 `yaml:"upper_cut" mapstructure:"upper_cut"`
	// LowerCut is the blend value below which a line is inauspicious.
	LowerCut float64 `yaml:"lower_cut" mapstructure:"lower_cut"`
	// StrongKeywordThreshold is the absolute keyword score at which the
	// text decides the label on its own.
	StrongKeywordThreshold int `yaml:"strong_keyword_threshold" mapstructure:"strong_keyword_threshold"`
}

// DefaultConfig returns the tuned thresholds.
func DefaultConfig() Config {
	return Config{
		StructuralWeight:       1.0,
		TextWeight:             0.3,
		UpperCut:               1.5,
		LowerCut:               -0.5,
		StrongKeywordThreshold: 3,
	}
}

// Validate rejects threshold combinations that cannot order the blend.
func (c Config) Validate() error {
	if c.UpperCut <= c.LowerCut {
		return fmt.Errorf("upper cut %.2f must exceed lower cut %.2f", c.UpperCut, c.LowerCut)
	}
	if c.StrongKeywordThreshold <= 0 {
		return errors.New("strong keyword threshold must be positive")
	}
	return nil
}

// #endregion config

// #region result

// Result reports a classification and the evidence behind it.
type Result struct {
	Hexagram int
	Position int
	Label    fortune.Label
	// Rule names the cascade step that produced Label.
	Rule Rule
	// RuleName carries the conditional rule name when Rule is
	// conditional, empty otherwise.
	RuleName string
	// TextScore is the bounded keyword score of the line text.
	TextScore int
	// Baseline is the trigram-pair cell label, empty when the cell was
	// missing from a partial table.
	Baseline fortune.Label
	// Blend is the combined structural/text value, meaningful only when
	// Rule is structural.
	Blend float64
	// Fallback reports that the structural cell was missing and the
	// cascade fell through to the default.
	Fallback bool
}

// #endregion result

// #region engine

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg     Config
	scanner *textscan.Scanner
	table   *lookup.Table
	steps   []step
}

type step struct {
	rule  Rule
	apply func(*Result, textscan.Signal)
}

// New assembles an engine over an already-built table. The table is not
// reconciled here; use Train to build and reconcile in one step.
func New(cfg Config, scanner *textscan.Scanner, table *lookup.Table) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scanner == nil {
		return nil, errors.New("nil scanner")
	}
	if table == nil {
		return nil, errors.New("nil lookup table")
	}
	e := &Engine{cfg: cfg, scanner: scanner, table: table}
	e.steps = []step{
		{RuleConditional, e.applyConditional},
		{RuleStrongKeyword, e.applyStrongKeyword},
		{RuleStructural, e.applyStructural},
	}
	return e, nil
}

// Train builds the table from records, assembles the engine, then
// reconciles: every training record that the bare cascade misreads gets
// a per-line override, so the trained engine reproduces its corpus
// exactly.
func Train(records []lookup.Record, cfg Config, scanCfg textscan.Config, buildCfg lookup.BuildConfig) (*Engine, error) {
	scanner, err := textscan.NewScanner(scanCfg)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	table, err := lookup.Build(records, buildCfg)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	e, err := New(cfg, scanner, table)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	_, err = table.Reconcile(records, func(r lookup.Record) (fortune.Label, error) {
		res, err := e.classify(r.Hexagram, r.Position, r.Text, false)
		if err != nil {
			return "", err
		}
		return res.Label, nil
	})
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	return e, nil
}

// Table exposes the engine's lookup table for reporting.
func (e *Engine) Table() *lookup.Table { return e.table }

// #endregion engine

// #region classify

// Classify runs the full cascade for one line.
func (e *Engine) Classify(hexNum, position int, text string) (Result, error) {
	return e.classify(hexNum, position, text, true)
}

func (e *Engine) classify(hexNum, position int, text string, useOverrides bool) (Result, error) {
	if _, err := hexagram.ByNumber(hexNum); err != nil {
		return Result{}, err
	}
	if position < 1 || position > 6 {
		return Result{}, fmt.Errorf("line %d-%d: %w", hexNum, position, hexagram.ErrInvalidPosition)
	}
	res := Result{Hexagram: hexNum, Position: position}

	if useOverrides {
		if label, ok := e.table.OverrideFor(hexNum, position); ok {
			res.Label = label
			res.Rule = RuleOverride
			return res, nil
		}
	}

	sig := e.scanner.Analyze(text)
	res.TextScore = sig.Score

	for _, s := range e.steps {
		s.apply(&res, sig)
		if res.Rule == s.rule {
			return res, nil
		}
	}

	res.Label = fortune.Neutral
	res.Rule = RuleDefault
	return res, nil
}

func (e *Engine) applyConditional(res *Result, sig textscan.Signal) {
	if sig.Conditional == nil {
		return
	}
	res.Label = sig.Conditional.Label
	res.Rule = RuleConditional
	res.RuleName = sig.Conditional.Name
}

func (e *Engine) applyStrongKeyword(res *Result, sig textscan.Signal) {
	if sig.Score >= e.cfg.StrongKeywordThreshold || sig.Score <= -e.cfg.StrongKeywordThreshold {
		res.Label = fortune.FromSign(sig.Score)
		res.Rule = RuleStrongKeyword
	}
}

func (e *Engine) applyStructural(res *Result, sig textscan.Signal) {
	h, err := hexagram.ByNumber(res.Hexagram)
	if err != nil {
		return
	}
	baseline, err := e.table.ForLine(h, res.Position)
	if err != nil {
		// partial table: leave the decision to the default step
		res.Fallback = true
		return
	}
	res.Baseline = baseline
	res.Blend = e.cfg.StructuralWeight*baseline.Score() + e.cfg.TextWeight*float64(sig.Score)
	switch {
	case res.Blend > e.cfg.UpperCut:
		res.Label = fortune.Auspicious
	case res.Blend < e.cfg.LowerCut:
		res.Label = fortune.Inauspicious
	default:
		res.Label = fortune.Neutral
	}
	res.Rule = RuleStructural
}

// #endregion classify
