// Package textscan extracts fortune signals from classical line texts.
// It applies an ordered keyword weight table with masking, so compound
// markers consume their characters before shorter markers see them, and
// a set of conditional constructions that decide the label outright.
package textscan

// #region imports
import (
	"fmt"
	"regexp"
	"strings"
)

// #endregion

// #region scanner

// Scanner holds a compiled rule table. Construct once, reuse across
// calls; Analyze is safe for concurrent use.
type Scanner struct {
	cfg          Config
	conditionals []compiledConditional
}

type compiledConditional struct {
	rule ConditionalRule
	re   *regexp.Regexp
}

// NewScanner compiles the conditional expressions in cfg. An invalid
// expression or an invalid conditional label is a configuration error.
func NewScanner(cfg Config) (*Scanner, error) {
	s := &Scanner{cfg: cfg}
	for _, rule := range cfg.Conditionals {
		if !rule.Label.Valid() {
			return nil, fmt.Errorf("conditional %q: invalid label %q", rule.Name, rule.Label)
		}
		re, err := regexp.Compile(rule.Expr)
		if err != nil {
			return nil, fmt.Errorf("conditional %q: %w", rule.Name, err)
		}
		s.conditionals = append(s.conditionals, compiledConditional{rule: rule, re: re})
	}
	return s, nil
}

// #endregion scanner

// #region analyze

// Analyze scores one line text. Conditionals are matched against the
// original text; keyword rules run in declared order over a working
// copy, masking each match so overlapping substrings count once. The
// summed score is clamped to ±MaxScore. Empty text yields the zero
// Signal.
func (s *Scanner) Analyze(text string) Signal {
	var sig Signal
	if text == "" {
		return sig
	}

	for _, c := range s.conditionals {
		if c.re.MatchString(text) {
			sig.Conditional = &ConditionalMatch{Name: c.rule.Name, Label: c.rule.Label}
			break
		}
	}

	work := text
	mildOnly := true
	matchedAny := false
	for _, rule := range s.cfg.Keywords {
		n := strings.Count(work, rule.Pattern)
		if n == 0 {
			continue
		}
		matchedAny = true
		sig.Score += n * rule.Weight
		sig.Matched = append(sig.Matched, Match{Pattern: rule.Pattern, Weight: rule.Weight})
		if !rule.Mild {
			mildOnly = false
		}
		if rule.Weight < 0 {
			sig.Negative = true
		}
		// blank the matched spans so substrings of this pattern do not
		// re-count the same characters
		work = strings.ReplaceAll(work, rule.Pattern, "\x00")
	}
	sig.MildOnly = matchedAny && mildOnly

	if sig.Score > s.cfg.MaxScore {
		sig.Score = s.cfg.MaxScore
	}
	if sig.Score < -s.cfg.MaxScore {
		sig.Score = -s.cfg.MaxScore
	}
	return sig
}

// #endregion analyze
