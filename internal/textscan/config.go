package textscan

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mingshu-dev/yaocast/internal/fortune"
)

// #endregion

// #region config

// Config carries the keyword weight table and the conditional pattern
// table. Both are data, not code: they can be replaced wholesale from a
// YAML file without touching the scanner.
type Config struct {
	Keywords     []KeywordRule     `yaml:"keywords"`
	Conditionals []ConditionalRule `yaml:"conditionals"`
	// MaxScore bounds the absolute keyword score.
	MaxScore int `yaml:"max_score"`
}

// #endregion config

// #region default-keywords

// DefaultConfig returns the curated rule set. Keyword order matters:
// compound markers precede their substrings (貞凶 before 凶, 无不利 and
// 不利 before 利, 悔亡 before 悔) so masking keeps each character span
// counted once. The weights rank strongest markers at ±3; 无咎 and 吝
// carry weight 0 because the corpus shows them resolving to a neutral
// outcome far more often than an auspicious one.
func DefaultConfig() Config {
	return Config{
		MaxScore: 6,
		Keywords: []KeywordRule{
			// strong positive
			{Pattern: "无不利", Weight: 3},
			{Pattern: "元吉", Weight: 3},
			{Pattern: "大吉", Weight: 3},
			{Pattern: "終吉", Weight: 3},
			// strong negative
			{Pattern: "貞凶", Weight: -3},
			{Pattern: "征凶", Weight: -2},
			{Pattern: "凶", Weight: -3},
			{Pattern: "災", Weight: -3},
			// calamity marker, but 无眚 negates it
			{Pattern: "无眚", Weight: 0, Mild: true},
			{Pattern: "眚", Weight: -2},
			// medium positive
			{Pattern: "貞吉", Weight: 2},
			// weak negative, ahead of the bare 利 forms they contain
			{Pattern: "无攸利", Weight: -1},
			{Pattern: "不利", Weight: -1},
			// weak positive
			{Pattern: "悔亡", Weight: 1},
			{Pattern: "利", Weight: 1},
			// mild markers: biased to neutral by design
			{Pattern: "无咎", Weight: 0, Mild: true},
			{Pattern: "无悔", Weight: 0, Mild: true},
			{Pattern: "勿用", Weight: 0, Mild: true},
			{Pattern: "吝", Weight: 0, Mild: true},
			// weak negative remainders
			{Pattern: "厲", Weight: -1},
			{Pattern: "悔", Weight: -1},
			// bare 吉 last so every compound above wins first
			{Pattern: "吉", Weight: 2},
		},
		Conditionals: []ConditionalRule{
			{
				Name:      "danger-then-fortune-ending-regret",
				Expr:      `(?s)厲.{0,2}吉.*終吝`,
				Label:     fortune.Neutral,
				Rationale: "danger resolved well but the line ends in regret",
			},
			{
				Name:      "advance-misfortune-stay-fortune",
				Expr:      `征.{0,2}凶.{0,6}居.{0,2}(吉|貞)`,
				Label:     fortune.Auspicious,
				Rationale: "misfortune only attaches to advancing; staying is favored",
			},
			{
				Name:      "misfortune-stay-fortune",
				Expr:      `凶.{0,10}居.{0,2}吉`,
				Label:     fortune.Neutral,
				Rationale: "outcome depends on the choice, so neither pole holds",
			},
			{
				Name:      "steadfast-fortune-advance-misfortune",
				Expr:      `貞.{0,2}吉.{0,10}(有攸往|往).{0,3}凶`,
				Label:     fortune.Auspicious,
				Rationale: "fortune attaches to holding position",
			},
			{
				Name:      "danger-then-fortune",
				Expr:      `厲.{0,2}吉`,
				Label:     fortune.Auspicious,
				Rationale: "danger acknowledged but the line resolves well",
			},
			{
				Name:      "small-fortune-large-misfortune",
				Expr:      `小.{0,3}(吉|利).{0,8}大.{0,3}(凶|厲)`,
				Label:     fortune.Neutral,
				Rationale: "gains and losses offset across scale",
			},
			{
				Name:      "large-fortune-small-misfortune",
				Expr:      `大.{0,3}(吉|利).{0,8}小.{0,3}(凶|厲)`,
				Label:     fortune.Auspicious,
				Rationale: "the larger matter dominates",
			},
			{
				Name:      "wife-fortune-husband-misfortune",
				Expr:      `婦.{0,3}吉.{0,6}(夫|男).{0,3}凶`,
				Label:     fortune.Neutral,
				Rationale: "outcome depends on the actor",
			},
			{
				Name:      "no-blame-no-praise",
				Expr:      `无咎.{0,6}无譽`,
				Label:     fortune.Neutral,
				Rationale: "explicitly neither blamed nor praised",
			},
		},
	}
}

// #endregion default-keywords

// #region yaml

// LoadConfig reads a rule table from a YAML file. Missing optional
// fields fall back to the defaults so a file may override only the
// keyword table or only the conditionals.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read rule config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse rule config: %w", err)
	}
	if cfg.MaxScore <= 0 {
		cfg.MaxScore = DefaultConfig().MaxScore
	}
	return cfg, nil
}

// #endregion yaml
