package textscan

// #region imports
import (
	"github.com/mingshu-dev/yaocast/internal/fortune"
)

// #endregion

// #region keyword-rule

// KeywordRule binds a literal substring pattern to a signed integer
// weight. Rules are applied in declared order, and a matched pattern is
// masked out of the text so later, shorter patterns cannot re-count the
// same characters (元吉 must not also score as 吉).
type KeywordRule struct {
	Pattern string `yaml:"pattern"`
	Weight  int    `yaml:"weight"`
	// Mild marks the "no blame / no praise" class of markers that are
	// deliberately weighted toward neutral rather than auspicious.
	Mild bool `yaml:"mild,omitempty"`
}

// #endregion keyword-rule

// #region conditional-rule

// ConditionalRule is a classical conditional construction (e.g. "going
// brings misfortune, staying brings fortune") that overrides the keyword
// score outright instead of adding to it: the conditional changes the
// polarity of the line, not its magnitude.
type ConditionalRule struct {
	Name      string        `yaml:"name"`
	Expr      string        `yaml:"expr"`
	Label     fortune.Label `yaml:"label"`
	Rationale string        `yaml:"rationale,omitempty"`
}

// #endregion conditional-rule

// #region signal

// Match records one keyword rule that fired.
type Match struct {
	Pattern string
	Weight  int
}

// ConditionalMatch records the first conditional rule that fired.
type ConditionalMatch struct {
	Name  string
	Label fortune.Label
}

// Signal is the full output of analyzing one line text. The zero value
// is the neutral default for empty or unrecognized text.
type Signal struct {
	// Score is the bounded sum of matched keyword weights.
	Score int
	// Matched lists the keyword rules that contributed to Score.
	Matched []Match
	// Conditional is non-nil when a conditional construction fired; it
	// takes precedence over Score in the classification cascade.
	Conditional *ConditionalMatch
	// MildOnly reports that the only matches were mild markers (无咎,
	// 吝 and kin), which bias toward neutral.
	MildOnly bool
	// Negative reports that at least one negative-weight marker matched.
	Negative bool
}

// #endregion signal
