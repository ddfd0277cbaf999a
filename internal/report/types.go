package report

// #region imports
import (
	"fmt"

	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

// #endregion

// #region breakdown

// Breakdown tallies correct classifications within one slice of the
// corpus.
type Breakdown struct {
	Total   int
	Correct int
}

// Accuracy returns the fraction correct, 0 for an empty slice.
func (b Breakdown) Accuracy() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Total)
}

// PairKey identifies a trigram pair for breakdowns.
type PairKey struct {
	Inner hexagram.Trigram
	Outer hexagram.Trigram
}

func (k PairKey) String() string {
	return fmt.Sprintf("%s over %s", k.Outer.Name(), k.Inner.Name())
}

// #endregion breakdown

// #region failure

// Failure records one misclassified line.
type Failure struct {
	Hexagram int
	Position int
	Want     fortune.Label
	Got      fortune.Label
	Rule     engine.Rule
}

// #endregion failure

// #region report

// Report is the outcome of evaluating an engine against labeled lines.
type Report struct {
	RunID       string
	Total       int
	Correct     int
	Accuracy    float64
	Confusion   map[fortune.Label]map[fortune.Label]int
	PerPosition map[int]*Breakdown
	PerPair     map[PairKey]*Breakdown
	RuleCounts  map[engine.Rule]int
	Fallbacks   int
	Failures    []Failure
}

// #endregion report

// #region crossval-types

// FoldResult is the outcome of one cross-validation fold.
type FoldResult struct {
	Fold            int
	TrainAccuracy   float64
	HoldoutAccuracy float64
	HoldoutTotal    int
	Fallbacks       int
}

// CrossValReport aggregates a k-fold run. InSampleAccuracy is the
// micro-average over training folds; HoldoutAccuracy over held-out
// lines, each line held out exactly once.
type CrossValReport struct {
	RunID            string
	Folds            int
	FoldResults      []FoldResult
	InSampleAccuracy float64
	HoldoutAccuracy  float64
}

// #endregion crossval-types
