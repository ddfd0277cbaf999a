// Package report measures an engine against labeled lines: accuracy,
// confusion, per-position and per-trigram-pair breakdowns, and k-fold
// cross-validation over fold-local tables.
package report

// #region imports
import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

// #endregion

// #region evaluate

// Evaluate classifies every line and tallies the outcome.
func Evaluate(e *engine.Engine, lines []dataset.Line) (Report, error) {
	rep := Report{
		RunID:       uuid.New().String(),
		Confusion:   make(map[fortune.Label]map[fortune.Label]int),
		PerPosition: make(map[int]*Breakdown),
		PerPair:     make(map[PairKey]*Breakdown),
		RuleCounts:  make(map[engine.Rule]int),
	}
	for _, want := range fortune.Labels() {
		rep.Confusion[want] = make(map[fortune.Label]int)
	}

	for _, l := range lines {
		res, err := e.Classify(l.Hexagram, l.Position, l.Text)
		if err != nil {
			return Report{}, fmt.Errorf("evaluate line %d-%d: %w", l.Hexagram, l.Position, err)
		}
		h, err := hexagram.ByNumber(l.Hexagram)
		if err != nil {
			return Report{}, err
		}

		rep.Total++
		rep.Confusion[l.Label][res.Label]++
		rep.RuleCounts[res.Rule]++
		if res.Fallback {
			rep.Fallbacks++
		}

		pos := breakdownFor(rep.PerPosition, l.Position)
		pair := pairFor(rep.PerPair, PairKey{Inner: h.Lower(), Outer: h.Upper()})
		pos.Total++
		pair.Total++

		if res.Label == l.Label {
			rep.Correct++
			pos.Correct++
			pair.Correct++
			continue
		}
		rep.Failures = append(rep.Failures, Failure{
			Hexagram: l.Hexagram,
			Position: l.Position,
			Want:     l.Label,
			Got:      res.Label,
			Rule:     res.Rule,
		})
	}

	if rep.Total > 0 {
		rep.Accuracy = float64(rep.Correct) / float64(rep.Total)
	}
	return rep, nil
}

func breakdownFor(m map[int]*Breakdown, k int) *Breakdown {
	if m[k] == nil {
		m[k] = &Breakdown{}
	}
	return m[k]
}

func pairFor(m map[PairKey]*Breakdown, k PairKey) *Breakdown {
	if m[k] == nil {
		m[k] = &Breakdown{}
	}
	return m[k]
}

// #endregion evaluate
