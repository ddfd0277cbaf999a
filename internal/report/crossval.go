package report

// #region imports
import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/lookup"
	"github.com/mingshu-dev/yaocast/internal/textscan"
)

// #endregion

// #region crossval

// CrossValidate runs k-fold validation. Lines are partitioned by index,
// each fold trains a fold-local engine on the remaining lines with a
// partial table, and the held-out lines are classified without their
// own cells or overrides. Because every trigram-pair cell corresponds
// to exactly one line, held-out lines always miss their cell: the gap
// between in-sample and holdout accuracy measures how much the table
// memorizes rather than generalizes.
func CrossValidate(lines []dataset.Line, k int, cfg engine.Config, scanCfg textscan.Config) (CrossValReport, error) {
	if k < 2 || k > len(lines) {
		return CrossValReport{}, fmt.Errorf("fold count %d outside [2,%d]", k, len(lines))
	}

	rep := CrossValReport{RunID: uuid.New().String(), Folds: k}
	var trainTotal, trainCorrect, holdTotal, holdCorrect int

	for fold := 0; fold < k; fold++ {
		var train, hold []dataset.Line
		for i, l := range lines {
			if i%k == fold {
				hold = append(hold, l)
			} else {
				train = append(train, l)
			}
		}

		// no curated exceptions here: they name concrete lines, and
		// pinning a held-out line's cell would leak its label
		records := dataset.RecordsFrom(train)
		buildCfg := lookup.BuildConfig{AllowPartial: true}
		e, err := engine.Train(records, cfg, scanCfg, buildCfg)
		if err != nil {
			return CrossValReport{}, fmt.Errorf("fold %d: %w", fold, err)
		}

		trainRep, err := Evaluate(e, train)
		if err != nil {
			return CrossValReport{}, fmt.Errorf("fold %d train eval: %w", fold, err)
		}
		holdRep, err := Evaluate(e, hold)
		if err != nil {
			return CrossValReport{}, fmt.Errorf("fold %d holdout eval: %w", fold, err)
		}

		rep.FoldResults = append(rep.FoldResults, FoldResult{
			Fold:            fold,
			TrainAccuracy:   trainRep.Accuracy,
			HoldoutAccuracy: holdRep.Accuracy,
			HoldoutTotal:    holdRep.Total,
			Fallbacks:       holdRep.Fallbacks,
		})
		trainTotal += trainRep.Total
		trainCorrect += trainRep.Correct
		holdTotal += holdRep.Total
		holdCorrect += holdRep.Correct
	}

	if trainTotal > 0 {
		rep.InSampleAccuracy = float64(trainCorrect) / float64(trainTotal)
	}
	if holdTotal > 0 {
		rep.HoldoutAccuracy = float64(holdCorrect) / float64(holdTotal)
	}
	return rep, nil
}

// #endregion crossval
