package cli

// #region imports
import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/logging"
	"github.com/mingshu-dev/yaocast/internal/report"
)

// #endregion

// #region crossval-cmd

func newCrossvalCmd() *cobra.Command {
	var folds int

	cmd := &cobra.Command{
		Use:   "crossval",
		Short: "Run k-fold cross-validation over the corpus",
		Long:  "Partitions the corpus into k folds, retrains a fold-local engine on\neach training split, and reports the held-out accuracy next to the\nin-sample accuracy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			return runCrossval(cmd, env, folds)
		},
	}

	cmd.Flags().IntVarP(&folds, "folds", "k", 8, "number of folds")
	return cmd
}

func runCrossval(cmd *cobra.Command, env *Env, folds int) error {
	lines, err := corpusLines(env)
	if err != nil {
		return err
	}
	scanCfg, err := scanConfig(env)
	if err != nil {
		return err
	}

	rep, err := report.CrossValidate(lines, folds, env.Config.Engine, scanCfg)
	if err != nil {
		return err
	}
	env.Logger.Info("cross-validation finished",
		logging.String("run_id", rep.RunID),
		logging.Int("folds", rep.Folds),
		logging.Float64("holdout_accuracy", rep.HoldoutAccuracy))

	if env.JSONOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s, %d folds\n", rep.RunID, rep.Folds)
	for _, fr := range rep.FoldResults {
		fmt.Fprintf(out, "  fold %d: train %.2f%%, holdout %.2f%% (%d lines, %d fallbacks)\n",
			fr.Fold, fr.TrainAccuracy*100, fr.HoldoutAccuracy*100, fr.HoldoutTotal, fr.Fallbacks)
	}
	fmt.Fprintf(out, "In-sample: %.2f%%\n", rep.InSampleAccuracy*100)
	fmt.Fprintf(out, "Held-out:  %.2f%%\n", rep.HoldoutAccuracy*100)
	return nil
}

// #endregion crossval-cmd
