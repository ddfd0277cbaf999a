package cli

// #region imports
import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/fortune"
	"github.com/mingshu-dev/yaocast/internal/logging"
	"github.com/mingshu-dev/yaocast/internal/report"
)

// #endregion

// #region evaluate-cmd

func newEvaluateCmd() *cobra.Command {
	var showPairs bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the trained engine against the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			return runEvaluate(cmd, env, showPairs)
		},
	}

	cmd.Flags().BoolVar(&showPairs, "pairs", false, "include the per-trigram-pair breakdown")
	return cmd
}

func runEvaluate(cmd *cobra.Command, env *Env, showPairs bool) error {
	e, lines, err := trainedEngine(env)
	if err != nil {
		return err
	}
	rep, err := report.Evaluate(e, lines)
	if err != nil {
		return err
	}
	env.Logger.Info("evaluation finished",
		logging.String("run_id", rep.RunID),
		logging.Float64("accuracy", rep.Accuracy),
		logging.Int("failures", len(rep.Failures)))

	if env.JSONOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", rep.RunID)
	fmt.Fprintf(out, "Accuracy: %d/%d (%.2f%%)\n", rep.Correct, rep.Total, rep.Accuracy*100)

	fmt.Fprintln(out, "\nRule usage:")
	for rule, n := range rep.RuleCounts {
		fmt.Fprintf(out, "  %-15s %d\n", rule, n)
	}

	fmt.Fprintln(out, "\nConfusion (want -> got):")
	for _, want := range fortune.Labels() {
		for _, got := range fortune.Labels() {
			if n := rep.Confusion[want][got]; n > 0 {
				fmt.Fprintf(out, "  %-12s -> %-12s %d\n", want, got, n)
			}
		}
	}

	fmt.Fprintln(out, "\nPer position:")
	positions := make([]int, 0, len(rep.PerPosition))
	for pos := range rep.PerPosition {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		b := rep.PerPosition[pos]
		fmt.Fprintf(out, "  line %d: %d/%d (%.2f%%)\n", pos, b.Correct, b.Total, b.Accuracy()*100)
	}

	if showPairs {
		fmt.Fprintln(out, "\nPer trigram pair:")
		keys := make([]report.PairKey, 0, len(rep.PerPair))
		for k := range rep.PerPair {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Outer != keys[j].Outer {
				return keys[i].Outer < keys[j].Outer
			}
			return keys[i].Inner < keys[j].Inner
		})
		for _, k := range keys {
			b := rep.PerPair[k]
			fmt.Fprintf(out, "  %-12s %d/%d\n", k, b.Correct, b.Total)
		}
	}

	if len(rep.Failures) > 0 {
		fmt.Fprintln(out, "\nFailures:")
		for _, f := range rep.Failures {
			fmt.Fprintf(out, "  %d-%d want %s got %s via %s\n", f.Hexagram, f.Position, f.Want, f.Got, f.Rule)
		}
	}
	return nil
}

// #endregion evaluate-cmd
