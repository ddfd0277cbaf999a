package cli

// #region imports
import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
	"github.com/mingshu-dev/yaocast/internal/logging"
	"github.com/mingshu-dev/yaocast/internal/store"
)

// #endregion

// #region classify-cmd

func newClassifyCmd() *cobra.Command {
	var text string
	var record bool

	cmd := &cobra.Command{
		Use:   "classify <hexagram> <position>",
		Short: "Classify one hexagram line",
		Long:  "Classify a line by King Wen hexagram number (1-64) and position (1-6).\nThe corpus text is used unless --text supplies a replacement.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			hexNum, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("hexagram %q: %w", args[0], err)
			}
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position %q: %w", args[1], err)
			}
			return runClassify(cmd, env, hexNum, position, text, record)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "classify this text instead of the corpus line")
	cmd.Flags().BoolVar(&record, "record", false, "log the classification to the database")
	return cmd
}

func runClassify(cmd *cobra.Command, env *Env, hexNum, position int, text string, record bool) error {
	e, _, err := trainedEngine(env)
	if err != nil {
		return err
	}

	if text == "" {
		line, err := dataset.Get(hexNum, position)
		if err != nil {
			return err
		}
		text = line.Text
	}

	res, err := e.Classify(hexNum, position, text)
	if err != nil {
		return err
	}

	if record {
		if env.Config.DBPath == "" {
			return fmt.Errorf("--record requires a database, set --db or db_path")
		}
		if err := logRun(env, res); err != nil {
			return err
		}
	}

	if env.JSONOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printResult(cmd, res, text)
}

func printResult(cmd *cobra.Command, res engine.Result, text string) error {
	h, err := hexagram.ByNumber(res.Hexagram)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hexagram %d %s (%s), %s over %s, line %d\n",
		h.Number, h.Name, h.Binary(), h.Upper().Name(), h.Lower().Name(), res.Position)
	fmt.Fprintf(out, "Text:  %s\n", text)
	fmt.Fprintf(out, "Label: %s %s\n", res.Label, res.Label.Glyph())
	switch res.Rule {
	case engine.RuleConditional:
		fmt.Fprintf(out, "Rule:  %s (%s)\n", res.Rule, res.RuleName)
	case engine.RuleStructural:
		fmt.Fprintf(out, "Rule:  %s (baseline %s, blend %.2f)\n", res.Rule, res.Baseline, res.Blend)
	default:
		fmt.Fprintf(out, "Rule:  %s (text score %d)\n", res.Rule, res.TextScore)
	}
	return nil
}

func logRun(env *Env, res engine.Result) error {
	s, err := store.NewStore(env.Config.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	entry := store.RunEntry{
		RunID:     uuid.New().String(),
		Hexagram:  res.Hexagram,
		Position:  res.Position,
		Label:     res.Label,
		Rule:      string(res.Rule),
		RuleName:  res.RuleName,
		TextScore: res.TextScore,
		Blend:     res.Blend,
	}
	if err := s.LogClassification(entry); err != nil {
		return err
	}
	env.Logger.Info("classification recorded",
		logging.String("run_id", entry.RunID),
		logging.Int("hexagram", res.Hexagram),
		logging.Int("position", res.Position),
		logging.String("label", string(res.Label)))
	return nil
}

// #endregion classify-cmd
