package cli

// #region imports
import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/hexagram"
)

// #endregion

// #region inspect-cmd

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hexagram>",
		Short: "Show the structure and lines of one hexagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			hexNum, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("hexagram %q: %w", args[0], err)
			}
			return runInspect(cmd, env, hexNum)
		},
	}
}

type inspectView struct {
	Number     int            `json:"number"`
	Name       string         `json:"name"`
	Binary     string         `json:"binary"`
	Upper      string         `json:"upper"`
	Lower      string         `json:"lower"`
	Complement string         `json:"complement"`
	Inverse    string         `json:"inverse"`
	Nuclear    string         `json:"nuclear"`
	Lines      []dataset.Line `json:"lines"`
}

func runInspect(cmd *cobra.Command, env *Env, hexNum int) error {
	h, err := hexagram.ByNumber(hexNum)
	if err != nil {
		return err
	}
	lines, err := dataset.ForHexagram(hexNum)
	if err != nil {
		return err
	}

	view := inspectView{
		Number:     h.Number,
		Name:       h.Name,
		Binary:     h.Binary(),
		Upper:      h.Upper().Name(),
		Lower:      h.Lower().Name(),
		Complement: relatedName(h.Value, hexagram.Complement),
		Inverse:    relatedName(h.Value, hexagram.Inverse),
		Nuclear:    relatedName(h.Value, hexagram.Nuclear),
		Lines:      lines,
	}

	if env.JSONOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hexagram %d %s (%s)\n", view.Number, view.Name, view.Binary)
	fmt.Fprintf(out, "Trigrams:   %s over %s\n", view.Upper, view.Lower)
	fmt.Fprintf(out, "Complement: %s\n", view.Complement)
	fmt.Fprintf(out, "Inverse:    %s\n", view.Inverse)
	fmt.Fprintf(out, "Nuclear:    %s\n", view.Nuclear)
	fmt.Fprintln(out, "Lines:")
	for _, l := range lines {
		fmt.Fprintf(out, "  %s %s\n", l.Label.Glyph(), l.Text)
	}
	return nil
}

// relatedName resolves a derived hexagram value to its canonical name.
func relatedName(value int, derive func(int) (int, error)) string {
	v, err := derive(value)
	if err != nil {
		return "?"
	}
	h, err := hexagram.ByValue(v)
	if err != nil {
		return "?"
	}
	return fmt.Sprintf("%d %s", h.Number, h.Name)
}

// #endregion inspect-cmd
