package cli

// #region imports
import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// #endregion

// #region version-cmd

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			if env.JSONOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]string{
					"version": Version,
					"commit":  GitCommit,
					"go":      runtime.Version(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yaocast %s (commit: %s, %s)\n",
				Version, GitCommit, runtime.Version())
			return nil
		},
	}
}

// #endregion version-cmd
