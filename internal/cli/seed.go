package cli

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/logging"
	"github.com/mingshu-dev/yaocast/internal/store"
)

// #endregion

// #region seed-cmd

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the database and load the embedded corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			return runSeed(cmd, env)
		},
	}
}

func runSeed(cmd *cobra.Command, env *Env) error {
	if env.Config.DBPath == "" {
		return fmt.Errorf("seed requires a database, set --db or db_path")
	}
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	s, err := store.NewStore(env.Config.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	lines := dataset.Lines()
	if err := s.Seed(lines); err != nil {
		return err
	}
	env.Logger.Info("corpus seeded",
		logging.String("db", env.Config.DBPath),
		logging.Int("lines", len(lines)))
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d lines into %s\n", len(lines), env.Config.DBPath)
	return nil
}

// #endregion seed-cmd
