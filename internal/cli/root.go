// Package cli wires the fortune classifier into a cobra command tree.
package cli

// #region imports
import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mingshu-dev/yaocast/internal/dataset"
	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/logging"
	"github.com/mingshu-dev/yaocast/internal/lookup"
	"github.com/mingshu-dev/yaocast/internal/store"
	"github.com/mingshu-dev/yaocast/internal/textscan"
)

// #endregion

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// #region env

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	JSONOut    bool
}

// Env carries initialized dependencies through the command tree.
type Env struct {
	Config  AppConfig
	Logger  logging.Logger
	JSONOut bool
}

type envKey struct{}

// GetEnv extracts the Env placed by the root PersistentPreRunE.
func GetEnv(cmd *cobra.Command) (*Env, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("command context is nil")
	}
	env, ok := cmd.Context().Value(envKey{}).(*Env)
	if !ok || env == nil {
		return nil, fmt.Errorf("environment not initialized")
	}
	return env, nil
}

// #endregion env

// #region root

// NewRootCommand creates the root command with global flags and all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "yaocast",
		Short:   "Fortune classifier for the 384 hexagram lines",
		Long:    "yaocast classifies hexagram line texts as auspicious, neutral, or\ninauspicious using conditional constructions, keyword evidence, and a\ntrigram-pair structural baseline.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./yaocast.yaml)")
	pf.StringVar(&opts.DBPath, "db", "", "SQLite corpus database path")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&opts.JSONOut, "json", false, "emit JSON output")

	cmd.AddCommand(
		newClassifyCmd(),
		newEvaluateCmd(),
		newCrossvalCmd(),
		newSeedCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	env := &Env{Config: cfg, Logger: logger, JSONOut: opts.JSONOut}
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	cmd.SetContext(context.WithValue(base, envKey{}, env))
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// #endregion root

// #region wiring

// corpusLines reads the corpus from the configured database when one is
// set, falling back to the embedded corpus otherwise.
func corpusLines(env *Env) ([]dataset.Line, error) {
	if env.Config.DBPath == "" {
		return dataset.Lines(), nil
	}
	s, err := store.NewStore(env.Config.DBPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	lines, err := s.LoadLines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		env.Logger.Warn("database holds no lines, using embedded corpus",
			logging.String("db", env.Config.DBPath))
		return dataset.Lines(), nil
	}
	return lines, nil
}

// scanConfig resolves the rule tables, preferring a configured file.
func scanConfig(env *Env) (textscan.Config, error) {
	if env.Config.RulesPath == "" {
		return textscan.DefaultConfig(), nil
	}
	return textscan.LoadConfig(env.Config.RulesPath)
}

// trainedEngine builds the engine the commands share.
func trainedEngine(env *Env) (*engine.Engine, []dataset.Line, error) {
	lines, err := corpusLines(env)
	if err != nil {
		return nil, nil, err
	}
	scanCfg, err := scanConfig(env)
	if err != nil {
		return nil, nil, err
	}
	e, err := engine.Train(dataset.RecordsFrom(lines), env.Config.Engine, scanCfg, lookup.DefaultBuildConfig())
	if err != nil {
		return nil, nil, err
	}
	env.Logger.Debug("engine trained",
		logging.Int("lines", len(lines)),
		logging.Int("overrides", e.Table().OverrideCount()))
	return e, lines, nil
}

// #endregion wiring
