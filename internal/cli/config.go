package cli

// #region imports
import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mingshu-dev/yaocast/internal/engine"
	"github.com/mingshu-dev/yaocast/internal/logging"
)

// #endregion

// #region app-config

// AppConfig aggregates the tool's configuration. Precedence:
// flags > YAOCAST_* environment variables > config file > defaults.
type AppConfig struct {
	// DBPath is the SQLite corpus database. Empty means run from the
	// embedded corpus without persistence.
	DBPath string `mapstructure:"db_path"`
	// RulesPath optionally replaces the built-in keyword and
	// conditional rule tables with a YAML file.
	RulesPath string         `mapstructure:"rules_path"`
	Engine    engine.Config  `mapstructure:"engine"`
	Log       logging.Config `mapstructure:"log"`
}

// #endregion app-config

// #region load

// LoadConfig reads configuration through viper. path may be empty, in
// which case yaocast.yaml in the working directory is used when present.
func LoadConfig(path string) (AppConfig, error) {
	v := viper.New()

	v.SetDefault("db_path", "")
	v.SetDefault("rules_path", "")
	def := engine.DefaultConfig()
	v.SetDefault("engine.structural_weight", def.StructuralWeight)
	v.SetDefault("engine.text_weight", def.TextWeight)
	v.SetDefault("engine.upper_cut", def.UpperCut)
	v.SetDefault("engine.lower_cut", def.LowerCut)
	v.SetDefault("engine.strong_keyword_threshold", def.StrongKeywordThreshold)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("yaocast")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("yaocast")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return AppConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("engine config: %w", err)
	}
	return cfg, nil
}

// #endregion load
