package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/dataloom-cli/internal/preprocess"
	"github.com/KaramelBytes/dataloom-cli/internal/viz"
)

// Global configuration structure.
type Global struct {
	// Preprocessing policies: what to do with an all-missing column
	// ("fail"|"drop") and a constant numerical column ("fail"|"skip").
	OnDegenerate   string `mapstructure:"on_degenerate" yaml:"on_degenerate"`
	OnZeroVariance string `mapstructure:"on_zero_variance" yaml:"on_zero_variance"`

	// Visualization defaults
	Palette       []string `mapstructure:"palette" yaml:"palette"`
	HistogramBins int      `mapstructure:"histogram_bins" yaml:"histogram_bins"`

	// Loading defaults
	MissingTokens []string `mapstructure:"missing_tokens" yaml:"missing_tokens"`
	MaxRows       int      `mapstructure:"max_rows" yaml:"max_rows"`
	SheetName     string   `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex    int      `mapstructure:"sheet_index" yaml:"sheet_index"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.dataloom/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATALOOM")
	v.AutomaticEnv()

	v.SetDefault("on_degenerate", "fail")
	v.SetDefault("on_zero_variance", "fail")
	v.SetDefault("palette", viz.DefaultPalette)
	v.SetDefault("histogram_bins", 10)
	v.SetDefault("missing_tokens", []string{"", "NA", "N/A", "NaN", "null"})
	v.SetDefault("max_rows", 0)
	v.SetDefault("sheet_index", 1)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Policies maps the configured policy names onto preprocessing options.
func (c *Global) Policies() (preprocess.Options, error) {
	opt := preprocess.DefaultOptions()
	switch c.OnDegenerate {
	case "", "fail":
	case "drop":
		opt.Degenerate = preprocess.DegenerateDrop
	default:
		return opt, fmt.Errorf("unsupported on_degenerate: %q (use fail|drop)", c.OnDegenerate)
	}
	switch c.OnZeroVariance {
	case "", "fail":
	case "skip":
		opt.ZeroVariance = preprocess.VarianceSkip
	default:
		return opt, fmt.Errorf("unsupported on_zero_variance: %q (use fail|skip)", c.OnZeroVariance)
	}
	return opt, nil
}
