package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/dataloom-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change DataLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "on_degenerate: %s\n", orDefault(cfg.OnDegenerate, "fail"))
		fmt.Fprintf(w, "on_zero_variance: %s\n", orDefault(cfg.OnZeroVariance, "fail"))
		fmt.Fprintf(w, "histogram_bins: %d\n", cfg.HistogramBins)
		fmt.Fprintf(w, "palette: %s\n", strings.Join(cfg.Palette, ", "))
		fmt.Fprintf(w, "missing_tokens: %s\n", strings.Join(cfg.MissingTokens, ", "))
		fmt.Fprintf(w, "max_rows: %d\n", cfg.MaxRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
		key, val := args[0], args[1]
		switch key {
		case "on_degenerate":
			cfg.OnDegenerate = val
		case "on_zero_variance":
			cfg.OnZeroVariance = val
		case "histogram_bins":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("histogram_bins must be a positive integer")
			}
			cfg.HistogramBins = n
		case "max_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("max_rows must be a non-negative integer")
			}
			cfg.MaxRows = n
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		// Validate policies before persisting
		if _, err := cfg.Policies(); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", key, args[1])
		return nil
	},
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
