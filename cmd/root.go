package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/dataloom-cli/internal/config"
	"github.com/KaramelBytes/dataloom-cli/internal/loader"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string

	// Loading overrides
	flagDelimiter  string
	flagSheetName  string
	flagSheetIndex int
	flagMaxRows    int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dataloom",
	Short: "DataLoom CLI: explore tabular datasets and pick the right chart",
	Long: `DataLoom loads a tabular dataset (CSV, TSV, XLSX, or SQLite), preprocesses
it into a fully numeric feature table, and resolves visualization requests
into concrete chart strategies based on column types.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataloom/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: by extension)")
	rootCmd.PersistentFlags().StringVar(&flagSheetName, "sheet-name", "", "XLSX sheet name (default: first sheet)")
	rootCmd.PersistentFlags().IntVar(&flagSheetIndex, "sheet-index", 0, "XLSX sheet index, 1-based (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "limit rows loaded (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{}
	}
	cfg = c
}

// ensureConfig loads configuration on demand for code paths that run
// without the cobra initializer, such as direct command execution in tests.
func ensureConfig() {
	if cfg == nil {
		loadConfig()
	}
}

// loadOptions merges config defaults with CLI overrides.
func loadOptions() (loader.Options, error) {
	ensureConfig()
	opt := loader.DefaultOptions()
	if cfg != nil {
		if len(cfg.MissingTokens) > 0 {
			opt.MissingTokens = cfg.MissingTokens
		}
		opt.MaxRows = cfg.MaxRows
		opt.SheetName = cfg.SheetName
		if cfg.SheetIndex > 0 {
			opt.SheetIndex = cfg.SheetIndex
		}
	}
	switch flagDelimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s", flagDelimiter)
	}
	if flagSheetName != "" {
		opt.SheetName = flagSheetName
	}
	if flagSheetIndex > 0 {
		opt.SheetIndex = flagSheetIndex
	}
	if flagMaxRows > 0 {
		opt.MaxRows = flagMaxRows
	}
	return opt, nil
}
