package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/loader"
	"github.com/KaramelBytes/dataloom-cli/internal/render"
	"github.com/KaramelBytes/dataloom-cli/internal/session"
	"github.com/KaramelBytes/dataloom-cli/internal/viz"
)

var (
	chartKind string
	chartX    string
	chartY    string
	chartView string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Resolve and render a chart for one or two columns",
	Long: `Chart resolves a visualization request against the dataset's column types
and renders the resulting strategy in the terminal.

Kinds: distribution (one column), comparison and correlation (two columns),
proportion (one categorical column). --view picks the raw table or the
preprocessed feature table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
		kind, err := viz.ParseKind(chartKind)
		if err != nil {
			return err
		}
		if chartX == "" {
			return fmt.Errorf("--x-column is required")
		}
		if kind.Paired() && chartY == "" {
			return fmt.Errorf("--y-column is required for %s charts", kind)
		}
		view, err := session.ParseView(chartView)
		if err != nil {
			return err
		}
		opt, err := loadOptions()
		if err != nil {
			return err
		}
		raw, err := loader.Load(args[0], opt)
		if err != nil {
			return err
		}
		policies, err := cfg.Policies()
		if err != nil {
			return err
		}
		sess, err := session.New(args[0], raw, policies)
		if err != nil {
			return err
		}
		tbl, err := sess.Table(view)
		if err != nil {
			return err
		}
		sel := viz.NewSelector(viz.WithPalette(cfg.Palette), viz.WithBins(cfg.HistogramBins))
		spec, err := sel.Resolve(tbl, viz.Request{Kind: kind, X: chartX, Y: chartY})
		if err != nil {
			return err
		}
		return render.New(cmd.OutOrStdout()).Render(spec)
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartKind, "kind", "k", "distribution", "visualization kind: distribution|comparison|correlation|proportion")
	chartCmd.Flags().StringVarP(&chartX, "x-column", "x", "", "x-axis column name")
	chartCmd.Flags().StringVarP(&chartY, "y-column", "y", "", "y-axis column name (paired kinds)")
	chartCmd.Flags().StringVar(&chartView, "view", "raw", "table variant to chart: raw|prepared")
	rootCmd.AddCommand(chartCmd)
}
