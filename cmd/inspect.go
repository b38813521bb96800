package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
	"github.com/KaramelBytes/dataloom-cli/internal/loader"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a dataset's columns, types, and statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := loadOptions()
		if err != nil {
			return err
		}
		tbl, err := loader.Load(args[0], opt)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: %d rows, %d columns\n\n", args[0], tbl.Rows(), tbl.NumColumns())

		out := table.NewWriter()
		out.SetOutputMirror(w)
		out.SetStyle(table.StyleLight)
		out.AppendHeader(table.Row{"Column", "Kind", "Non-null", "Missing", "Details"})
		for _, p := range dataset.Profile(tbl) {
			out.AppendRow(table.Row{p.Name, p.Kind.String(), p.NonNull, p.Missing, profileDetails(p)})
		}
		out.Render()
		return nil
	},
}

func profileDetails(p dataset.ColumnProfile) string {
	switch {
	case p.Numeric != nil:
		s := p.Numeric
		return fmt.Sprintf("mean %.4g, std %.4g, min %.4g, max %.4g", s.Mean, s.Std, s.Min, s.Max)
	case len(p.TopValues) > 0:
		parts := make([]string, 0, len(p.TopValues))
		for _, tv := range p.TopValues {
			parts = append(parts, fmt.Sprintf("%s(%d)", tv.Value, tv.Count))
		}
		return fmt.Sprintf("unique %d; top: %s", p.Unique, strings.Join(parts, ", "))
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
