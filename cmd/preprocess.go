package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
	"github.com/KaramelBytes/dataloom-cli/internal/loader"
	"github.com/KaramelBytes/dataloom-cli/internal/preprocess"
)

var (
	prepOut  string
	prepHead int
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess <file>",
	Short: "Impute, encode, and scale a dataset into a numeric feature table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureConfig()
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
		res, err := preprocess.Preprocess(raw, policies)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
		}
		out := cmd.OutOrStdout()
		prepared := res.Table
		fmt.Fprintf(out, "prepared: %d rows, %d columns (raw had %d)\n\n",
			prepared.Rows(), prepared.NumColumns(), raw.NumColumns())

		head := prepHead
		if head <= 0 {
			head = 10
		}
		if head > prepared.Rows() {
			head = prepared.Rows()
		}
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		hdr := make(table.Row, prepared.NumColumns())
		for i, name := range prepared.Names() {
			hdr[i] = name
		}
		t.AppendHeader(hdr)
		for i := 0; i < head; i++ {
			row := make(table.Row, prepared.NumColumns())
			for j := 0; j < prepared.NumColumns(); j++ {
				row[j] = prepared.ColumnAt(j).Cell(i)
			}
			t.AppendRow(row)
		}
		t.Render()

		if prepOut != "" {
			if err := writeCSV(prepared, prepOut); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nwrote %s\n", prepOut)
		}
		return nil
	},
}

func writeCSV(t *dataset.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, t.NumColumns())
	for i := 0; i < t.Rows(); i++ {
		for j := 0; j < t.NumColumns(); j++ {
			rec[j] = t.ColumnAt(j).Cell(i)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func init() {
	preprocessCmd.Flags().StringVarP(&prepOut, "out", "o", "", "write the prepared table to a CSV file")
	preprocessCmd.Flags().IntVar(&prepHead, "head", 10, "rows of the prepared table to print")
	rootCmd.AddCommand(preprocessCmd)
}
