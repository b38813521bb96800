package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/loader"
	"github.com/KaramelBytes/dataloom-cli/internal/render"
	"github.com/KaramelBytes/dataloom-cli/internal/session"
	"github.com/KaramelBytes/dataloom-cli/internal/viz"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file>",
	Short: "Interactively pick columns and visualizations for a dataset",
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
		sess, err := session.New(args[0], raw, policies)
		if err != nil {
			return err
		}
		e := &explorer{
			sess: sess,
			in:   bufio.NewScanner(cmd.InOrStdin()),
			out:  cmd.OutOrStdout(),
			sel:  viz.NewSelector(viz.WithPalette(cfg.Palette), viz.WithBins(cfg.HistogramBins)),
		}
		return e.run()
	},
}

// explorer drives the prompt loop. Raw and prepared views are both kept for
// the whole session; every request names its target view explicitly.
type explorer struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
	sel  *viz.Selector
}

func (e *explorer) run() error {
	fmt.Fprintf(e.out, "session %s: %d rows, %d columns (%d after preprocessing)\n",
		e.sess.ID, e.sess.Raw.Rows(), e.sess.Raw.NumColumns(), e.sess.Prepared.NumColumns())
	for _, w := range e.sess.Warnings {
		fmt.Fprintf(e.out, "⚠ Warning: %s\n", w)
	}
	for {
		fmt.Fprint(e.out, "\nVisualization Options:\n")
		fmt.Fprint(e.out, "  1. Histogram\n  2. Box Plot\n  3. Scatter Plot\n  4. Pie Chart\n  5. Exit\n")
		choice, ok := e.promptInt("Choose an option: ")
		if !ok {
			return nil
		}
		var kind viz.Kind
		switch choice {
		case 1:
			kind = viz.Distribution
		case 2:
			kind = viz.Comparison
		case 3:
			kind = viz.Correlation
		case 4:
			kind = viz.Proportion
		case 5:
			return nil
		default:
			fmt.Fprintln(e.out, "Invalid choice. Please try again.")
			continue
		}
		if err := e.visualize(kind); err != nil {
			// Column-level failures are recoverable: report and re-prompt.
			fmt.Fprintf(e.out, "✗ %v\n", err)
		}
	}
}

func (e *explorer) visualize(kind viz.Kind) error {
	view, ok := e.promptView()
	if !ok {
		return nil
	}
	tbl, err := e.sess.Table(view)
	if err != nil {
		return err
	}
	names := tbl.Names()
	fmt.Fprintln(e.out, "\nAvailable Columns:")
	for i, name := range names {
		fmt.Fprintf(e.out, "  %d. %s\n", i, name)
	}
	req := viz.Request{Kind: kind}
	if req.X, ok = e.promptColumn(names, "Enter the x-axis column number: "); !ok {
		return nil
	}
	if kind.Paired() {
		if req.Y, ok = e.promptColumn(names, "Enter the y-axis column number: "); !ok {
			return nil
		}
	}
	spec, err := e.sel.Resolve(tbl, req)
	if err != nil {
		return err
	}
	return render.New(e.out).Render(spec)
}

func (e *explorer) promptView() (session.View, bool) {
	n, ok := e.promptInt("Use 1. raw data or 2. preprocessed data? ")
	if !ok {
		return "", false
	}
	if n == 2 {
		return session.ViewPrepared, true
	}
	return session.ViewRaw, true
}

func (e *explorer) promptColumn(names []string, prompt string) (string, bool) {
	for {
		n, ok := e.promptInt(prompt)
		if !ok {
			return "", false
		}
		if n >= 0 && n < len(names) {
			return names[n], true
		}
		fmt.Fprintln(e.out, "Invalid choice. Please try again.")
	}
}

func (e *explorer) promptInt(prompt string) (int, bool) {
	for {
		fmt.Fprint(e.out, prompt)
		if !e.in.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(e.in.Text()))
		if err != nil {
			fmt.Fprintln(e.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
