// Package render draws resolved chart specs as terminal output. It is the
// display collaborator of the selector: everything here is presentation,
// nothing here decides strategy.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
	"github.com/KaramelBytes/dataloom-cli/internal/viz"
)

const (
	barWidth   = 40
	plotWidth  = 56
	plotHeight = 16
)

// Renderer writes charts to w.
type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render draws a chart spec.
func (r *Renderer) Render(spec *viz.ChartSpec) error {
	fmt.Fprintf(r.w, "\n%s\n", spec.Title)
	switch spec.Strategy {
	case viz.StrategyBar:
		r.bars(spec.Series[0], spec.XLabel, "Count")
	case viz.StrategyHistogram:
		r.bars(spec.Series[0], "Bin", "Frequency")
		if spec.Stats != nil {
			r.stats(*spec.Stats)
		}
	case viz.StrategyPie:
		r.pie(spec.Series[0])
	case viz.StrategyBox, viz.StrategyGroupedBox:
		r.boxes(spec.Series)
	case viz.StrategyScatter, viz.StrategyStrip, viz.StrategyCategoryScatter:
		r.scatter(spec)
	default:
		return fmt.Errorf("no terminal rendering for strategy %q", spec.Strategy)
	}
	return nil
}

// bars prints one row per label with the count annotated next to the bar.
func (r *Renderer) bars(s viz.Series, labelHdr, valueHdr string) {
	maxV := 0.0
	for _, v := range s.Values {
		if v > maxV {
			maxV = v
		}
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{labelHdr, valueHdr, ""})
	for i, lbl := range s.Labels {
		t.AppendRow(table.Row{lbl, s.Values[i], bar(s.Values[i], maxV)})
	}
	t.Render()
}

func (r *Renderer) pie(s viz.Series) {
	total := 0.0
	for _, v := range s.Values {
		total += v
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Value", "Count", "Share", ""})
	for i, lbl := range s.Labels {
		pct := 0.0
		if total > 0 {
			pct = s.Values[i] * 100 / total
		}
		t.AppendRow(table.Row{lbl, s.Values[i], fmt.Sprintf("%.1f%%", pct), bar(s.Values[i], total)})
	}
	t.Render()
}

// boxes prints a five-number summary row per series.
func (r *Renderer) boxes(series []viz.Series) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "N", "Min", "Q1", "Median", "Q3", "Max"})
	for _, s := range series {
		sum := dataset.SummarizeValues(s.Values)
		t.AppendRow(table.Row{
			s.Name, sum.Count,
			f4(sum.Min), f4(sum.Q1), f4(sum.Median), f4(sum.Q3), f4(sum.Max),
		})
	}
	t.Render()
}

func (r *Renderer) stats(s dataset.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"count", "mean", "std", "min", "25%", "50%", "75%", "max"})
	t.AppendRow(table.Row{
		s.Count, f4(s.Mean), f4(s.Std), f4(s.Min), f4(s.Q1), f4(s.Median), f4(s.Q3), f4(s.Max),
	})
	t.Render()
}

// scatter draws the point series on a character grid, one glyph per series.
func (r *Renderer) scatter(spec *viz.ChartSpec) {
	glyphs := []rune{'*', 'o', '+', 'x', '#', '@', '%', '&'}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for i := range s.X {
			minX, maxX = math.Min(minX, s.X[i]), math.Max(maxX, s.X[i])
			minY, maxY = math.Min(minY, s.Y[i]), math.Max(maxY, s.Y[i])
		}
	}
	if math.IsInf(minX, 1) {
		fmt.Fprintln(r.w, "(no points)")
		return
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}
	grid := make([][]rune, plotHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}
	for si, s := range spec.Series {
		g := glyphs[si%len(glyphs)]
		for i := range s.X {
			cx := int((s.X[i] - minX) / (maxX - minX) * float64(plotWidth-1))
			cy := int((s.Y[i] - minY) / (maxY - minY) * float64(plotHeight-1))
			grid[plotHeight-1-cy][cx] = g
		}
	}
	for _, line := range grid {
		fmt.Fprintf(r.w, "  |%s\n", string(line))
	}
	fmt.Fprintf(r.w, "  +%s\n", strings.Repeat("-", plotWidth))
	fmt.Fprintf(r.w, "   x: %s   y: %s\n", spec.XLabel, spec.YLabel)
	if len(spec.Series) > 1 {
		var parts []string
		for si, s := range spec.Series {
			parts = append(parts, fmt.Sprintf("%c %s", glyphs[si%len(glyphs)], s.Name))
		}
		fmt.Fprintf(r.w, "   %s\n", strings.Join(parts, "  "))
	}
}

func bar(v, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(v / max * barWidth)
	return strings.Repeat("█", n)
}

func f4(v float64) string { return fmt.Sprintf("%.4g", v) }
