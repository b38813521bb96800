// Package viz resolves a visualization request into a concrete chart
// strategy and the data series it needs, purely from the type signatures of
// the chosen column(s). Every legal (kind, signature) combination lives in
// one dispatch table; anything absent from it is unsupported. Rendering is
// someone else's job.
package viz

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

const defaultBins = 10

// none marks the absent y column in single-column signatures.
const none = dataset.Kind(-1)

// Selector resolves requests against a fixed palette and histogram binning.
// The zero value is not usable; construct with NewSelector.
type Selector struct {
	palette palette
	bins    int
}

// Option configures a Selector.
type Option func(*Selector)

// WithPalette overrides the color cycle.
func WithPalette(colors []string) Option {
	return func(s *Selector) { s.palette = newPalette(colors) }
}

// WithBins overrides the histogram bin count.
func WithBins(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.bins = n
		}
	}
}

// NewSelector builds a selector with the seaborn default palette and ten
// histogram bins unless overridden.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{palette: newPalette(nil), bins: defaultBins}
	for _, o := range opts {
		o(s)
	}
	return s
}

type signature struct {
	kind Kind
	x    dataset.Kind
	y    dataset.Kind
}

type builder func(s *Selector, req Request, x, y *dataset.Column) (*ChartSpec, error)

// strategies is the full decision table mapping a kind plus column type
// signature to a chart builder. Combinations absent here resolve to
// ErrUnsupportedVisualization.
var strategies = map[signature]builder{
	{Distribution, dataset.Categorical, none}: (*Selector).frequencyBar,
	{Distribution, dataset.Numerical, none}:   (*Selector).histogram,

	{Comparison, dataset.Categorical, dataset.Numerical}: (*Selector).groupedBoxByX,
	{Comparison, dataset.Numerical, dataset.Categorical}: (*Selector).groupedBoxByY,
	{Comparison, dataset.Numerical, dataset.Numerical}:   (*Selector).pairedBox,

	{Correlation, dataset.Categorical, dataset.Categorical}: (*Selector).categoryScatter,
	{Correlation, dataset.Categorical, dataset.Numerical}:   (*Selector).stripByX,
	{Correlation, dataset.Numerical, dataset.Categorical}:   (*Selector).stripByY,
	{Correlation, dataset.Numerical, dataset.Numerical}:     (*Selector).scatter,

	{Proportion, dataset.Categorical, none}: (*Selector).pie,
}

// Resolve validates the request against the table and resolves the concrete
// strategy with its prepared series. It fails with dataset.ErrUnknownColumn
// when a referenced column does not exist and ErrUnsupportedVisualization
// when the signature has no legal strategy.
func (s *Selector) Resolve(t *dataset.Table, req Request) (*ChartSpec, error) {
	x, err := t.Column(req.X)
	if err != nil {
		return nil, err
	}
	sig := signature{kind: req.Kind, x: x.Kind(), y: none}
	var y *dataset.Column
	if req.Kind.Paired() {
		y, err = t.Column(req.Y)
		if err != nil {
			return nil, err
		}
		sig.y = y.Kind()
	}
	build, ok := strategies[sig]
	if !ok {
		return nil, unsupported(req.Kind, sig.x, sig.y, req.Kind.Paired())
	}
	spec, err := build(s, req, x, y)
	if err != nil {
		return nil, err
	}
	spec.ID = uuid.NewString()
	return spec, nil
}

// frequencyBar charts the count of every distinct value, counts annotated
// by the renderer.
func (s *Selector) frequencyBar(req Request, x, _ *dataset.Column) (*ChartSpec, error) {
	labels, counts := valueCounts(x)
	return &ChartSpec{
		Strategy: StrategyBar,
		Title:    fmt.Sprintf("%s Histogram", req.X),
		XLabel:   req.X,
		YLabel:   "Count",
		Series: []Series{{
			Name:   req.X,
			Color:  s.palette.color(0),
			Labels: labels,
			Values: counts,
		}},
	}, nil
}

// histogram bins the values and attaches a density overlay plus descriptive
// statistics.
func (s *Selector) histogram(req Request, x, _ *dataset.Column) (*ChartSpec, error) {
	vals := nonMissingFloats(x)
	stats := dataset.SummarizeValues(vals)
	labels, counts, width := bin(vals, s.bins)
	density := make([]float64, len(counts))
	if n := float64(len(vals)); n > 0 && width > 0 {
		for i, c := range counts {
			density[i] = c / (n * width)
		}
	}
	return &ChartSpec{
		Strategy: StrategyHistogram,
		Title:    fmt.Sprintf("%s Histogram", req.X),
		XLabel:   req.X,
		YLabel:   "Frequency",
		Series: []Series{
			{Name: req.X, Color: s.palette.color(0), Labels: labels, Values: counts},
			{Name: "density", Labels: labels, Values: density},
		},
		Stats: &stats,
	}, nil
}

func (s *Selector) groupedBoxByX(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	return s.groupedBox(req, x, y)
}

func (s *Selector) groupedBoxByY(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	return s.groupedBox(req, y, x)
}

// groupedBox builds one box per category; the categorical axis supplies the
// groups and the numerical axis the per-group distribution. Colors are
// assigned by group rank, cycling past the palette size.
func (s *Selector) groupedBox(req Request, cat, num *dataset.Column) (*ChartSpec, error) {
	groups, values := groupedValues(cat, num)
	series := make([]Series, len(groups))
	for i, g := range groups {
		series[i] = Series{
			Name:   g,
			Color:  s.palette.color(i),
			Values: values[i],
		}
	}
	return &ChartSpec{
		Strategy: StrategyGroupedBox,
		Title:    fmt.Sprintf("%s vs %s Boxplot", req.X, req.Y),
		XLabel:   req.X,
		YLabel:   req.Y,
		Series:   series,
	}, nil
}

// pairedBox puts two numeric columns side by side as plain boxes.
func (s *Selector) pairedBox(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	return &ChartSpec{
		Strategy: StrategyBox,
		Title:    fmt.Sprintf("%s vs %s Boxplot", req.X, req.Y),
		XLabel:   req.X,
		YLabel:   req.Y,
		Series: []Series{
			{Name: req.X, Color: s.palette.color(0), Values: nonMissingFloats(x)},
			{Name: req.Y, Color: s.palette.color(1), Values: nonMissingFloats(y)},
		},
	}, nil
}

// categoryScatter codes both axes by category rank and color-groups by the
// x-axis categories.
func (s *Selector) categoryScatter(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	xCodes, xOrder := categoryCodes(x)
	yCodes, yOrder := categoryCodes(y)
	series := make([]Series, len(xOrder))
	for i, g := range xOrder {
		series[i] = Series{Name: g, Color: s.palette.color(i)}
	}
	for i := range xCodes {
		if xCodes[i] < 0 || yCodes[i] < 0 {
			continue
		}
		j := int(xCodes[i])
		series[j].X = append(series[j].X, xCodes[i])
		series[j].Y = append(series[j].Y, yCodes[i])
	}
	return &ChartSpec{
		Strategy: StrategyCategoryScatter,
		Title:    fmt.Sprintf("%s vs %s Scatterplot", req.X, req.Y),
		XLabel:   req.X,
		YLabel:   req.Y,
		Series:   series,
		XTicks:   xOrder,
		YTicks:   yOrder,
	}, nil
}

func (s *Selector) stripByX(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	spec, err := s.strip(req, x, y, true)
	return spec, err
}

func (s *Selector) stripByY(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	spec, err := s.strip(req, y, x, false)
	return spec, err
}

// strip lays numeric values out one-dimensionally per category; the
// renderer owns the jitter. groupedOnX records which axis carries the
// categories so ticks land on the right side.
func (s *Selector) strip(req Request, cat, num *dataset.Column, groupedOnX bool) (*ChartSpec, error) {
	groups, values := groupedValues(cat, num)
	series := make([]Series, len(groups))
	for i, g := range groups {
		pos := make([]float64, len(values[i]))
		for j := range pos {
			pos[j] = float64(i)
		}
		series[i] = Series{Name: g, Color: s.palette.color(i)}
		if groupedOnX {
			series[i].X = pos
			series[i].Y = values[i]
		} else {
			series[i].X = values[i]
			series[i].Y = pos
		}
	}
	spec := &ChartSpec{
		Strategy: StrategyStrip,
		Title:    fmt.Sprintf("%s vs %s Scatterplot", req.X, req.Y),
		XLabel:   req.X,
		YLabel:   req.Y,
		Series:   series,
	}
	if groupedOnX {
		spec.XTicks = groups
	} else {
		spec.YTicks = groups
	}
	return spec, nil
}

// scatter is the plain numeric/numeric case, no grouping.
func (s *Selector) scatter(req Request, x, y *dataset.Column) (*ChartSpec, error) {
	xs, ys := pairedFloats(x, y)
	return &ChartSpec{
		Strategy: StrategyScatter,
		Title:    fmt.Sprintf("%s vs %s Scatterplot", req.X, req.Y),
		XLabel:   req.X,
		YLabel:   req.Y,
		Series: []Series{{
			Name:  req.X,
			Color: s.palette.color(0),
			X:     xs,
			Y:     ys,
		}},
	}, nil
}

// pie slices by distinct value; percentage-of-total labels are derived from
// the counts by the renderer.
func (s *Selector) pie(req Request, x, _ *dataset.Column) (*ChartSpec, error) {
	labels, counts := valueCounts(x)
	series := Series{Name: req.X, Labels: labels, Values: counts}
	return &ChartSpec{
		Strategy: StrategyPie,
		Title:    fmt.Sprintf("%s Pie Chart", req.X),
		XLabel:   req.X,
		Series:   []Series{series},
	}, nil
}

// bin partitions values into n equal-width bins and returns per-bin labels,
// counts, and the bin width. Constant input collapses to a single bin.
func bin(vals []float64, n int) (labels []string, counts []float64, width float64) {
	if len(vals) == 0 {
		return nil, nil, 0
	}
	mn, mx := vals[0], vals[0]
	for _, v := range vals {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	if mn == mx {
		return []string{fmt.Sprintf("%.4g", mn)}, []float64{float64(len(vals))}, 0
	}
	width = (mx - mn) / float64(n)
	counts = make([]float64, n)
	for _, v := range vals {
		i := int(math.Floor((v - mn) / width))
		if i >= n {
			i = n - 1 // max value lands in the last bin
		}
		counts[i]++
	}
	labels = make([]string, n)
	for i := range labels {
		lo := mn + float64(i)*width
		labels[i] = fmt.Sprintf("%.4g..%.4g", lo, lo+width)
	}
	return labels, counts, width
}
