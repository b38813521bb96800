package viz

import (
	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// Strategy is the concrete rendering strategy a request resolved to.
type Strategy string

const (
	// StrategyBar is a frequency bar chart over distinct categorical values.
	StrategyBar Strategy = "bar"
	// StrategyHistogram is a binned histogram with a density overlay.
	StrategyHistogram Strategy = "histogram"
	// StrategyGroupedBox is one box per category of the grouping column.
	StrategyGroupedBox Strategy = "grouped-box"
	// StrategyBox is a plain two-series box plot over numeric columns.
	StrategyBox Strategy = "box"
	// StrategyScatter is a plain x/y scatter.
	StrategyScatter Strategy = "scatter"
	// StrategyStrip is a jittered one-dimensional scatter grouped by
	// category.
	StrategyStrip Strategy = "strip"
	// StrategyCategoryScatter is a scatter with both axes category-coded.
	StrategyCategoryScatter Strategy = "category-scatter"
	// StrategyPie is a pie chart with a percentage label per slice.
	StrategyPie Strategy = "pie"
)

// Series is one ordered data series of a chart. Which fields are populated
// depends on the strategy: bar/pie use Labels+Values, box strategies use
// Values only, the scatter family uses X+Y.
type Series struct {
	Name   string
	Color  string
	Labels []string
	Values []float64
	X      []float64
	Y      []float64
}

// ChartSpec is the sole output contract of the selector, consumed by a
// rendering collaborator. A spec never references a column absent from the
// table it was built from.
type ChartSpec struct {
	ID       string
	Strategy Strategy
	Title    string
	XLabel   string
	YLabel   string
	Series   []Series
	// XTicks/YTicks carry category labels for category-coded axes.
	XTicks []string
	YTicks []string
	// Stats is attached for numerical distributions.
	Stats *dataset.Summary
}
