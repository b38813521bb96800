package viz

import (
	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// valueCounts tallies distinct categorical values in first-encountered
// order. Missing cells are skipped.
func valueCounts(c *dataset.Column) (labels []string, counts []float64) {
	index := map[string]int{}
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Category(i)
		if !ok {
			continue
		}
		j, seen := index[v]
		if !seen {
			j = len(labels)
			index[v] = j
			labels = append(labels, v)
			counts = append(counts, 0)
		}
		counts[j]++
	}
	return labels, counts
}

// groupedValues collects the numeric values of num per distinct category of
// cat, groups in first-encountered order. Rows missing either side are
// skipped.
func groupedValues(cat, num *dataset.Column) (groups []string, values [][]float64) {
	index := map[string]int{}
	for i := 0; i < cat.Len(); i++ {
		g, ok := cat.Category(i)
		if !ok {
			continue
		}
		v, ok := num.Float(i)
		if !ok {
			continue
		}
		j, seen := index[g]
		if !seen {
			j = len(groups)
			index[g] = j
			groups = append(groups, g)
			values = append(values, nil)
		}
		values[j] = append(values[j], v)
	}
	return groups, values
}

// pairedFloats extracts rows where both numeric columns are present.
func pairedFloats(x, y *dataset.Column) (xs, ys []float64) {
	for i := 0; i < x.Len(); i++ {
		xv, ok := x.Float(i)
		if !ok {
			continue
		}
		yv, ok := y.Float(i)
		if !ok {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys
}

// categoryCodes assigns each distinct value a rank in first-encountered
// order and returns the per-row codes. Missing rows get code -1.
func categoryCodes(c *dataset.Column) (codes []float64, order []string) {
	index := map[string]int{}
	codes = make([]float64, c.Len())
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Category(i)
		if !ok {
			codes[i] = -1
			continue
		}
		j, seen := index[v]
		if !seen {
			j = len(order)
			index[v] = j
			order = append(order, v)
		}
		codes[i] = float64(j)
	}
	return codes, order
}

// nonMissingFloats returns the present values of a numeric column.
func nonMissingFloats(c *dataset.Column) []float64 {
	out := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Float(i); ok {
			out = append(out, v)
		}
	}
	return out
}
