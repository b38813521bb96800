package preprocess

import (
	"fmt"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// Impute returns a new table in which every surviving column has zero
// missing values: numerical columns are filled with their arithmetic mean,
// categorical columns with their mode (ties broken by first-encountered
// value). An all-missing column has no statistic to fill from; depending on
// opt.Degenerate it either fails the pass or is dropped with a warning.
func Impute(t *dataset.Table, opt Options) (*dataset.Table, []string, error) {
	var (
		cols     []*dataset.Column
		warnings []string
	)
	for i := 0; i < t.NumColumns(); i++ {
		c := t.ColumnAt(i)
		if c.MissingCount() == 0 {
			cols = append(cols, c)
			continue
		}
		if c.MissingCount() == c.Len() {
			if opt.Degenerate == DegenerateDrop {
				warnings = append(warnings, fmt.Sprintf("dropped column %q: no non-missing values to impute from", c.Name()))
				continue
			}
			return nil, nil, columnErr(c.Name(), ErrDegenerateColumn)
		}
		var (
			filled *dataset.Column
			err    error
		)
		switch c.Kind() {
		case dataset.Numerical:
			filled, err = imputeMean(c)
		case dataset.Categorical:
			filled, err = imputeMode(c)
		}
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, filled)
	}
	out, err := dataset.New(cols...)
	if err != nil {
		return nil, nil, err
	}
	return out, warnings, nil
}

func imputeMean(c *dataset.Column) (*dataset.Column, error) {
	var sum float64
	n := 0
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Float(i); ok {
			sum += v
			n++
		}
	}
	mean := sum / float64(n)
	vals := make([]float64, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Float(i); ok {
			vals[i] = v
		} else {
			vals[i] = mean
		}
	}
	return dataset.NewNumericColumn(c.Name(), vals, nil)
}

func imputeMode(c *dataset.Column) (*dataset.Column, error) {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Category(i)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			firstSeen[v] = i
		}
		counts[v]++
	}
	// Mode with deterministic tie-break: earlier first occurrence wins.
	var mode string
	best := -1
	for v, n := range counts {
		if n > best || (n == best && firstSeen[v] < firstSeen[mode]) {
			mode, best = v, n
		}
	}
	vals := make([]string, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Category(i); ok {
			vals[i] = v
		} else {
			vals[i] = mode
		}
	}
	return dataset.NewCategoricalColumn(c.Name(), vals, nil)
}
