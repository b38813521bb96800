package preprocess

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// Scale standardizes every measurement column to zero mean and unit variance
// using the sample standard deviation (ddof=1, matching a pandas .std()).
// Indicator columns produced by encoding are 0/1 flags, not measurements,
// and pass through untouched. A constant column (or one with fewer than two
// values, where the sample deviation is undefined) either fails the pass
// with ErrZeroVariance or, under VarianceSkip, passes through unscaled with
// a warning, never a silent NaN.
func Scale(t *dataset.Table, opt Options) (*dataset.Table, []string, error) {
	var (
		cols     []*dataset.Column
		warnings []string
	)
	for i := 0; i < t.NumColumns(); i++ {
		c := t.ColumnAt(i)
		if c.Kind() != dataset.Numerical || c.Indicator() {
			cols = append(cols, c)
			continue
		}
		scaled, err := scaleColumn(c)
		if err != nil {
			if opt.ZeroVariance == VarianceSkip {
				warnings = append(warnings, fmt.Sprintf("column %q left unscaled: %v", c.Name(), err))
				cols = append(cols, c)
				continue
			}
			return nil, nil, err
		}
		cols = append(cols, scaled)
	}
	out, err := dataset.New(cols...)
	if err != nil {
		return nil, nil, err
	}
	return out, warnings, nil
}

func scaleColumn(c *dataset.Column) (*dataset.Column, error) {
	var mean, m2 float64
	n := 0
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Float(i)
		if !ok {
			continue
		}
		n++
		delta := v - mean
		mean += delta / float64(n)
		m2 += delta * (v - mean)
	}
	if n < 2 {
		return nil, columnErr(c.Name(), ErrZeroVariance)
	}
	std := math.Sqrt(m2 / float64(n-1))
	if std == 0 {
		return nil, columnErr(c.Name(), ErrZeroVariance)
	}
	vals := make([]float64, c.Len())
	missing := make([]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Float(i)
		if !ok {
			missing[i] = true
			continue
		}
		vals[i] = (v - mean) / std
	}
	return dataset.NewNumericColumn(c.Name(), vals, missing)
}
