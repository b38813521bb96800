package preprocess

import (
	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// Encode replaces every categorical column with one 0/1 indicator column per
// distinct observed value, named name_value, in first-encountered value
// order. Numerical columns pass through unchanged and the row count is
// preserved. A produced name that duplicates any other output column fails
// with ErrNameCollision rather than silently overwriting.
//
// Missing categorical cells (possible only when Encode is called outside the
// full pipeline, which imputes first) contribute 0 to every indicator; no
// synthetic "missing" category is created.
func Encode(t *dataset.Table) (*dataset.Table, error) {
	var cols []*dataset.Column
	seen := map[string]string{} // output name -> source column
	add := func(c *dataset.Column, source string) error {
		if _, dup := seen[c.Name()]; dup {
			return columnErr(c.Name(), ErrNameCollision)
		}
		seen[c.Name()] = source
		cols = append(cols, c)
		return nil
	}

	for i := 0; i < t.NumColumns(); i++ {
		c := t.ColumnAt(i)
		if c.Kind() == dataset.Numerical {
			if err := add(c, c.Name()); err != nil {
				return nil, err
			}
			continue
		}
		for _, ind := range expandIndicators(c) {
			if err := add(ind, c.Name()); err != nil {
				return nil, err
			}
		}
	}
	return dataset.New(cols...)
}

// expandIndicators builds the indicator columns for one categorical column,
// one per distinct value in first-seen order.
func expandIndicators(c *dataset.Column) []*dataset.Column {
	var order []string
	index := map[string]int{}
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Category(i)
		if !ok {
			continue
		}
		if _, seen := index[v]; !seen {
			index[v] = len(order)
			order = append(order, v)
		}
	}
	series := make([][]float64, len(order))
	for j := range series {
		series[j] = make([]float64, c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Category(i); ok {
			series[index[v]][i] = 1
		}
	}
	out := make([]*dataset.Column, len(order))
	for j, v := range order {
		out[j] = dataset.NewIndicatorColumn(c.Name()+"_"+v, series[j])
	}
	return out
}
