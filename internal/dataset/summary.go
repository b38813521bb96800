package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Summary holds descriptive statistics for a numeric series in the shape of
// a pandas-style describe: count, mean, std (sample, ddof=1), min, the three
// quartiles, and max.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes descriptive statistics over the non-missing values of a
// numerical column.
func Summarize(c *Column) (Summary, error) {
	if c.Kind() != Numerical {
		return Summary{}, fmt.Errorf("column %q is %s, not numerical", c.Name(), c.Kind())
	}
	vals := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Float(i); ok {
			vals = append(vals, v)
		}
	}
	return SummarizeValues(vals), nil
}

// SummarizeValues computes descriptive statistics for a raw value slice.
// An empty slice yields a zero Summary with Count 0.
func SummarizeValues(vals []float64) Summary {
	s := Summary{Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	// Welford mean/variance
	var mean, m2 float64
	mn, mx := math.Inf(1), math.Inf(-1)
	for i, v := range vals {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	s.Mean = mean
	if len(vals) > 1 {
		s.Std = math.Sqrt(m2 / float64(len(vals)-1))
	}
	s.Min = mn
	s.Max = mx

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Q1 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	return s
}

// quantile interpolates linearly between adjacent sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// CategoryCount pairs a distinct categorical value with its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// ColumnProfile summarizes one column for dataset inspection.
type ColumnProfile struct {
	Name    string
	Kind    Kind
	NonNull int
	Missing int
	Unique  int
	// Numeric is set for numerical columns with at least one value.
	Numeric *Summary
	// TopValues lists the most frequent categorical values, ties broken by
	// value for stable output.
	TopValues []CategoryCount
}

// Profile summarizes every column of a table in declaration order.
func Profile(t *Table) []ColumnProfile {
	out := make([]ColumnProfile, 0, t.NumColumns())
	for i := 0; i < t.NumColumns(); i++ {
		c := t.ColumnAt(i)
		p := ColumnProfile{Name: c.Name(), Kind: c.Kind()}
		p.Missing = c.MissingCount()
		p.NonNull = c.Len() - p.Missing
		switch c.Kind() {
		case Numerical:
			if p.NonNull > 0 {
				s, _ := Summarize(c)
				p.Numeric = &s
			}
		case Categorical:
			counts := map[string]int{}
			for j := 0; j < c.Len(); j++ {
				if v, ok := c.Category(j); ok {
					counts[v]++
				}
			}
			p.Unique = len(counts)
			tops := make([]CategoryCount, 0, len(counts))
			for v, n := range counts {
				tops = append(tops, CategoryCount{Value: v, Count: n})
			}
			sort.Slice(tops, func(a, b int) bool {
				if tops[a].Count == tops[b].Count {
					return tops[a].Value < tops[b].Value
				}
				return tops[a].Count > tops[b].Count
			})
			if len(tops) > 8 {
				tops = tops[:8]
			}
			p.TopValues = tops
		}
		out = append(out, p)
	}
	return out
}
