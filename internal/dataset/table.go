package dataset

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the declared storage kind of a column. Classification follows the
// declared kind only; numeric-looking strings are never reinterpreted.
type Kind int

const (
	Categorical Kind = iota
	Numerical
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numerical:
		return "numerical"
	default:
		return "unknown"
	}
}

// Column is an immutable named value series with an explicit missing mask.
// Numerical columns store floats, categorical columns store strings; the
// inactive storage stays nil. Indicator columns are 0/1 flags produced by
// encoding and are excluded from scaling.
type Column struct {
	name      string
	kind      Kind
	nums      []float64
	cats      []string
	missing   []bool
	indicator bool
}

// NewNumericColumn builds a numerical column. missing may be nil when no
// value is absent; otherwise it must match len(vals).
func NewNumericColumn(name string, vals []float64, missing []bool) (*Column, error) {
	if missing != nil && len(missing) != len(vals) {
		return nil, fmt.Errorf("column %q: missing mask length %d != %d values", name, len(missing), len(vals))
	}
	c := &Column{
		name:    name,
		kind:    Numerical,
		nums:    append([]float64(nil), vals...),
		missing: copyMask(missing, len(vals)),
	}
	return c, nil
}

// NewCategoricalColumn builds a categorical column.
func NewCategoricalColumn(name string, vals []string, missing []bool) (*Column, error) {
	if missing != nil && len(missing) != len(vals) {
		return nil, fmt.Errorf("column %q: missing mask length %d != %d values", name, len(missing), len(vals))
	}
	c := &Column{
		name:    name,
		kind:    Categorical,
		cats:    append([]string(nil), vals...),
		missing: copyMask(missing, len(vals)),
	}
	return c, nil
}

// NewIndicatorColumn builds a 0/1 numerical column produced by one-hot
// encoding. Indicator columns never carry missing values.
func NewIndicatorColumn(name string, vals []float64) *Column {
	return &Column{
		name:      name,
		kind:      Numerical,
		nums:      append([]float64(nil), vals...),
		missing:   make([]bool, len(vals)),
		indicator: true,
	}
}

func copyMask(m []bool, n int) []bool {
	out := make([]bool, n)
	copy(out, m)
	return out
}

func (c *Column) Name() string    { return c.name }
func (c *Column) Kind() Kind      { return c.kind }
func (c *Column) Len() int        { return len(c.missing) }
func (c *Column) Indicator() bool { return c.indicator }

// IsMissing reports whether the value at row i is absent.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// MissingCount returns the number of absent values.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// Float returns the numeric value at row i; ok is false for missing rows and
// for categorical columns.
func (c *Column) Float(i int) (float64, bool) {
	if c.kind != Numerical || c.missing[i] {
		return 0, false
	}
	return c.nums[i], true
}

// Category returns the string value at row i; ok is false for missing rows
// and for numerical columns.
func (c *Column) Category(i int) (string, bool) {
	if c.kind != Categorical || c.missing[i] {
		return "", false
	}
	return c.cats[i], true
}

// Cell formats the value at row i for display. Missing values render as
// the empty string.
func (c *Column) Cell(i int) string {
	if c.missing[i] {
		return ""
	}
	if c.kind == Numerical {
		return strconv.FormatFloat(c.nums[i], 'g', -1, 64)
	}
	return c.cats[i]
}

// Floats returns a copy of the numeric values with missing rows as NaN.
// Returns nil for categorical columns.
func (c *Column) Floats() []float64 {
	if c.kind != Numerical {
		return nil
	}
	out := make([]float64, len(c.nums))
	for i, v := range c.nums {
		if c.missing[i] {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out
}

// Categories returns a copy of the string values; missing rows are empty.
// Returns nil for numerical columns.
func (c *Column) Categories() []string {
	if c.kind != Categorical {
		return nil
	}
	out := make([]string, len(c.cats))
	for i, v := range c.cats {
		if c.missing[i] {
			continue
		}
		out[i] = v
	}
	return out
}

// Table is an ordered sequence of uniformly sized named columns. Tables are
// read-only after construction; preprocessing builds new tables rather than
// mutating existing ones.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a table from columns, validating unique names and a uniform
// row count.
func New(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.name)
		}
		if len(t.cols) == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.name, c.Len(), t.rows)
		}
		t.index[c.name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// Rows returns the row count shared by all columns.
func (t *Table) Rows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// Names returns column names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// Column resolves a column by name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, unknownColumn(name)
	}
	return t.cols[i], nil
}

// ColumnAt returns the column at position i in declaration order.
func (t *Table) ColumnAt(i int) *Column { return t.cols[i] }

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}
