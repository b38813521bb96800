package dataset

// Classify reports the kind of a named column. The verdict follows the
// column's declared storage kind only and is stable across calls: an
// all-missing or empty column keeps the kind it was loaded with.
func Classify(t *Table, name string) (Kind, error) {
	c, err := t.Column(name)
	if err != nil {
		return Categorical, err
	}
	return c.Kind(), nil
}
