package preprocess

// DegeneratePolicy controls what happens to an all-missing column during
// imputation.
type DegeneratePolicy int

const (
	// DegenerateFail aborts preprocessing with ErrDegenerateColumn.
	DegenerateFail DegeneratePolicy = iota
	// DegenerateDrop removes the column from the output and records a warning.
	DegenerateDrop
)

// VariancePolicy controls what happens to a constant numerical column during
// scaling.
type VariancePolicy int

const (
	// VarianceFail aborts preprocessing with ErrZeroVariance.
	VarianceFail VariancePolicy = iota
	// VarianceSkip passes the column through unscaled and records a warning.
	VarianceSkip
)

// Options selects the per-column failure policies. Both default to failing
// fast; the relaxed policies are uniform per table, never ad hoc.
type Options struct {
	Degenerate   DegeneratePolicy
	ZeroVariance VariancePolicy
}

// DefaultOptions fails fast on degenerate and zero-variance columns.
func DefaultOptions() Options {
	return Options{Degenerate: DegenerateFail, ZeroVariance: VarianceFail}
}
