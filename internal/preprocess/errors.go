package preprocess

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateColumn indicates a column with zero non-missing values,
	// leaving no statistic to impute from.
	ErrDegenerateColumn = errors.New("degenerate column")
	// ErrNameCollision indicates one-hot expansion produced a column name
	// that already exists in the table.
	ErrNameCollision = errors.New("column name collision")
	// ErrZeroVariance indicates a constant numerical column whose z-score
	// is undefined.
	ErrZeroVariance = errors.New("zero variance")
)

// ColumnError ties a preprocessing failure to the offending column so the
// caller can retry with a different choice.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

func columnErr(name string, err error) error {
	return &ColumnError{Column: name, Err: err}
}
