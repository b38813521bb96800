package dataset

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn indicates a referenced column name does not exist in the
// target table.
var ErrUnknownColumn = errors.New("unknown column")

func unknownColumn(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
