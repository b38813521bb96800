package viz

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/dataloom-cli/internal/dataset"
)

// ErrUnsupportedVisualization indicates the requested kind is structurally
// invalid for the column type signature, e.g. a proportion chart over a
// numerical column.
var ErrUnsupportedVisualization = errors.New("unsupported visualization")

func unsupported(k Kind, x dataset.Kind, y dataset.Kind, paired bool) error {
	if paired {
		return fmt.Errorf("%w: %s over (%s, %s) columns", ErrUnsupportedVisualization, k, x, y)
	}
	return fmt.Errorf("%w: %s over a %s column", ErrUnsupportedVisualization, k, x)
}
