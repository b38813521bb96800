package viz

import "fmt"

// Kind is the requested visualization family. Distribution and Proportion
// take a single column; Comparison and Correlation take a column pair.
type Kind int

const (
	// Distribution plots one column: frequency bars for categorical,
	// histogram with summary statistics for numerical.
	Distribution Kind = iota
	// Comparison plots a column pair as box plots.
	Comparison
	// Correlation plots a column pair as a scatter family.
	Correlation
	// Proportion plots one categorical column as a pie chart.
	Proportion
)

func (k Kind) String() string {
	switch k {
	case Distribution:
		return "distribution"
	case Comparison:
		return "comparison"
	case Correlation:
		return "correlation"
	case Proportion:
		return "proportion"
	default:
		return "unknown"
	}
}

// ParseKind maps a user-facing kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "distribution", "histogram":
		return Distribution, nil
	case "comparison", "boxplot":
		return Comparison, nil
	case "correlation", "scatter":
		return Correlation, nil
	case "proportion", "pie":
		return Proportion, nil
	default:
		return 0, fmt.Errorf("unknown visualization kind %q", s)
	}
}

// Paired reports whether the kind consumes an x/y column pair.
func (k Kind) Paired() bool { return k == Comparison || k == Correlation }

// Request names the column(s) to visualize and the requested kind. Y is
// ignored for single-column kinds. X and Y may name the same column;
// plotting a column against itself is permitted.
type Request struct {
	Kind Kind
	X    string
	Y    string
}
