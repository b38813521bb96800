package viz

// DefaultPalette is the seaborn "deep" ten-color cycle.
var DefaultPalette = []string{
	"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3",
	"#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD",
}

// palette assigns colors by category rank. Ranks beyond the palette size
// cycle deterministically; the same input order always yields the same
// category-to-color mapping.
type palette struct {
	colors []string
}

func newPalette(colors []string) palette {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	return palette{colors: colors}
}

func (p palette) color(rank int) string {
	return p.colors[rank%len(p.colors)]
}
