package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteCycles(t *testing.T) {
	p := newPalette(nil)
	assert.Equal(t, DefaultPalette[0], p.color(0))
	assert.Equal(t, DefaultPalette[9], p.color(9))
	assert.Equal(t, p.color(0), p.color(10))
	assert.Equal(t, p.color(3), p.color(13))
}

func TestPaletteOverride(t *testing.T) {
	p := newPalette([]string{"#000000", "#FFFFFF"})
	assert.Equal(t, "#000000", p.color(0))
	assert.Equal(t, "#FFFFFF", p.color(1))
	assert.Equal(t, "#000000", p.color(2))
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"distribution", Distribution},
		{"histogram", Distribution},
		{"comparison", Comparison},
		{"boxplot", Comparison},
		{"correlation", Correlation},
		{"scatter", Correlation},
		{"proportion", Proportion},
		{"pie", Proportion},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := ParseKind("heatmap")
	assert.Error(t, err)
}

func TestKindPaired(t *testing.T) {
	assert.False(t, Distribution.Paired())
	assert.True(t, Comparison.Paired())
	assert.True(t, Correlation.Paired())
	assert.False(t, Proportion.Paired())
}
