package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/dataloom-cli/internal/preprocess"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, c.HistogramBins)
	assert.Equal(t, 1, c.SheetIndex)
	assert.Contains(t, c.MissingTokens, "NA")
	assert.Len(t, c.Palette, 10)

	opt, err := c.Policies()
	require.NoError(t, err)
	assert.Equal(t, preprocess.DegenerateFail, opt.Degenerate)
	assert.Equal(t, preprocess.VarianceFail, opt.ZeroVariance)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		OnDegenerate:   "drop",
		OnZeroVariance: "skip",
		HistogramBins:  20,
		MaxRows:        100,
	}
	require.NoError(t, Save(in, p))

	out, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "drop", out.OnDegenerate)
	assert.Equal(t, "skip", out.OnZeroVariance)
	assert.Equal(t, 20, out.HistogramBins)
	assert.Equal(t, 100, out.MaxRows)

	opt, err := out.Policies()
	require.NoError(t, err)
	assert.Equal(t, preprocess.DegenerateDrop, opt.Degenerate)
	assert.Equal(t, preprocess.VarianceSkip, opt.ZeroVariance)
}

func TestPoliciesRejectUnknownValues(t *testing.T) {
	_, err := (&Global{OnDegenerate: "ignore"}).Policies()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_degenerate")

	_, err = (&Global{OnZeroVariance: "ignore"}).Policies()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_zero_variance")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATALOOM_HISTOGRAM_BINS", "7")
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, c.HistogramBins)
}

func TestSaveCreatesReadableYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(&Global{OnDegenerate: "drop"}, p))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "on_degenerate: drop")
}
