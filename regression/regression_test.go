package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/noderank/regression"
)

// TestOLSFitter_PerfectLine ASSERTS that fitting noiseless points on a known
// line recovers that line's coef/intercept.
func TestOLSFitter_PerfectLine(t *testing.T) {
	f := regression.NewOLSFitter()

	x := []float64{1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi + 5
	}

	coef, intercept, err := f.Fit(x, y)
	require.NoError(t, err)
	require.InDelta(t, 2.0, coef, 1e-9)
	require.InDelta(t, 5.0, intercept, 1e-9)
	require.True(t, regression.IsFinite(coef, intercept))
}

// TestOLSFitter_InsufficientData ASSERTS Fit rejects fewer than two points
// or mismatched slice lengths.
func TestOLSFitter_InsufficientData(t *testing.T) {
	f := regression.NewOLSFitter()

	_, _, err := f.Fit([]float64{1}, []float64{1})
	require.ErrorIs(t, err, regression.ErrInsufficientData)

	_, _, err = f.Fit([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, regression.ErrInsufficientData)
}

// TestIsFinite ASSERTS the degeneracy check flags NaN and +/-Inf.
func TestIsFinite(t *testing.T) {
	require.True(t, regression.IsFinite(1, 2))
	require.False(t, regression.IsFinite(math.NaN(), 0))
	require.False(t, regression.IsFinite(0, math.Inf(1)))
	require.False(t, regression.IsFinite(math.Inf(-1), 0))
}
