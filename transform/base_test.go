// Package transform_test contains unit tests for the base transformations
// and their construction-time validation.
package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coordspace/coord"
	"github.com/katalvlaran/coordspace/transform"
)

const tol = 1e-6

// assertPointInDelta compares points component-wise within tol.
func assertPointInDelta(t *testing.T, want, got coord.Point, tol float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
}

// assertRoundTrip checks T⁻¹(T(p)) ≈ p and T(T⁻¹(q)) ≈ q.
func assertRoundTrip(t *testing.T, tr transform.Transformation, p coord.Point) {
	t.Helper()
	assertPointInDelta(t, p, tr.Inverse().Apply(tr.Apply(p)), tol)
	assertPointInDelta(t, p, tr.Apply(tr.Inverse().Apply(p)), tol)
}

// samplePoints exercises quadrants, the origin and fractional values.
var samplePoints = []coord.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 1},
	{X: 1920, Y: 1080},
	{X: -37.25, Y: 1023.75},
	{X: 2.5e6, Y: -8.125e-3},
}

func TestScreenToNormalized_ForwardAndInverse(t *testing.T) {
	tr, err := transform.NewScreenToNormalized(coord.Dimensions{Width: 1920, Height: 1080})
	require.NoError(t, err)

	assertPointInDelta(t, coord.Point{X: 0.5, Y: 0.5}, tr.Apply(coord.Point{X: 960, Y: 540}), tol)
	assertPointInDelta(t, coord.Point{X: 1, Y: 1}, tr.Apply(coord.Point{X: 1920, Y: 1080}), tol)

	for _, p := range samplePoints {
		assertRoundTrip(t, tr, p)
	}
}

func TestNormalizedToScreen_MatchesInverse(t *testing.T) {
	dims := coord.Dimensions{Width: 2560, Height: 1440}
	toNorm, err := transform.NewScreenToNormalized(dims)
	require.NoError(t, err)
	toScreen, err := transform.NewNormalizedToScreen(dims)
	require.NoError(t, err)

	// The standalone constructor and Inverse() must agree numerically.
	for _, p := range samplePoints {
		assertPointInDelta(t, toScreen.Apply(p), toNorm.Inverse().Apply(p), tol)
	}
}

func TestScreenToBrowser_ForwardAndInverse(t *testing.T) {
	tr, err := transform.NewScreenToBrowser(coord.Point{X: 100, Y: 50})
	require.NoError(t, err)

	assertPointInDelta(t, coord.Point{X: 860, Y: 490}, tr.Apply(coord.Point{X: 960, Y: 540}), tol)

	for _, p := range samplePoints {
		assertRoundTrip(t, tr, p)
	}
}

func TestBrowserToLogical_ForwardAndInverse(t *testing.T) {
	tr, err := transform.NewBrowserToLogical(2)
	require.NoError(t, err)

	assertPointInDelta(t, coord.Point{X: 480, Y: 270}, tr.Apply(coord.Point{X: 960, Y: 540}), tol)

	for _, p := range samplePoints {
		assertRoundTrip(t, tr, p)
	}
}

func TestIdentity_IsItsOwnInverse(t *testing.T) {
	id := transform.Identity()
	for _, p := range samplePoints {
		assertPointInDelta(t, p, id.Apply(p), 0)
		assertPointInDelta(t, p, id.Inverse().Apply(p), 0)
	}
}

func TestDoubleInverse_BehavesLikeOriginal(t *testing.T) {
	tr, err := transform.NewScreenToNormalized(coord.Dimensions{Width: 1366, Height: 768})
	require.NoError(t, err)

	twice := tr.Inverse().Inverse()
	for _, p := range samplePoints {
		assertPointInDelta(t, tr.Apply(p), twice.Apply(p), tol)
	}
}

func TestConstructors_RejectInvalidScalars(t *testing.T) {
	t.Run("zero screen width", func(t *testing.T) {
		_, err := transform.NewScreenToNormalized(coord.Dimensions{Width: 0, Height: 1080})
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
	t.Run("negative screen height", func(t *testing.T) {
		_, err := transform.NewNormalizedToScreen(coord.Dimensions{Width: 1920, Height: -1})
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
	t.Run("zero dpi scale", func(t *testing.T) {
		_, err := transform.NewBrowserToLogical(0)
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
	t.Run("negative dpi scale", func(t *testing.T) {
		_, err := transform.NewLogicalToBrowser(-1.5)
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
	t.Run("nan dpi scale", func(t *testing.T) {
		_, err := transform.NewBrowserToLogical(math.NaN())
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
	t.Run("non-finite browser position", func(t *testing.T) {
		_, err := transform.NewScreenToBrowser(coord.Point{X: math.Inf(1), Y: 0})
		assert.ErrorIs(t, err, coord.ErrInvalidConfiguration)
	})
}
