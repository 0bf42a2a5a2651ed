// Package transform_test - composite combinator properties.
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coordspace/coord"
	"github.com/katalvlaran/coordspace/transform"
)

// buildTriple returns three independent base transformations used by the
// composition property tests.
func buildTriple(t *testing.T) (t1, t2, t3 transform.Transformation) {
	t.Helper()
	var err error
	t1, err = transform.NewScreenToBrowser(coord.Point{X: 100, Y: 50})
	require.NoError(t, err)
	t2, err = transform.NewBrowserToLogical(2)
	require.NoError(t, err)
	t3, err = transform.NewIFrame(coord.Point{X: 30, Y: 40})
	require.NoError(t, err)

	return t1, t2, t3
}

func TestCompose_AppliesInOrder(t *testing.T) {
	t1, t2, _ := buildTriple(t)
	chain := transform.Compose(t1, t2)

	// (960,540) → subtract (100,50) → (860,490) → /2 → (430,245)
	assertPointInDelta(t, coord.Point{X: 430, Y: 245}, chain.Apply(coord.Point{X: 960, Y: 540}), tol)
}

func TestCompose_InverseIsReversedChain(t *testing.T) {
	t1, t2, _ := buildTriple(t)
	chain := transform.Compose(t1, t2)
	manual := transform.Compose(t2.Inverse(), t1.Inverse())

	for _, p := range samplePoints {
		assertPointInDelta(t, manual.Apply(p), chain.Inverse().Apply(p), tol)
	}
}

func TestCompose_RoundTrip(t *testing.T) {
	t1, t2, t3 := buildTriple(t)
	chain := transform.Compose(transform.Compose(t1, t2), t3)

	for _, p := range samplePoints {
		assertRoundTrip(t, chain, p)
	}
}

func TestCompose_Associativity(t *testing.T) {
	t1, t2, t3 := buildTriple(t)

	left := transform.Compose(transform.Compose(t1, t2), t3)
	right := transform.Compose(t1, transform.Compose(t2, t3))

	for _, p := range samplePoints {
		assertPointInDelta(t, left.Apply(p), right.Apply(p), tol)
	}
}

func TestCompose_WithIdentityIsNeutral(t *testing.T) {
	t1, _, _ := buildTriple(t)

	pre := transform.Compose(transform.Identity(), t1)
	post := transform.Compose(t1, transform.Identity())
	for _, p := range samplePoints {
		assertPointInDelta(t, t1.Apply(p), pre.Apply(p), 0)
		assertPointInDelta(t, t1.Apply(p), post.Apply(p), 0)
	}
}
