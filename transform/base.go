// Package transform - the four base affine mappings.
//
// Each kind is a tiny struct carrying the scalars it captured at
// construction plus a direction flag. Apply switches on the flag; Inverse
// returns a copy with the flag flipped — the forward/inverse pair share
// one parameter set, so round-tripping divides and multiplies by the very
// same value and stays exact within floating tolerance.
package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coordspace/coord"
)

// screenNormalized maps screen pixels to the resolution-independent [0,1]
// range (divide by extents) or back (multiply).
type screenNormalized struct {
	w, h     float64
	toScreen bool
}

// NewScreenToNormalized returns the mapping (x, y) → (x/w, y/h) for the
// given screen extents.
//
// Errors: coord.ErrInvalidConfiguration when either extent is zero,
// negative or non-finite — division must be impossible to get wrong at
// Apply time.
func NewScreenToNormalized(dims coord.Dimensions) (Transformation, error) {
	if err := dims.Validate(); err != nil {
		return nil, constructorErrorf("ScreenToNormalized", err)
	}

	return screenNormalized{w: dims.Width, h: dims.Height}, nil
}

// NewNormalizedToScreen returns the mapping (x, y) → (x·w, y·h), the exact
// inverse of NewScreenToNormalized for the same extents.
//
// Errors: coord.ErrInvalidConfiguration as NewScreenToNormalized.
func NewNormalizedToScreen(dims coord.Dimensions) (Transformation, error) {
	if err := dims.Validate(); err != nil {
		return nil, constructorErrorf("NormalizedToScreen", err)
	}

	return screenNormalized{w: dims.Width, h: dims.Height, toScreen: true}, nil
}

func (t screenNormalized) Apply(p coord.Point) coord.Point {
	if t.toScreen {
		return coord.Point{X: p.X * t.w, Y: p.Y * t.h}
	}

	return coord.Point{X: p.X / t.w, Y: p.Y / t.h}
}

func (t screenNormalized) Inverse() Transformation {
	t.toScreen = !t.toScreen

	return t
}

// shift subtracts a fixed origin offset going forward and adds it back on
// the inverse. Covers screen→browser (browser window position) and
// logical→frame (iframe offset) — both are pure translations.
type shift struct {
	dx, dy float64
	add    bool
}

// NewScreenToBrowser returns the mapping (x, y) → (x − b_x, y − b_y) for a
// browser window sitting at position pos on the screen.
//
// Errors: coord.ErrInvalidConfiguration when pos is not finite. Any finite
// position is legal, including negative coordinates (a window hanging off
// the screen edge).
func NewScreenToBrowser(pos coord.Point) (Transformation, error) {
	if !pos.IsFinite() {
		return nil, constructorErrorf("ScreenToBrowser",
			fmt.Errorf("position %v: %w", pos, coord.ErrInvalidConfiguration))
	}

	return shift{dx: pos.X, dy: pos.Y}, nil
}

// NewBrowserToScreen returns the mapping (x, y) → (x + b_x, y + b_y), the
// exact inverse of NewScreenToBrowser for the same position.
func NewBrowserToScreen(pos coord.Point) (Transformation, error) {
	if !pos.IsFinite() {
		return nil, constructorErrorf("BrowserToScreen",
			fmt.Errorf("position %v: %w", pos, coord.ErrInvalidConfiguration))
	}

	return shift{dx: pos.X, dy: pos.Y, add: true}, nil
}

func (t shift) Apply(p coord.Point) coord.Point {
	if t.add {
		return coord.Point{X: p.X + t.dx, Y: p.Y + t.dy}
	}

	return coord.Point{X: p.X - t.dx, Y: p.Y - t.dy}
}

func (t shift) Inverse() Transformation {
	t.add = !t.add

	return t
}

// dpiScale divides browser pixels by the DPI factor σ to reach logical
// (device-independent) pixels, or multiplies back.
type dpiScale struct {
	sigma     float64
	toBrowser bool
}

// NewBrowserToLogical returns the mapping (x, y) → (x/σ, y/σ).
//
// Errors: coord.ErrInvalidConfiguration when sigma is zero, negative or
// non-finite. σ = 0 would make the mapping undefined; negative σ has no
// physical meaning for DPI scaling.
func NewBrowserToLogical(sigma float64) (Transformation, error) {
	if err := validateScale("BrowserToLogical", sigma); err != nil {
		return nil, err
	}

	return dpiScale{sigma: sigma}, nil
}

// NewLogicalToBrowser returns the mapping (x, y) → (x·σ, y·σ), the exact
// inverse of NewBrowserToLogical for the same σ.
func NewLogicalToBrowser(sigma float64) (Transformation, error) {
	if err := validateScale("LogicalToBrowser", sigma); err != nil {
		return nil, err
	}

	return dpiScale{sigma: sigma, toBrowser: true}, nil
}

func (t dpiScale) Apply(p coord.Point) coord.Point {
	if t.toBrowser {
		return coord.Point{X: p.X * t.sigma, Y: p.Y * t.sigma}
	}

	return coord.Point{X: p.X / t.sigma, Y: p.Y / t.sigma}
}

func (t dpiScale) Inverse() Transformation {
	t.toBrowser = !t.toBrowser

	return t
}

// validateScale rejects non-positive or non-finite scale factors.
func validateScale(tag string, sigma float64) error {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return constructorErrorf(tag,
			fmt.Errorf("scale %g: %w", sigma, coord.ErrInvalidConfiguration))
	}

	return nil
}
