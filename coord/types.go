// Package coord - shared value types and their validation.
package coord

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when a dimension or scale that must be
// strictly positive (and finite) is not. Raised at construction/validation
// time, never deferred to the first division.
var ErrInvalidConfiguration = errors.New("coord: invalid display configuration")

// Point is a position in some 2D coordinate space.
// Which space it lives in is decided by the transformation applied to it.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both components are finite (no NaN, no ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String implements fmt.Stringer for readable test output and logs.
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Dimensions is a width×height extent in pixels of some coordinate space.
type Dimensions struct {
	Width  float64
	Height float64
}

// Validate reports ErrInvalidConfiguration unless both extents are strictly
// positive finite numbers. Complexity: O(1).
func (d Dimensions) Validate() error {
	if !isPositiveFinite(d.Width) {
		return fmt.Errorf("width %g: %w", d.Width, ErrInvalidConfiguration)
	}
	if !isPositiveFinite(d.Height) {
		return fmt.Errorf("height %g: %w", d.Height, ErrInvalidConfiguration)
	}

	return nil
}

// DisplayConfiguration describes one physical display hosting a browser
// window: the screen extent, where the browser window sits on that screen,
// the viewport extent inside the window, and the DPI scaling factor σ that
// maps browser pixels to logical (device-independent) pixels.
//
// Invariant: all dimensions and DPIScaling are strictly positive.
// DPIScaling = 0 is invalid — it would make browser→logical undefined.
type DisplayConfiguration struct {
	ScreenDimensions   Dimensions
	BrowserPosition    Point
	ViewportDimensions Dimensions
	DPIScaling         float64
}

// Validate checks every positivity/finiteness invariant of the
// configuration and returns ErrInvalidConfiguration (wrapped with the
// offending field) on the first violation.
//
// Implementation:
//   - Stage 1: screen extent, then viewport extent (strictly positive).
//   - Stage 2: browser position finite (any sign is legal — a window may
//     hang off the left/top screen edge).
//   - Stage 3: DPIScaling strictly positive finite.
//
// Complexity: O(1). Determinism: fixed check order, first failure wins.
func (c DisplayConfiguration) Validate() error {
	if err := c.ScreenDimensions.Validate(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := c.ViewportDimensions.Validate(); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	if !c.BrowserPosition.IsFinite() {
		return fmt.Errorf("browser position %v: %w", c.BrowserPosition, ErrInvalidConfiguration)
	}
	if !isPositiveFinite(c.DPIScaling) {
		return fmt.Errorf("dpi scaling %g: %w", c.DPIScaling, ErrInvalidConfiguration)
	}

	return nil
}

// isPositiveFinite reports whether v is a usable strictly-positive scalar.
func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
