// Package calibration: sentinel error set.
// Geometry failures (insufficient/degenerate correspondences) intentionally
// surface as matrix.ErrSingular from the underlying solve — callers match
// one sentinel for "this data cannot determine this model".

package calibration

import "errors"

var (
	// ErrNoPairs indicates an empty correspondence set — there is nothing
	// to fit.
	ErrNoPairs = errors.New("calibration: no correspondence pairs")

	// ErrNonFiniteSample indicates a correspondence pair containing NaN or
	// ±Inf; such samples would silently poison the normal equations.
	ErrNonFiniteSample = errors.New("calibration: non-finite sample point")

	// ErrUnknownModel indicates a Model constant outside the supported set.
	ErrUnknownModel = errors.New("calibration: unknown correction model")
)
