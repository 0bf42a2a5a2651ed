// Package calibration - correspondence pairs, correction models, and the
// fit result.

package calibration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coordspace/coord"
	"github.com/katalvlaran/coordspace/transform"
)

// Pair is one calibration correspondence: where the device reported a
// point (Measured) versus where it actually is (True).
type Pair struct {
	Measured coord.Point
	True     coord.Point
}

// Model selects how many degrees of freedom the fitted correction has.
// Pick the smallest model the hardware's distortion actually needs: a
// richer model demands more independent correspondence pairs and fits
// noise more eagerly.
type Model int

const (
	// ModelOffset corrects a pure translation: x' = x + c per axis.
	// One independent pair suffices.
	ModelOffset Model = iota

	// ModelScaleOffset corrects per-axis gain and translation:
	// x' = a·x + b. Needs pairs at two distinct positions per axis.
	ModelScaleOffset

	// ModelAffine corrects the full planar affine map, including shear
	// and rotation: x' = a·x + b·y + c per axis. Needs three
	// non-collinear pairs.
	ModelAffine
)

// String implements fmt.Stringer for log and error messages.
func (m Model) String() string {
	switch m {
	case ModelOffset:
		return "Offset"
	case ModelScaleOffset:
		return "ScaleOffset"
	case ModelAffine:
		return "Affine"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Result carries a fitted correction: the composable transformation plus
// the raw per-axis parameter vectors for diagnostics and persistence.
type Result struct {
	// Model is the model the parameters were fitted under.
	Model Model

	// XParams / YParams are the raw solution vectors of the per-axis
	// normal-equation systems, in design-row order:
	//   Offset      → [c]
	//   ScaleOffset → [a, b]
	//   Affine      → [a, b, c]
	XParams []float64
	YParams []float64

	// Correction maps measured points to corrected points. Its Inverse()
	// maps corrected back to measured; invertibility was verified during
	// the fit, so the inverse is always available.
	Correction transform.Transformation
}

// Residual reports the mean Euclidean error of the fitted correction over
// pairs: average distance between Correction.Apply(Measured) and True.
// Zero means a perfect fit on this set; an empty set yields +Inf, since
// "no evidence" must never look better than "some error".
func (r Result) Residual(pairs []Pair) float64 {
	if len(pairs) == 0 {
		return math.Inf(1)
	}

	var total float64
	for _, p := range pairs {
		total += r.Correction.Apply(p.Measured).Distance(p.True)
	}

	return total / float64(len(pairs))
}
