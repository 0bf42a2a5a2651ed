// Package calibration fits affine correction parameters from observed
// (measured, true) point pairs and exposes the fitted correction as a
// transform.Transformation, so it composes with any coordinate pipeline
// through the same abstraction.
//
// 🚀 How it works:
//
//	Each correction model is fitted per axis by assembling the
//	normal-equation system DᵀD·p = Dᵀr from the correspondence set and
//	delegating to matrix.Solve. The assembled system never exceeds 3×3,
//	so everything stays inside the closed-form engine:
//
//	  ModelOffset      x' = x + c            → 1×1 system per axis
//	  ModelScaleOffset x' = a·x + b          → 2×2 system per axis
//	  ModelAffine      x' = a·x + b·y + c    → 3×3 system per axis
//
//	Normal equations accept both exact-determined and overdetermined
//	correspondence sets; extra pairs are fitted in the least-squares
//	sense.
//
// ✨ Failure modes are typed and honest:
//   - ErrNoPairs             — empty correspondence set.
//   - ErrNonFiniteSample     — a pair contains NaN/Inf.
//   - ErrUnknownModel        — model constant out of range.
//   - matrix.ErrSingular     — too few independent pairs for the chosen
//     model, or degenerate geometry (duplicate/collinear points), or a
//     fitted correction that collapses the plane and cannot be inverted.
//
// Callers are expected to pick a model matching their data: the package
// does not regularize a singular fit, it reports it.
//
// The fitted transformation is validated invertible at fit time, so its
// Inverse() is total like every other transformation kind.
package calibration
