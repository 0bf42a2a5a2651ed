// Package transform provides composable, invertible mappings between the
// coordinate spaces of a browser page on a physical screen.
//
// 🚀 What is a Transformation?
//
//	A capability with exactly two operations:
//	  • Apply(p)   — map a point forward (pure, total for finite inputs)
//	  • Inverse()  — obtain the exact algebraic inverse, in O(1)
//
//	For every transformation T and finite point p:
//	  T.Inverse().Apply(T.Apply(p)) ≈ p         (round-trip identity)
//	  T.Inverse().Inverse() behaves exactly like T (double inverse)
//
// ✨ Building blocks:
//   - Screen↔Normalized — divide/multiply by screen extents
//   - Screen↔Browser    — subtract/add the browser window position
//   - Browser↔Logical   — divide/multiply by the DPI scale σ
//   - IFrame            — subtract a nested frame's offset; NestedIFrame
//     left-folds a whole offset chain (empty chain = identity)
//   - Compose(first, second) — chain any two; its inverse is the reversed
//     chain of the two sub-inverses, a structural swap with no recomputed
//     formulas; composition is associative within floating tolerance
//
// ⚙️ Pipelines:
//
//	ScreenToScreen(src, dst) — remap across two displays (per-axis scale)
//	ScreenToLogical(cfg)     — physical pixel → device-independent pixel
//	Complete(src, dst)       — source screen → target logical, one chain
//
// Every constructor validates its scalars up front: a zero screen extent or
// DPI scale is a construction-time coord.ErrInvalidConfiguration, never a
// runtime NaN leak. Transformations capture plain scalars at construction,
// so mutating a DisplayConfiguration afterwards changes nothing.
//
// All values are immutable and safe for unlocked concurrent use.
package transform
