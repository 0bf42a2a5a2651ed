// Package coordspace is your in-memory toolkit for moving points between
// the coordinate systems that appear when a web page lives inside a browser
// window on a physical screen — and for calibrating those mappings against
// measured data.
//
// 🚀 What is coordspace?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Value primitives: Point, Dimensions, DisplayConfiguration
//		• Base transforms: screen↔normalized, screen→browser,
//		  browser→logical (DPI), iframe-relative offsets
//		• A composable, invertible Transformation abstraction —
//		  every mapping carries an exact O(1) algebraic inverse
//		• Factory pipelines: cross-screen remapping, screen→logical,
//		  and the full source-screen→target-logical chain
//		• A closed-form dense matrix engine (orders 1–3) with strict,
//		  typed failure reporting
//		• Calibration: fit offset / scale / affine corrections from
//		  (measured, true) point pairs and plug the result straight
//		  back into a transformation pipeline
//
// ✨ Why choose coordspace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, immutable value types,
//     safe for unlocked concurrent use
//   - Pure Go – no cgo, no hidden deps
//   - Honest failures – sentinel errors for every violated contract,
//     never a silent NaN
//
// Everything is organized under four subpackages:
//
//	coord/       — Point, Dimensions, DisplayConfiguration value types
//	transform/   — invertible transformations, composition, pipelines
//	matrix/      — order ≤ 3 dense kernels: Mul, MulVec, Det, Inverse, Solve
//	calibration/ — correction fitting on top of matrix and transform
//
// Quick ASCII example:
//
//	 physical screen (2560×1440)
//	┌──────────────────────────────┐
//	│   browser @ (100,50)         │
//	│  ┌────────────────────┐      │
//	│  │ page, DPI ×2       │      │
//	│  │  ┌──────────┐      │      │
//	│  │  │ iframe   │      │      │
//	│  │  └──────────┘      │      │
//	│  └────────────────────┘      │
//	└──────────────────────────────┘
//
//	screen → browser → logical → iframe : one composed Transformation,
//	inverted for free when you need to go back.
//
// See each subpackage's doc.go and example_test.go for usage patterns.
package coordspace
