// Package transform - factory pipelines assembling base transformations
// into the named coordinate chains.
package transform

import "github.com/katalvlaran/coordspace/coord"

// ScreenToScreen builds the mapping from source-screen pixels to
// target-screen pixels: normalize by the source extents, then denormalize
// by the target extents.
//
// Net effect: independent per-axis scale factors
// α_x = target.Width/source.Width, α_y = target.Height/source.Height.
// Identical source and target screen dimensions yield a numeric identity.
//
// Errors: coord.ErrInvalidConfiguration from either configuration.
func ScreenToScreen(source, target coord.DisplayConfiguration) (Transformation, error) {
	if err := source.Validate(); err != nil {
		return nil, constructorErrorf("ScreenToScreen: source", err)
	}
	if err := target.Validate(); err != nil {
		return nil, constructorErrorf("ScreenToScreen: target", err)
	}

	// Configurations are valid, so the base constructors cannot fail.
	toNorm, _ := NewScreenToNormalized(source.ScreenDimensions)
	toScreen, _ := NewNormalizedToScreen(target.ScreenDimensions)

	return Compose(toNorm, toScreen), nil
}

// ScreenToLogical builds the mapping from screen pixels to logical
// (device-independent) pixels for one display: subtract the browser window
// position, then divide by the DPI scale.
//
// Errors: coord.ErrInvalidConfiguration from the configuration.
func ScreenToLogical(config coord.DisplayConfiguration) (Transformation, error) {
	if err := config.Validate(); err != nil {
		return nil, constructorErrorf("ScreenToLogical", err)
	}

	toBrowser, _ := NewScreenToBrowser(config.BrowserPosition)
	toLogical, _ := NewBrowserToLogical(config.DPIScaling)

	return Compose(toBrowser, toLogical), nil
}

// Complete builds the full chain from source-screen pixels to
// target-logical pixels: ScreenToScreen(source, target), then
// ScreenToLogical(target).
//
// Closed form per axis:
//
//	x_out = (x_in·α_x − b_x,target) / σ_target
//
// The inverse recovers the original source-screen point within floating
// tolerance for any finite input.
//
// Errors: coord.ErrInvalidConfiguration from either configuration.
func Complete(source, target coord.DisplayConfiguration) (Transformation, error) {
	across, err := ScreenToScreen(source, target)
	if err != nil {
		return nil, constructorErrorf("Complete", err)
	}
	toLogical, err := ScreenToLogical(target)
	if err != nil {
		return nil, constructorErrorf("Complete", err)
	}

	return Compose(across, toLogical), nil
}
