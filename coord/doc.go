// Package coord defines the plain value types shared by every coordspace
// component: Point, Dimensions and DisplayConfiguration.
//
// All types are immutable values with no identity beyond their fields.
// They are passed by copy, compared structurally, and never own one
// another: a transformation built from a DisplayConfiguration captures the
// scalars it needs and is immune to later mutation of the configuration.
//
// Validation is construction-time and fail-fast: DisplayConfiguration
// rejects zero/negative dimensions and DPI scaling via
// ErrInvalidConfiguration, so downstream divisions can never produce
// NaN/Inf at runtime.
package coord
