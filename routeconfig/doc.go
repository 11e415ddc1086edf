// Package routeconfig centralizes every tunable knob the router packages
// need behind one functional-options type, RouterOptions, the same way the
// teacher centralizes Dijkstra's and core.Graph's tunables behind
// dijkstra.Option and core.GraphOption respectively.
//
// Without this package the numeric knobs spec.md scatters across §4
// (ε_geom, bend_offset), §4.5 (shove depth), §4.8 (router retries), and
// §6 (wrap_around_bands, squeeze_under_bands) would each need their own
// ad-hoc plumbing. RouterOptions gives them one documented, defaulted,
// validated home.
package routeconfig

import "errors"

// Sentinel errors returned by RouterOptions validation.
var (
	// ErrNegativeValue indicates a numeric option was set to a negative
	// value where only non-negative values are meaningful.
	ErrNegativeValue = errors.New("routeconfig: option value must be non-negative")
	// ErrZeroValue indicates a numeric option was set to zero where a
	// strictly positive value is required.
	ErrZeroValue = errors.New("routeconfig: option value must be positive")
)
