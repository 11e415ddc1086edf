// Package autorouter implements the Autorouter (component C9 of the
// topola design): it accepts an unordered batch of ratlines, optionally
// presorts their visiting order to shorten the total detour, and routes
// them one at a time via router.Route, rolling back only the ratline
// that failed rather than the whole batch.
package autorouter

import "errors"

// ErrEmptyRatlines indicates Run was called with no ratlines to route.
var ErrEmptyRatlines = errors.New("autorouter: no ratlines given")
