package autorouter

// RatlineID identifies one entry in the slice of ratlines passed to Run,
// by its position in that slice.
type RatlineID int

// Report summarizes one Run: which ratlines were successfully routed and
// which were left undone (obstructed beyond the configured shove/replan
// budget, or with no geometric path at all), per spec.md §4.9.
type Report struct {
	Done   []RatlineID
	Undone []RatlineID
}
