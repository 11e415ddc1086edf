package routeconfig

// RouterOptions configures the autorouter's behavior end to end: geometric
// tolerance, bend stacking, shove depth, router retry budget, and the
// squeeze/wrap policy knobs named in spec.md §6's command-stream table.
//
// Two spellings of the squeeze option appear in on-disk command files
// (squeeze_under_bands and squeeze_through_under_bands) per spec.md's
// open question; this package resolves that by treating
// SqueezeUnderBands as the one canonical field and accepting both JSON
// spellings as aliases at the cmdstream boundary (see cmdstream's
// decode.go), rather than carrying two fields here that could disagree.
type RouterOptions struct {
	// GeomEpsilon is the small margin the Shover adds to each displacement
	// and to its neighborhood query boxes. geom's own coincidence
	// tolerance is geom.Epsilon, which this field does not change.
	// Default 1e-6.
	GeomEpsilon float64

	// BendOffset is the per-wrap radial increment (spec.md §4.4's
	// "width+clearance" stacking amount) added to a core dot's bend
	// radius for each additional bend sharing that core on a layer.
	BendOffset float64

	// RoutedBandWidth is the copper width used for segs the router draws
	// when a ratline does not name a narrower net-specific width.
	RoutedBandWidth float64

	// MaxShoveDepth bounds the Shover's recursive worklist (spec.md
	// §4.5 step 4: "Depth is bounded; exceeding it aborts the shove").
	MaxShoveDepth int

	// MaxReplans bounds how many times the Router may re-invoke the path
	// finder after a funnel step fails and cannot be shoved through
	// (spec.md §4.8 step 2: "bounded retries").
	MaxReplans int

	// WrapAroundBands enables the Shover routing the new band around an
	// obstacle bend's core instead of displacing it (spec.md §4.5 step 5).
	WrapAroundBands bool

	// SqueezeUnderBands enables shoving a bend further out (or under
	// another bend) instead of refusing the extend (spec.md §4.5 step 3).
	SqueezeUnderBands bool

	// PresortByPairwiseDetours enables the autorouter's pairwise-detour
	// presort pass before routing ratlines (spec.md §4.9 step 1).
	PresortByPairwiseDetours bool
}

// Option mutates a RouterOptions being built. Mirrors core.GraphOption and
// dijkstra.Option's functional-options shape.
type Option func(*RouterOptions)

// Default returns a RouterOptions populated with the reference defaults:
// GeomEpsilon=1e-6, BendOffset=0.2, RoutedBandWidth=0.2, MaxShoveDepth=32,
// MaxReplans=8, and every boolean knob false.
func Default() RouterOptions {
	return RouterOptions{
		GeomEpsilon:     1e-6,
		BendOffset:      0.2,
		RoutedBandWidth: 0.2,
		MaxShoveDepth:   32,
		MaxReplans:      8,
	}
}

// New builds a RouterOptions from Default() with opts applied in order.
func New(opts ...Option) RouterOptions {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithGeomEpsilon overrides the geometric tolerance. Panics via a returned
// validation error path is avoided here (functional options in this
// package never panic, unlike the teacher's WithMaxDistance); Validate
// must be called explicitly once all options are applied.
func WithGeomEpsilon(eps float64) Option {
	return func(o *RouterOptions) { o.GeomEpsilon = eps }
}

// WithBendOffset overrides the bend-stacking increment.
func WithBendOffset(v float64) Option {
	return func(o *RouterOptions) { o.BendOffset = v }
}

// WithRoutedBandWidth overrides the default routed copper width.
func WithRoutedBandWidth(v float64) Option {
	return func(o *RouterOptions) { o.RoutedBandWidth = v }
}

// WithMaxShoveDepth overrides the shove recursion depth cap.
func WithMaxShoveDepth(n int) Option {
	return func(o *RouterOptions) { o.MaxShoveDepth = n }
}

// WithMaxReplans overrides the router's replan retry budget.
func WithMaxReplans(n int) Option {
	return func(o *RouterOptions) { o.MaxReplans = n }
}

// WithWrapAroundBands enables wrap_around_bands.
func WithWrapAroundBands() Option {
	return func(o *RouterOptions) { o.WrapAroundBands = true }
}

// WithSqueezeUnderBands enables squeeze_under_bands (or its
// squeeze_through_under_bands alias).
func WithSqueezeUnderBands() Option {
	return func(o *RouterOptions) { o.SqueezeUnderBands = true }
}

// WithPresortByPairwiseDetours enables the autorouter's presort pass.
func WithPresortByPairwiseDetours() Option {
	return func(o *RouterOptions) { o.PresortByPairwiseDetours = true }
}

// Validate reports the first invalid field found, or nil. Call after
// constructing via New to reject a malformed on-disk command stream
// before it ever reaches the autorouter.
func (o RouterOptions) Validate() error {
	if o.GeomEpsilon <= 0 {
		return ErrZeroValue
	}
	if o.BendOffset < 0 {
		return ErrNegativeValue
	}
	if o.RoutedBandWidth <= 0 {
		return ErrZeroValue
	}
	if o.MaxShoveDepth <= 0 {
		return ErrZeroValue
	}
	if o.MaxReplans <= 0 {
		return ErrZeroValue
	}
	return nil
}
