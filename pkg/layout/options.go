package layout

import "github.com/matzehuels/probemap/pkg/dataset"

// Defaults for a layout built without options.
const (
	DefaultSpacing      = 2.0
	DefaultLeftX        = -1.0
	DefaultRightX       = 1.0
	DefaultFanStep      = 0.3
	DefaultAgencyAnchor = 0.1
)

// DefaultNudges maps logo classes to how far left of the logo centre an
// incoming edge ends.
var DefaultNudges = map[dataset.LogoClass]float64{
	dataset.LogoNarrow: 0.1,
	dataset.LogoMedium: 0.15,
	dataset.LogoWide:   0.2,
}

// Options controls the layout geometry.
type Options struct {
	Spacing      float64 // vertical distance between agency rows
	LeftX        float64 // agency column x
	RightX       float64 // company column x
	FanStep      float64 // midpoint drop per edge already routed to a company
	AgencyAnchor float64 // edge start offset right of the agency centre
	Nudges       map[dataset.LogoClass]float64
}

// Option configures a layout build.
type Option func(*Options)

// WithSpacing sets the vertical distance between agency rows.
func WithSpacing(s float64) Option { return func(o *Options) { o.Spacing = s } }

// WithColumns sets the x coordinates of the agency and company columns.
func WithColumns(left, right float64) Option {
	return func(o *Options) { o.LeftX, o.RightX = left, right }
}

// WithFanStep sets the per-edge midpoint drop.
func WithFanStep(step float64) Option { return func(o *Options) { o.FanStep = step } }

// WithAgencyAnchor sets how far right of the agency centre edges start.
func WithAgencyAnchor(dx float64) Option { return func(o *Options) { o.AgencyAnchor = dx } }

// WithNudges overrides the per-logo-class edge nudges. Classes missing from
// n keep their default.
func WithNudges(n map[dataset.LogoClass]float64) Option {
	return func(o *Options) {
		for k, v := range n {
			o.Nudges[k] = v
		}
	}
}

// FromConfig turns the non-zero fields of a dataset's layout section into
// options.
func FromConfig(c dataset.LayoutConfig) []Option {
	var opts []Option
	if c.Spacing > 0 {
		opts = append(opts, WithSpacing(c.Spacing))
	}
	if c.LeftX != 0 || c.RightX != 0 {
		left, right := DefaultLeftX, DefaultRightX
		if c.LeftX != 0 {
			left = c.LeftX
		}
		if c.RightX != 0 {
			right = c.RightX
		}
		opts = append(opts, WithColumns(left, right))
	}
	if c.FanStep > 0 {
		opts = append(opts, WithFanStep(c.FanStep))
	}
	return opts
}

func newOptions(opts ...Option) Options {
	o := Options{
		Spacing:      DefaultSpacing,
		LeftX:        DefaultLeftX,
		RightX:       DefaultRightX,
		FanStep:      DefaultFanStep,
		AgencyAnchor: DefaultAgencyAnchor,
		Nudges:       make(map[dataset.LogoClass]float64, len(DefaultNudges)),
	}
	for k, v := range DefaultNudges {
		o.Nudges[k] = v
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) nudge(c dataset.LogoClass) float64 {
	if n, ok := o.Nudges[c]; ok {
		return n
	}
	return o.Nudges[dataset.LogoNarrow]
}
