package sink

import (
	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/fonts"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// Canvas defaults: a 14 × 14 inch figure at 100 dpi.
const (
	DefaultWidth  = 1400.0
	DefaultHeight = 1400.0
	DPI           = 100.0
)

// Text sizes in points.
const (
	TitleSize   = 18.0
	CaptionSize = 12.0
	LabelSize   = 12.0
)

// Option configures the drawing sinks.
type Option func(*config)

type config struct {
	theme  theme.Theme
	font   *fonts.Font
	images assets.Set
	width  float64
	height float64
	title  string
}

// WithTheme sets the colour scheme.
func WithTheme(t theme.Theme) Option { return func(c *config) { c.theme = t } }

// WithFont sets the text font.
func WithFont(f *fonts.Font) Option { return func(c *config) { c.font = f } }

// WithImages supplies the loaded node images. Nodes without an entry are
// drawn without an image.
func WithImages(s assets.Set) Option { return func(c *config) { c.images = s } }

// WithSize sets the canvas size in pixels. Non-positive values keep the
// default.
func WithSize(w, h float64) Option {
	return func(c *config) {
		if w > 0 {
			c.width = w
		}
		if h > 0 {
			c.height = h
		}
	}
}

// WithTitle overrides the layout's title.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

func newConfig(opts ...Option) config {
	def, _ := theme.Get(theme.Default)
	c := config{theme: def, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&c)
	}
	if c.font == nil {
		c.font = fonts.Fallback("")
	}
	return c
}
