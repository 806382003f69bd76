// Package pipeline provides the load → layout → render pipeline for probemap.
//
// Every entry point (the render, layout and show commands, and library
// users) goes through this package, so defaults, validation and caching
// behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a dataset file, or take the built-in dataset
//  2. Layout: aggregate counts and compute node and edge geometry
//  3. Render: load images and the font, then draw each requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "relations.toml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Values in the dataset's [layout] and [style] sections fill any option the
// caller left at its zero value; explicit options win.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/cache"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/errors"
	"github.com/matzehuels/probemap/pkg/fonts"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/sink"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library users
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels (14 in at 100 dpi).
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultTheme is the default colour scheme.
	DefaultTheme = theme.Default

	// DefaultFont is used when neither options nor dataset name a font.
	DefaultFont = fonts.DefaultFont

	// MaxCanvas bounds width and height.
	MaxCanvas = 10000.0
)

// Format constants for output formats.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatGraph = "graph" // node-link SVG drawn by Graphviz
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatGraph: true,
}

// FormatNames lists the supported formats in a stable order.
var FormatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatGraph}

// Extension returns the file extension for a format.
func Extension(format string) string {
	if format == FormatGraph {
		return "graph.svg"
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Source string `json:"source,omitempty"` // dataset file; empty selects the built-in dataset

	// Layout options
	Spacing float64 `json:"spacing,omitempty"`
	LeftX   float64 `json:"left_x,omitempty"`
	RightX  float64 `json:"right_x,omitempty"`
	FanStep float64 `json:"fan_step,omitempty"`
	Title   string  `json:"title,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	Font     string   `json:"font,omitempty"`
	AssetDir string   `json:"asset_dir,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"` // ignore cached artifacts

	// Runtime options (not serialized)
	Dataset *dataset.Dataset `json:"-"` // preloaded dataset; takes precedence over Source
	Logger  *log.Logger      `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded input.
	Dataset *dataset.Dataset

	// Counts is the aggregate per company.
	Counts aggregate.Counts

	// Layout is the computed geometry.
	Layout layout.Layout

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Images are the node images that were found.
	Images assets.Set

	// Font is the resolved text font.
	Font *fonts.Font

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Agencies   int
	Companies  int
	Edges      int
	Images     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme exists.
func ValidateTheme(name string) error {
	_, err := theme.Get(name)
	return err
}

// ValidateCanvas checks the canvas size.
func ValidateCanvas(w, h float64) error {
	if w < 0 || h < 0 || w > MaxCanvas || h > MaxCanvas {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size %.0fx%.0f out of range (0, %.0f]", w, h, MaxCanvas)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets defaults needed before layout.
func (o *Options) SetLayoutDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "spacing must not be negative")
	}
	if o.FanStep < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "fan step must not be negative")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering. Theme and font stay
// empty here so a dataset's [style] section can still fill them; see
// [Options.ApplyDataset].
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	if o.Theme != "" {
		return ValidateTheme(o.Theme)
	}
	return nil
}

// ApplyDataset fills unset options from the dataset's layout and style
// sections, then applies the remaining defaults.
func (o *Options) ApplyDataset(ds *dataset.Dataset) error {
	setIfZero(&o.Spacing, ds.Layout.Spacing)
	setIfZero(&o.LeftX, ds.Layout.LeftX)
	setIfZero(&o.RightX, ds.Layout.RightX)
	setIfZero(&o.FanStep, ds.Layout.FanStep)
	setIfZero(&o.Theme, ds.Style.Theme)
	setIfZero(&o.Font, ds.Style.Font)

	setIfZero(&o.Theme, DefaultTheme)
	setIfZero(&o.Font, DefaultFont)
	return ValidateTheme(o.Theme)
}

func setIfZero[T comparable](dst *T, v T) {
	var zero T
	if *dst == zero {
		*dst = v
	}
}

// LayoutOptions converts the layout fields into layout engine options.
func (o *Options) LayoutOptions() []layout.Option {
	return layout.FromConfig(dataset.LayoutConfig{
		Spacing: o.Spacing,
		LeftX:   o.LeftX,
		RightX:  o.RightX,
		FanStep: o.FanStep,
	})
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format, assetHash string, font *fonts.Font) cache.ArtifactKeyOpts {
	fontID := o.Font
	if font != nil {
		fontID = font.Path
		if font.Fallback {
			fontID = "fallback"
		}
	}
	return cache.ArtifactKeyOpts{
		Format:    format,
		Theme:     o.Theme,
		Font:      fontID,
		AssetDir:  o.AssetDir,
		Width:     o.Width,
		Height:    o.Height,
		AssetHash: assetHash,
	}
}
