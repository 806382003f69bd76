package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/cache"
	"github.com/matzehuels/probemap/pkg/errors"
	"github.com/matzehuels/probemap/pkg/fonts"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result, err := r.prepare(ctx, &opts)
	if err != nil {
		return nil, err
	}
	l := result.Layout

	// Stage 3: Render
	renderStart := time.Now()
	images, font, err := r.Resources(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	result.Images = images
	result.Font = font
	result.Stats.Images = len(images)

	artifacts, hash, renderHit, err := r.renderWithHash(ctx, l, images, font, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.LayoutHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare loads the dataset and computes its layout without rendering.
// The returned Result has no artifacts, images or font.
func (r *Runner) Prepare(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	return r.prepare(ctx, &opts)
}

// prepare runs the load and layout stages. It applies the dataset's layout
// and style sections to opts.
func (r *Runner) prepare(ctx context.Context, opts *Options) (*Result, error) {
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	ds, err := Load(ctx, *opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err := opts.ApplyDataset(ds); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Agencies = len(ds.Agencies)
	result.Stats.Companies = len(ds.Companies)

	r.Logger.Info("loaded dataset",
		"agencies", len(ds.Agencies),
		"companies", len(ds.Companies),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := GenerateLayout(ctx, ds, *opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Counts = l.Counts
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Edges = len(l.Edges)

	r.Logger.Info("computed layout",
		"edges", len(l.Edges),
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// Resources loads the images and font a layout needs. Missing images are
// left out and a missing font falls back, so the only errors are hard I/O
// failures and cancellation.
func (r *Runner) Resources(ctx context.Context, l layout.Layout, opts Options) (assets.Set, *fonts.Font, error) {
	images, err := assets.NewLoader(opts.AssetDir, r.Cache).LoadLayout(ctx, l)
	if err != nil {
		return nil, nil, err
	}

	var dirs []string
	if opts.AssetDir != "" {
		dirs = append(dirs, opts.AssetDir)
	}
	font := fonts.Resolve(ctx, opts.Font, dirs...)

	r.Logger.Debug("loaded resources",
		"images", len(images),
		"font", font.Family,
		"fallback", font.Fallback)
	return images, font, nil
}

func (r *Runner) renderWithHash(ctx context.Context, l layout.Layout, images assets.Set, font *fonts.Font, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)
	assetHash := images.Fingerprint()

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, assetHash, font))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, layoutHash, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := Render(ctx, l, images, font, opts)
	if err != nil {
		return nil, "", false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, assetHash, font))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Debug("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, layoutHash, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
