package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/fonts"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/observability"
	"github.com/matzehuels/probemap/pkg/render/nodelink"
	"github.com/matzehuels/probemap/pkg/render/sink"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// Render generates output artifacts in the requested formats. images may be
// nil; font may be nil to use the bundled fallback.
func Render(ctx context.Context, l layout.Layout, images assets.Set, font *fonts.Font, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	t, err := theme.Get(opts.Theme)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, l, t, images, font, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, l layout.Layout, t theme.Theme, images assets.Set, font *fonts.Font, opts Options) (map[string][]byte, error) {
	drawOpts := []sink.Option{
		sink.WithTheme(t),
		sink.WithImages(images),
		sink.WithSize(opts.Width, opts.Height),
	}
	if font != nil {
		drawOpts = append(drawOpts, sink.WithFont(font))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, drawOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, drawOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, drawOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONTheme(t))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l, nodelink.Options{Theme: t}))
		case FormatGraph:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(l, nodelink.Options{Theme: t, Detailed: true}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
