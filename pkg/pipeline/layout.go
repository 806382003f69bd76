package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/observability"
)

// GenerateLayout aggregates counts for ds and computes its layout. A title
// in opts replaces the dataset's.
func GenerateLayout(ctx context.Context, ds *dataset.Dataset, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(ds.Agencies), len(ds.Companies))
	start := time.Now()

	counts := aggregate.Count(ds)
	l, err := layout.Build(ds, counts, opts.LayoutOptions()...)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		return layout.Layout{}, err
	}
	if opts.Title != "" {
		l.Title = opts.Title
	}

	hooks.OnLayoutComplete(ctx, len(l.Edges), time.Since(start), nil)
	return l, nil
}
