package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/observability"
)

// SourceBuiltin names the built-in dataset in logs and hooks.
const SourceBuiltin = "builtin"

// Load returns the dataset selected by opts: the preloaded dataset, the file
// at opts.Source, or the built-in dataset. The result is validated and safe
// to modify.
func Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	source := opts.Source
	if opts.Dataset != nil {
		source = "preloaded"
	} else if source == "" {
		source = SourceBuiltin
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	ds, err := load(opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, source, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, source, len(ds.Agencies), len(ds.Companies), time.Since(start), nil)
	return ds, nil
}

func load(opts Options) (*dataset.Dataset, error) {
	switch {
	case opts.Dataset != nil:
		ds := opts.Dataset.Clone()
		if err := ds.Validate(); err != nil {
			return nil, err
		}
		return ds, nil
	case opts.Source == "":
		return dataset.Default(), nil
	default:
		ds, err := dataset.Load(opts.Source)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", opts.Source, err)
		}
		return ds, nil
	}
}
