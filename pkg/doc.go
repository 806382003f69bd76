// Package pkg provides the libraries behind probemap.
//
// # Overview
//
// probemap draws which government agencies investigate which companies: a
// column of agency seals on the left, a column of company logos on the
// right, and one curved edge per relation. The pkg directory is organized
// into four areas:
//
//  1. Domain: [dataset], [aggregate] and [layout] hold the input model, the
//     per-company counts and the two-column geometry
//  2. Resources: [assets] and [fonts] load images and fonts from disk
//  3. Rendering: [render/sink], [render/nodelink] and [render/theme]
//  4. Orchestration: [pipeline], backed by [cache] and [observability]
//
// # Architecture
//
//	dataset file (TOML/YAML/JSON) or dataset.Default()
//	         ↓
//	    [aggregate] package (count relations per company)
//	         ↓
//	    [layout] package (positions, extents, labels, edge curves)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
//	ds := dataset.Default()
//	l, err := layout.Build(ds, aggregate.Count(ds))
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l, sink.WithTitle("Investigations"))
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/dataset
// [aggregate]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/aggregate
// [layout]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/layout
// [assets]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/assets
// [fonts]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/fonts
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/render/nodelink
// [render/theme]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/render/theme
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/probemap/pkg/observability
package pkg
