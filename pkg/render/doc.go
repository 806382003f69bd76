// Package render turns a computed layout into output files.
//
// # Overview
//
// The diagram itself is drawn by the [sink] subpackage, which writes SVG,
// native PNG, PDF and a JSON dump of the layout. Colours and stroke settings
// come from [theme]. The [nodelink] subpackage offers a second, plain view
// of the same relations as a Graphviz graph.
//
// # Format Conversion
//
// [ToPDF] converts an SVG with the external rsvg-convert tool (from
// librsvg). PNG output is drawn natively by the sink and needs no tool.
//
//	svg := sink.RenderSVG(l, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/probemap/pkg/render/sink
// [theme]: github.com/matzehuels/probemap/pkg/render/theme
// [nodelink]: github.com/matzehuels/probemap/pkg/render/nodelink
package render
