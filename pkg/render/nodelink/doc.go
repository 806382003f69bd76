// Package nodelink renders the agency → company relations as a plain
// Graphviz graph.
//
// # Overview
//
// The main diagram places nodes by hand. This package instead hands the same
// relations to Graphviz, which is useful for checking a dataset at a glance
// or for feeding the DOT source into other Graphviz tooling.
//
// # Usage
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Agencies form one rank and companies another (rankdir=LR). Edges keep the
// palette colour of their agency.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
