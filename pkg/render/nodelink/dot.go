package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels agencies with their full name and companies with their
	// count. When false, agencies show their abbreviation and companies
	// their name.
	Detailed bool
	// Theme colours the edges. The zero value uses the default theme.
	Theme theme.Theme
}

// ToDOT converts a layout to Graphviz DOT format. Agencies form the left
// rank in declaration order and companies the right rank, most investigated
// first. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
func ToDOT(l layout.Layout, opts Options) string {
	t := opts.Theme
	if len(t.Palette) == 0 {
		t, _ = theme.Get(theme.Default)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", t.Background)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=2.0;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if l.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=20;\n", l.Title)
	}
	buf.WriteString("\n")

	buf.WriteString("  { rank=same;\n")
	for _, n := range l.Agencies {
		fmt.Fprintf(&buf, "    %q [label=%q];\n", n.Name, agencyLabel(n, opts.Detailed))
	}
	buf.WriteString("  }\n")

	buf.WriteString("  { rank=same;\n")
	for _, name := range l.Ranking {
		n, ok := l.Node(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "    %q [label=%q, fillcolor=%q];\n", n.Name, companyLabel(n, opts.Detailed), "#F0F8FF")
	}
	buf.WriteString("  }\n\n")

	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=%s];\n",
			e.Agency, e.Company, t.EdgeColor(e.Color), strconv.FormatFloat(t.EdgeWidth, 'f', -1, 64))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func agencyLabel(n layout.Node, detailed bool) string {
	if detailed || n.Label.Text == "" {
		return n.Name
	}
	return n.Label.Text
}

func companyLabel(n layout.Node, detailed bool) string {
	if !detailed {
		return n.Name
	}
	return strings.Join([]string{n.Name, n.Label.Text}, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// The viewBox is rewritten to start at the origin so the SVG scales cleanly.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
