package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/probemap/pkg/layout"
)

// RenderSVG draws the layout as an SVG document.
func RenderSVG(l layout.Layout, opts ...Option) []byte {
	c := newConfig(opts...)
	s := buildScene(l, c)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)

	family := renderFontDefs(&buf, c)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.theme.Background)

	buf.WriteString(`  <g id="edges" fill="none" stroke-linecap="round" stroke-linejoin="round">` + "\n")
	width := pointsToPixels(c.theme.EdgeWidth, c.width)
	for _, e := range s.edges {
		renderEdge(&buf, e, width, c.theme.EdgeOpacity, c.theme.Smooth)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g id="images">` + "\n")
	for _, p := range s.images {
		fmt.Fprintf(&buf, `    <image id="img-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" preserveAspectRatio="none" href="%s"/>`+"\n",
			escapeXML(p.Name), p.X, p.Y, p.W, p.H, p.Image.DataURI())
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g id="labels" font-family="%s" fill="%s">`+"\n", escapeXML(family), c.theme.Text)
	for _, t := range s.texts {
		renderText(&buf, t)
	}
	renderText(&buf, s.title)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderFontDefs embeds a resolved font and returns the font-family to use.
// The bundled fallback is not embedded; viewers substitute their own
// sans-serif.
func renderFontDefs(buf *bytes.Buffer, c config) string {
	if c.font.Fallback {
		return "sans-serif"
	}
	fmt.Fprintf(buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
		escapeXML(c.font.Family), c.font.Base64())
	return c.font.CSSFamily()
}

func renderEdge(buf *bytes.Buffer, e stroke, width, opacity float64, smooth bool) {
	p := e.Points
	var d string
	if smooth {
		d = fmt.Sprintf("M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f", p[0].X, p[0].Y, e.Control.X, e.Control.Y, p[2].X, p[2].Y)
	} else {
		d = fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f", p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
	}
	fmt.Fprintf(buf, `    <path class="edge" data-agency="%s" data-company="%s" d="%s" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"/>`+"\n",
		escapeXML(e.Agency), escapeXML(e.Company), d, e.Color, width, opacity)
}

func renderText(buf *bytes.Buffer, t text) {
	if t.Text == "" {
		return
	}
	weight := ""
	if t.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="%s"%s>%s</text>`+"\n",
		t.X, t.Y, t.Size, t.Anchor, weight, escapeXML(t.Text))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
