package sink

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// RenderPNG draws the layout as a PNG image. Unlike the PDF sink it needs no
// external tools.
func RenderPNG(l layout.Layout, opts ...Option) ([]byte, error) {
	c := newConfig(opts...)
	s := buildScene(l, c)

	dc := gg.NewContext(int(s.width), int(s.height))
	dc.SetColor(theme.RGBAOrBlack(c.theme.Background))
	dc.Clear()

	dc.SetLineWidth(pointsToPixels(c.theme.EdgeWidth, c.width))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, e := range s.edges {
		col := theme.RGBAOrBlack(e.Color)
		dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(c.theme.EdgeOpacity*255))
		p := e.Points
		dc.MoveTo(p[0].X, p[0].Y)
		if c.theme.Smooth {
			dc.QuadraticTo(e.Control.X, e.Control.Y, p[2].X, p[2].Y)
		} else {
			dc.LineTo(p[1].X, p[1].Y)
			dc.LineTo(p[2].X, p[2].Y)
		}
		dc.Stroke()
	}

	for _, p := range s.images {
		drawPicture(dc, p)
	}

	dc.SetColor(theme.RGBAOrBlack(c.theme.Text))
	for _, t := range append(s.texts, s.title) {
		if t.Text == "" {
			continue
		}
		if t.Bold {
			dc.SetFontFace(c.font.BoldFace(t.Size))
		} else {
			dc.SetFontFace(c.font.Face(t.Size))
		}
		// Text y is the baseline, as in the SVG sink.
		dc.DrawStringAnchored(t.Text, t.X, t.Y, anchorX(t.Anchor), 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPicture stretches the image onto its rectangle.
func drawPicture(dc *gg.Context, p picture) {
	b := p.Image.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || p.W <= 0 || p.H <= 0 {
		return
	}
	dc.Push()
	dc.Translate(p.X, p.Y)
	dc.Scale(p.W/float64(b.Dx()), p.H/float64(b.Dy()))
	dc.DrawImage(p.Image.Image, 0, 0)
	dc.Pop()
}

func anchorX(a layout.Anchor) float64 {
	switch a {
	case layout.AnchorEnd:
		return 1
	case layout.AnchorMiddle:
		return 0.5
	default:
		return 0
	}
}
