package sink

import (
	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/layout"
)

// scene is a layout projected onto the canvas, in drawing order.
type scene struct {
	width, height float64
	title         text
	edges         []stroke
	images        []picture
	texts         []text
}

type point struct{ X, Y float64 }

type stroke struct {
	Agency, Company string
	Color           string
	Points          [3]point
	Control         point
}

type picture struct {
	Name       string
	X, Y, W, H float64
	Image      *assets.Image
}

type text struct {
	Text   string
	X, Y   float64
	Size   float64 // pixels
	Anchor layout.Anchor
	Bold   bool
}

// viewport maps data units onto the canvas. Canvas y grows downwards.
type viewport struct {
	bounds layout.Rect
	w, h   float64
}

func (v viewport) pt(p layout.Point) point {
	return point{X: v.x(p.X), Y: v.y(p.Y)}
}

func (v viewport) x(x float64) float64 {
	if v.bounds.Width() == 0 {
		return v.w / 2
	}
	return (x - v.bounds.Left) / v.bounds.Width() * v.w
}

func (v viewport) y(y float64) float64 {
	if v.bounds.Height() == 0 {
		return v.h / 2
	}
	return (v.bounds.Top - y) / v.bounds.Height() * v.h
}

// pointsToPixels converts a font size, scaling with the canvas width.
func pointsToPixels(pt, width float64) float64 {
	return pt * DPI / 72 * width / DefaultWidth
}

func buildScene(l layout.Layout, c config) scene {
	v := viewport{bounds: l.Bounds, w: c.width, h: c.height}
	s := scene{width: c.width, height: c.height}

	for _, e := range l.Edges {
		pts := e.Curve.Points()
		s.edges = append(s.edges, stroke{
			Agency:  e.Agency,
			Company: e.Company,
			Color:   c.theme.EdgeColor(e.Color),
			Points:  [3]point{v.pt(pts[0]), v.pt(pts[1]), v.pt(pts[2])},
			Control: v.pt(e.Curve.Control()),
		})
	}

	for _, nodes := range [][]layout.Node{l.Agencies, l.Companies} {
		for _, n := range nodes {
			img := c.images.Get(n.Name)
			if img == nil {
				continue
			}
			left, top := v.x(n.Extent.Left), v.y(n.Extent.Top)
			s.images = append(s.images, picture{
				Name:  n.Name,
				X:     left,
				Y:     top,
				W:     v.x(n.Extent.Right) - left,
				H:     v.y(n.Extent.Bottom) - top,
				Image: img,
			})
		}
	}

	caption := pointsToPixels(CaptionSize, c.width)
	for _, n := range l.Companies {
		s.texts = append(s.texts, label(v, n.Label, caption))
	}
	abbrev := pointsToPixels(LabelSize, c.width)
	for _, n := range l.Agencies {
		s.texts = append(s.texts, label(v, n.Label, abbrev))
	}

	title := l.Title
	if c.title != "" {
		title = c.title
	}
	size := pointsToPixels(TitleSize, c.width)
	s.title = text{
		Text:   title,
		X:      c.width / 2,
		Y:      size * 2,
		Size:   size,
		Anchor: layout.AnchorMiddle,
		Bold:   true,
	}
	return s
}

func label(v viewport, l layout.Label, size float64) text {
	return text{
		Text:   l.Text,
		X:      v.x(l.At.X),
		Y:      v.y(l.At.Y),
		Size:   size,
		Anchor: l.Anchor,
		Bold:   true,
	}
}
