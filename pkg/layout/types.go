package layout

import "github.com/matzehuels/probemap/pkg/aggregate"

// Kind distinguishes the two node columns.
type Kind string

const (
	KindAgency  Kind = "agency"
	KindCompany Kind = "company"
)

// Anchor is the horizontal alignment of a text label relative to its point.
type Anchor string

const (
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Image geometry in data units, plus the pixel size images are resampled to
// before drawing. Heights scale with a per-column multiplier.
const (
	baseHalfHeight = 0.3
	imagePixelW    = 150
	imagePixelH    = 225

	agencyHalfWidth   = 0.075
	agencyHeightMult  = 2.5
	companyHalfWidth  = 0.15
	companyHeightMult = 3.0

	agencyLabelOffset  = 0.25
	companyLabelOffset = 1.5
)

// Point is a position in data units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box in data units.
type Rect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Size is a pixel size.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Label is a positioned piece of text.
type Label struct {
	Text   string `json:"text"`
	At     Point  `json:"at"`
	Anchor Anchor `json:"anchor"`
}

// Node is a placed agency or company.
type Node struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Pos    Point  `json:"pos"`
	Image  string `json:"image,omitempty"`
	Extent Rect   `json:"extent"`
	Pixels Size   `json:"pixels"`
	Label  Label  `json:"label"`
	Count  int    `json:"count,omitempty"`
}

// Curve is the three-point path of one edge.
type Curve struct {
	Start Point `json:"start"`
	Mid   Point `json:"mid"`
	End   Point `json:"end"`
}

// Points returns the path in drawing order.
func (c Curve) Points() [3]Point { return [3]Point{c.Start, c.Mid, c.End} }

// Control returns the control point of the quadratic Bézier that passes
// through Mid at t = 0.5.
func (c Curve) Control() Point {
	return Point{
		X: 2*c.Mid.X - (c.Start.X+c.End.X)/2,
		Y: 2*c.Mid.Y - (c.Start.Y+c.End.Y)/2,
	}
}

// Edge is a routed agency → company relation.
type Edge struct {
	Agency  string  `json:"agency"`
	Company string  `json:"company"`
	Color   int     `json:"color"` // agency index, mapped onto a palette by the renderer
	Drop    float64 `json:"drop"`  // fan offset applied to the midpoint
	Curve   Curve   `json:"curve"`
}

// Fan accumulates the midpoint drop per company while edges are routed.
type Fan map[string]float64

// Layout is the computed diagram geometry.
type Layout struct {
	Title     string           `json:"title"`
	Agencies  []Node           `json:"agencies"`  // declaration order
	Companies []Node           `json:"companies"` // bottom to top
	Ranking   []string         `json:"ranking"`   // most investigated first
	Edges     []Edge           `json:"edges"`
	Counts    aggregate.Counts `json:"counts"`
	Fan       Fan              `json:"fan"`
	Bounds    Rect             `json:"bounds"`
	Spacing   float64          `json:"spacing"`
}

// Node looks up a placed node by name.
func (l Layout) Node(name string) (Node, bool) {
	for _, n := range l.Agencies {
		if n.Name == name {
			return n, true
		}
	}
	for _, n := range l.Companies {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Position returns the position of a named node.
func (l Layout) Position(name string) (Point, bool) {
	n, ok := l.Node(name)
	return n.Pos, ok
}

// AgencySpan returns the lowest and highest agency y.
func (l Layout) AgencySpan() (lo, hi float64) {
	if len(l.Agencies) == 0 {
		return 0, 0
	}
	return l.Agencies[len(l.Agencies)-1].Pos.Y, l.Agencies[0].Pos.Y
}
