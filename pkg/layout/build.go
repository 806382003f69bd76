package layout

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/errors"
)

// Plot window padding around the columns, in data units.
const (
	boundsPadX      = 0.5
	boundsPadBottom = 4.0
	boundsTop       = 3.0
)

// Build computes the diagram layout for ds. counts is usually
// [aggregate.Count] of ds; passing it in lets callers lay out hypothetical
// counts. Build is deterministic: equal inputs give equal layouts.
//
// A relation that names an undeclared agency or company yields an
// [errors.ErrCodeUnknownEntity] error. A dataset without agencies, or with a
// name in both columns, yields [errors.ErrCodeInvalidDataset].
func Build(ds *dataset.Dataset, counts aggregate.Counts, opts ...Option) (Layout, error) {
	o := newOptions(opts...)

	if err := checkColumns(ds); err != nil {
		return Layout{}, err
	}
	if err := checkRelations(ds); err != nil {
		return Layout{}, err
	}

	l := Layout{
		Title:   ds.TitleOrDefault(),
		Counts:  counts,
		Spacing: o.Spacing,
	}

	l.Agencies = placeAgencies(ds.Agencies, o)
	l.Ranking = aggregate.Rank(ds.CompanyNames(), counts)
	l.Companies = placeCompanies(ds, l.Ranking, counts, len(ds.Agencies), o)

	l.Edges, l.Fan = routeEdges(ds, l, o, make(Fan, len(ds.Companies)))
	l.Bounds = Rect{
		Left:   o.LeftX - boundsPadX,
		Right:  o.RightX + boundsPadX,
		Bottom: -float64(len(ds.Agencies))*o.Spacing - boundsPadBottom,
		Top:    boundsTop,
	}
	return l, nil
}

// checkColumns rejects inputs the column placement cannot represent: company
// positions are spread over the agency span, and nodes are looked up by name.
func checkColumns(ds *dataset.Dataset) error {
	if len(ds.Agencies) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "no agencies to lay out")
	}
	agencies := ds.AgencyNames()
	for _, c := range ds.Companies {
		if slices.Contains(agencies, c.Name) {
			return errors.New(errors.ErrCodeInvalidDataset, "%s is both an agency and a company", c.Name)
		}
	}
	return nil
}

func checkRelations(ds *dataset.Dataset) error {
	agencies := ds.AgencyNames()
	companies := ds.CompanyNames()
	for agency, list := range ds.Relations {
		if !slices.Contains(agencies, agency) {
			return errors.New(errors.ErrCodeUnknownEntity, "no position for agency %s", agency)
		}
		for _, c := range list {
			if !slices.Contains(companies, c) {
				return errors.New(errors.ErrCodeUnknownEntity, "no position for company %s", c)
			}
		}
	}
	return nil
}

func placeAgencies(agencies []dataset.Agency, o Options) []Node {
	nodes := make([]Node, len(agencies))
	for i, a := range agencies {
		pos := Point{X: o.LeftX, Y: -float64(i) * o.Spacing}
		nodes[i] = Node{
			Name:   a.Name,
			Kind:   KindAgency,
			Pos:    pos,
			Image:  a.Image,
			Extent: extent(pos, agencyHalfWidth, agencyHeightMult),
			Pixels: pixels(agencyHeightMult),
			Label: Label{
				Text:   a.Label(),
				At:     Point{X: pos.X - agencyLabelOffset, Y: pos.Y},
				Anchor: AnchorEnd,
			},
		}
	}
	return nodes
}

// placeCompanies spreads the reversed ranking over the agency span, so the
// most investigated company ends up at the top.
func placeCompanies(ds *dataset.Dataset, ranking []string, counts aggregate.Counts, agencyCount int, o Options) []Node {
	order := slices.Clone(ranking)
	slices.Reverse(order)

	ys := linspace(-float64(agencyCount-1)*o.Spacing, 0, len(order))
	nodes := make([]Node, len(order))
	for i, name := range order {
		c, _ := ds.Company(name)
		pos := Point{X: o.RightX, Y: ys[i]}
		n := counts.Of(name)
		nodes[i] = Node{
			Name:   name,
			Kind:   KindCompany,
			Pos:    pos,
			Image:  c.Image,
			Extent: extent(pos, companyHalfWidth, companyHeightMult),
			Pixels: pixels(companyHeightMult),
			Label: Label{
				Text:   aggregate.Caption(n),
				At:     Point{X: pos.X, Y: pos.Y - companyLabelOffset},
				Anchor: AnchorMiddle,
			},
			Count: n,
		}
	}
	return nodes
}

// routeEdges folds over agencies (declaration order) and the ranking,
// threading fan through every routed edge.
func routeEdges(ds *dataset.Dataset, l Layout, o Options, fan Fan) ([]Edge, Fan) {
	companies := make(map[string]Node, len(l.Companies))
	for _, n := range l.Companies {
		companies[n.Name] = n
	}

	var edges []Edge
	for i, agency := range l.Agencies {
		list, ok := ds.Relations[agency.Name]
		if !ok {
			continue
		}
		start := Point{X: agency.Pos.X + o.AgencyAnchor, Y: agency.Pos.Y}
		for _, name := range l.Ranking {
			if !slices.Contains(list, name) {
				continue
			}
			c, _ := ds.Company(name)
			target := companies[name]
			end := Point{X: target.Pos.X - o.nudge(c.LogoClassOrDefault()), Y: target.Pos.Y}

			var drop float64
			drop, fan = advance(fan, name, o.FanStep)
			edges = append(edges, Edge{
				Agency:  agency.Name,
				Company: name,
				Color:   i,
				Drop:    drop,
				Curve:   Route(start, end, drop),
			})
		}
	}
	return edges, fan
}

// advance returns the current drop for company and the fan with that
// company's drop increased by step.
func advance(fan Fan, company string, step float64) (float64, Fan) {
	drop := fan[company]
	fan[company] = drop + step
	return drop, fan
}

// Route builds the three-point path from start to end whose midpoint sits
// halfway across and drop below the end point.
func Route(start, end Point, drop float64) Curve {
	return Curve{
		Start: start,
		Mid:   Point{X: (start.X + end.X) / 2, Y: end.Y - drop},
		End:   end,
	}
}

// linspace returns n evenly spaced values over [lo, hi]. A single value is lo.
func linspace(lo, hi float64, n int) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func extent(p Point, halfWidth, heightMult float64) Rect {
	halfHeight := baseHalfHeight * heightMult
	return Rect{
		Left:   p.X - halfWidth,
		Right:  p.X + halfWidth,
		Bottom: p.Y - halfHeight,
		Top:    p.Y + halfHeight,
	}
}

func pixels(heightMult float64) Size {
	return Size{W: imagePixelW, H: int(imagePixelH * heightMult)}
}
