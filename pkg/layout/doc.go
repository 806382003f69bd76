// Package layout places agencies and companies on a two-column diagram.
//
// # Columns
//
// Agencies form the left column in declaration order, one row per agency,
// spaced [Options.Spacing] apart going downwards from y = 0. Companies form
// the right column. They are ranked by how many agencies investigate them
// and spread evenly over the vertical span of the agency column. The least
// investigated company takes the lowest slot and the most investigated
// company sits level with the first agency.
//
// # Edges
//
// Every (agency, company) relation becomes a three-point path: a start just
// right of the agency seal, an end just left of the company logo, and a
// midpoint halfway between them. The midpoint drops a little lower for each
// edge already routed to the same company, which fans out the edges arriving
// at popular companies. The drop accumulates in a [Fan] that is threaded
// through the edge fold and returned on the [Layout].
//
// How far left of the logo an edge stops depends on the company's
// [dataset.LogoClass]; wide logos need a larger nudge.
//
// # Coordinates
//
// Coordinates are in data units with y growing upwards. [Layout.Bounds] is
// the plot window the renderers map onto pixels.
//
//	counts := aggregate.Count(ds)
//	l, err := layout.Build(ds, counts, layout.WithSpacing(2))
package layout
