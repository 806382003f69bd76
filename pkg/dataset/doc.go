// Package dataset defines the input data for a probemap diagram.
//
// A [Dataset] lists government agencies (left column), the companies they
// investigate (right column) and the relations between them. Agencies and
// companies keep their declaration order: the layout engine places agencies in
// exactly that order and uses company order to break ties between equally
// investigated companies.
//
// Datasets are usually loaded from a file:
//
//	ds, err := dataset.Load("investigations.toml")
//
// TOML, YAML and JSON are supported and selected by file extension. The data
// the diagram was originally drawn from ships as [Default], and
// [Write] turns any dataset back into an editable file.
//
// # File Layout (TOML)
//
//	title = "Government Agencies Investigating Musk-Led Companies"
//
//	[[agencies]]
//	name = "Department of Labor (DOL)"
//	abbreviation = "DOL"
//	image = "Seal_of_the_United_States_Department_of_Labor.jpeg"
//
//	[[companies]]
//	name = "Tesla"
//	image = "Tesla_logo.jpeg"
//	logo = "narrow"
//
//	[relations]
//	"Department of Labor (DOL)" = ["Tesla", "SpaceX"]
//
//	[layout]
//	spacing = 2.0
//
//	[style]
//	theme = "winter"
//	font = "Orbitron-Regular.ttf"
package dataset
