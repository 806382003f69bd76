package dataset

// DefaultTitle is the diagram title used when a dataset does not set one.
const DefaultTitle = "Government Agencies Investigating Musk-Led Companies"

// Default returns the built-in dataset: twelve federal agencies and the five
// Musk-led companies they investigate. Image paths are bare file names looked
// up in the asset directory.
func Default() *Dataset {
	return &Dataset{
		Title: DefaultTitle,
		Agencies: []Agency{
			{Name: "Department of Labor (DOL)", Abbreviation: "DOL", Image: "Seal_of_the_United_States_Department_of_Labor.jpeg"},
			{Name: "Consumer Financial Protection Bureau (CFPB)", Abbreviation: "CFPB", Image: "Seal_of_the_Consumer_Financial_Protection_Bureau.jpeg"},
			{Name: "U.S. Agency for International Development (USAID)", Abbreviation: "USAID", Image: "Seal_of_the_United_States_Agency_for_International_Development.jpeg"},
			{Name: "Department of Transportation (DOT)", Abbreviation: "DOT", Image: "United_States_Department_of_Transportation_seal.jpeg"},
			{Name: "U.S. Department of Agriculture (USDA)", Abbreviation: "USDA", Image: "Logo_of_the_United_States_Department_of_Agriculture.jpeg"},
			{Name: "Environmental Protection Agency (EPA)", Abbreviation: "EPA", Image: "Seal_of_the_United_States_Environmental_Protection_Agency.jpeg"},
			{Name: "Federal Election Commission (FEC)", Abbreviation: "FEC", Image: "Seal_of_the_United_States_Federal_Election_Commission.jpeg"},
			{Name: "Department of the Interior (DOI)", Abbreviation: "DOI", Image: "Seal_of_the_United_States_Department_of_the_Interior.jpeg"},
			{Name: "Department of Defense (DOD)", Abbreviation: "DOD", Image: "Seal_of_the_United_States_Department_of_Defense.jpeg"},
			{Name: "Department of Justice (DOJ)", Abbreviation: "DOJ", Image: "Seal_of_the_United_States_Department_of_Justice.jpeg"},
			{Name: "Securities and Exchange Commission (SEC)", Abbreviation: "SEC", Image: "Seal_of_the_United_States_Securities_and_Exchange_Commission.jpeg"},
			{Name: "Office of Government Ethics (OGE)", Abbreviation: "OGE", Image: "Seal_of_the_United_States_Office_Of_Government_Ethics.jpeg"},
		},
		Companies: []Company{
			{Name: "Tesla", Image: "Tesla_logo.jpeg", Logo: LogoNarrow},
			{Name: "SpaceX", Image: "SpaceX_logo_black.jpeg", Logo: LogoWide},
			{Name: "X (formerly Twitter)", Image: "X_logo.jpeg", Logo: LogoWide},
			{Name: "Neuralink", Image: "Neuralink_logo.jpeg", Logo: LogoMedium},
			{Name: "Starlink", Image: "Starlink_Logo.jpeg", Logo: LogoWide},
		},
		Relations: map[string][]string{
			"Department of Labor (DOL)":                         {"Tesla", "SpaceX"},
			"Consumer Financial Protection Bureau (CFPB)":       {"Tesla"},
			"U.S. Agency for International Development (USAID)": {"Starlink"},
			"Department of Transportation (DOT)":                {"Tesla", "SpaceX"},
			"U.S. Department of Agriculture (USDA)":             {"Neuralink"},
			"Environmental Protection Agency (EPA)":             {"Tesla"},
			"Federal Election Commission (FEC)":                 {"X (formerly Twitter)"},
			"Department of the Interior (DOI)":                  {"SpaceX"},
			"Department of Defense (DOD)":                       {"SpaceX"},
			"Department of Justice (DOJ)":                       {"SpaceX", "Tesla"},
			"Securities and Exchange Commission (SEC)":          {"X (formerly Twitter)"},
			"Office of Government Ethics (OGE)":                 {"X (formerly Twitter)"},
		},
		Style: StyleConfig{Font: "Orbitron-Regular.ttf"},
	}
}

// TitleOrDefault returns the dataset title, or [DefaultTitle] when unset.
func (d *Dataset) TitleOrDefault() string {
	if d.Title != "" {
		return d.Title
	}
	return DefaultTitle
}
