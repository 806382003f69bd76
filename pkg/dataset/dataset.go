package dataset

import (
	"slices"

	"github.com/matzehuels/probemap/pkg/errors"
)

// LogoClass describes how wide a company logo renders. Wider logos push the
// end point of incoming edges further left so the curves stop at the image
// edge instead of running underneath it.
type LogoClass string

const (
	LogoNarrow LogoClass = "narrow"
	LogoMedium LogoClass = "medium"
	LogoWide   LogoClass = "wide"
)

// Agency is a government body listed as an investigator.
type Agency struct {
	Name         string `json:"name" toml:"name" yaml:"name"`
	Abbreviation string `json:"abbreviation,omitempty" toml:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Image        string `json:"image,omitempty" toml:"image,omitempty" yaml:"image,omitempty"`
}

// Label returns the abbreviation if set, otherwise the full name.
func (a Agency) Label() string {
	if a.Abbreviation != "" {
		return a.Abbreviation
	}
	return a.Name
}

// Company is an entity subject to investigation.
type Company struct {
	Name  string    `json:"name" toml:"name" yaml:"name"`
	Image string    `json:"image,omitempty" toml:"image,omitempty" yaml:"image,omitempty"`
	Logo  LogoClass `json:"logo,omitempty" toml:"logo,omitempty" yaml:"logo,omitempty"`
}

// LogoClassOrDefault returns the company's logo class, narrow when unset.
func (c Company) LogoClassOrDefault() LogoClass {
	if c.Logo == "" {
		return LogoNarrow
	}
	return c.Logo
}

// LayoutConfig holds optional layout overrides. Zero values mean "use the
// layout engine default".
type LayoutConfig struct {
	Spacing float64 `json:"spacing,omitempty" toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	LeftX   float64 `json:"left_x,omitempty" toml:"left_x,omitempty" yaml:"left_x,omitempty"`
	RightX  float64 `json:"right_x,omitempty" toml:"right_x,omitempty" yaml:"right_x,omitempty"`
	FanStep float64 `json:"fan_step,omitempty" toml:"fan_step,omitempty" yaml:"fan_step,omitempty"`
}

// StyleConfig holds optional rendering overrides.
type StyleConfig struct {
	Theme string `json:"theme,omitempty" toml:"theme,omitempty" yaml:"theme,omitempty"`
	Font  string `json:"font,omitempty" toml:"font,omitempty" yaml:"font,omitempty"`
}

// Dataset is the complete input for one diagram.
type Dataset struct {
	Title     string              `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Agencies  []Agency            `json:"agencies" toml:"agencies" yaml:"agencies"`
	Companies []Company           `json:"companies" toml:"companies" yaml:"companies"`
	Relations map[string][]string `json:"relations" toml:"relations" yaml:"relations"`
	Layout    LayoutConfig        `json:"layout,omitzero" toml:"layout,omitempty" yaml:"layout,omitempty"`
	Style     StyleConfig         `json:"style,omitzero" toml:"style,omitempty" yaml:"style,omitempty"`
}

// AgencyNames returns agency names in declaration order.
func (d *Dataset) AgencyNames() []string {
	names := make([]string, len(d.Agencies))
	for i, a := range d.Agencies {
		names[i] = a.Name
	}
	return names
}

// CompanyNames returns company names in declaration order.
func (d *Dataset) CompanyNames() []string {
	names := make([]string, len(d.Companies))
	for i, c := range d.Companies {
		names[i] = c.Name
	}
	return names
}

// Agency looks up an agency by name.
func (d *Dataset) Agency(name string) (Agency, bool) {
	i := slices.IndexFunc(d.Agencies, func(a Agency) bool { return a.Name == name })
	if i < 0 {
		return Agency{}, false
	}
	return d.Agencies[i], true
}

// Company looks up a company by name.
func (d *Dataset) Company(name string) (Company, bool) {
	i := slices.IndexFunc(d.Companies, func(c Company) bool { return c.Name == name })
	if i < 0 {
		return Company{}, false
	}
	return d.Companies[i], true
}

// Investigates reports whether agency has company in its relation list.
func (d *Dataset) Investigates(agency, company string) bool {
	return slices.Contains(d.Relations[agency], company)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := *d
	out.Agencies = slices.Clone(d.Agencies)
	out.Companies = slices.Clone(d.Companies)
	out.Relations = make(map[string][]string, len(d.Relations))
	for k, v := range d.Relations {
		out.Relations[k] = slices.Clone(v)
	}
	return &out
}

// Validate checks the dataset for consistency:
//   - names are present, printable and unique within their column
//   - no name is used by both an agency and a company
//   - image paths stay inside the asset directory
//   - logo classes are known
//   - every relation names a declared agency and declared companies
//   - layout overrides are non-negative
//
// Relation problems are reported with [errors.ErrCodeUnknownEntity]; all
// others with [errors.ErrCodeInvalidDataset] or [errors.ErrCodeInvalidPath].
func (d *Dataset) Validate() error {
	if len(d.Agencies) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "dataset declares no agencies")
	}

	agencies := make(map[string]bool, len(d.Agencies))
	for _, a := range d.Agencies {
		if err := errors.ValidateName("agency", a.Name); err != nil {
			return err
		}
		if agencies[a.Name] {
			return errors.New(errors.ErrCodeInvalidDataset, "duplicate agency: %s", a.Name)
		}
		agencies[a.Name] = true
		if err := errors.ValidateAssetPath(a.Image); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "agency %s image", a.Name)
		}
	}

	companies := make(map[string]bool, len(d.Companies))
	for _, c := range d.Companies {
		if err := errors.ValidateName("company", c.Name); err != nil {
			return err
		}
		if companies[c.Name] {
			return errors.New(errors.ErrCodeInvalidDataset, "duplicate company: %s", c.Name)
		}
		if agencies[c.Name] {
			return errors.New(errors.ErrCodeInvalidDataset, "%s is declared as both agency and company", c.Name)
		}
		companies[c.Name] = true
		if err := errors.ValidateAssetPath(c.Image); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "company %s image", c.Name)
		}
		switch c.Logo {
		case "", LogoNarrow, LogoMedium, LogoWide:
		default:
			return errors.New(errors.ErrCodeInvalidDataset, "company %s: unknown logo class %q (must be narrow, medium or wide)", c.Name, c.Logo)
		}
	}

	for _, agency := range sortedKeys(d.Relations) {
		if !agencies[agency] {
			return errors.New(errors.ErrCodeUnknownEntity, "relation from unknown agency: %s", agency)
		}
		for _, company := range d.Relations[agency] {
			if !companies[company] {
				return errors.New(errors.ErrCodeUnknownEntity, "agency %s investigates unknown company: %s", agency, company)
			}
		}
	}

	l := d.Layout
	if l.Spacing < 0 || l.FanStep < 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "layout spacing and fan_step must not be negative")
	}
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
