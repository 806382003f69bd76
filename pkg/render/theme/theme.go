// Package theme holds the colour schemes a diagram can be drawn in.
package theme

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/probemap/pkg/errors"
)

// Theme names.
const (
	Winter = "winter"
	Simple = "simple"

	Default = Winter
)

// Theme describes colours and stroke settings.
type Theme struct {
	Name        string
	Palette     []string // edge colours, cycled by agency index
	Background  string
	Text        string
	EdgeWidth   float64 // in points
	EdgeOpacity float64
	// Smooth draws edges as quadratic curves through their midpoint instead
	// of two straight segments.
	Smooth bool
}

var themes = map[string]Theme{
	Winter: {
		Name: Winter,
		Palette: []string{
			"#1E90FF", "#4682B4", "#5F9EA0", "#00CED1", "#20B2AA", "#708090",
			"#778899", "#87CEEB", "#B0C4DE", "#2F4F4F", "#6495ED", "#00BFFF",
		},
		Background:  "#FFFFFF",
		Text:        "#000000",
		EdgeWidth:   2,
		EdgeOpacity: 0.9,
	},
	Simple: {
		Name:        Simple,
		Palette:     []string{"#333333", "#555555", "#777777", "#999999"},
		Background:  "#FFFFFF",
		Text:        "#222222",
		EdgeWidth:   1.5,
		EdgeOpacity: 0.8,
		Smooth:      true,
	},
}

// Get returns the named theme. An empty name selects [Default].
func Get(name string) (Theme, error) {
	if name == "" {
		name = Default
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names lists the available themes, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// EdgeColor returns the palette colour for an agency index.
func (t Theme) EdgeColor(i int) string {
	if len(t.Palette) == 0 {
		return t.Text
	}
	if i < 0 {
		i = -i
	}
	return t.Palette[i%len(t.Palette)]
}

// RGBA parses a "#RRGGBB" colour.
func RGBA(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// RGBAOrBlack is like [RGBA] but returns black for malformed input.
func RGBAOrBlack(hex string) color.RGBA {
	c, err := RGBA(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
