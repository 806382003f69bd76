package sink

import (
	"encoding/json"

	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme *theme.Theme
}

// WithJSONTheme records the theme name and resolves each edge's palette
// index to a colour.
func WithJSONTheme(t theme.Theme) JSONOption { return func(r *jsonRenderer) { r.theme = &t } }

type jsonOutput struct {
	Theme string `json:"theme,omitempty"`
	layout.Layout
	EdgeColors []string `json:"edge_colors,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. The
// output holds every coordinate the drawing sinks use, in data units.
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Layout: l}
	if r.theme != nil {
		out.Theme = r.theme.Name
		out.EdgeColors = make([]string, len(l.Edges))
		for i, e := range l.Edges {
			out.EdgeColors[i] = r.theme.EdgeColor(e.Color)
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
