package sink

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/assets"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/fonts"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
	"golang.org/x/image/font/gofont/goregular"
)

func defaultLayout(t *testing.T) layout.Layout {
	t.Helper()
	ds := dataset.Default()
	l, err := layout.Build(ds, aggregate.Count(ds))
	if err != nil {
		t.Fatalf("layout.Build: %v", err)
	}
	return l
}

func solid(w, h int, c color.Color) *assets.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &assets.Image{Path: "solid.png", Image: img, PNG: buf.Bytes()}
}

func TestViewport(t *testing.T) {
	v := viewport{bounds: layout.Rect{Left: -1.5, Right: 1.5, Bottom: -28, Top: 3}, w: 300, h: 310}
	tests := []struct {
		in   layout.Point
		want point
	}{
		{layout.Point{X: -1.5, Y: 3}, point{0, 0}},
		{layout.Point{X: 1.5, Y: -28}, point{300, 310}},
		{layout.Point{X: 0, Y: 0}, point{150, 30}},
	}
	for _, tt := range tests {
		if got := v.pt(tt.in); got != tt.want {
			t.Errorf("pt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	flat := viewport{w: 100, h: 80}
	if got := flat.pt(layout.Point{X: 5, Y: 5}); got != (point{50, 40}) {
		t.Errorf("degenerate bounds should centre, got %v", got)
	}
}

func TestPointsToPixels(t *testing.T) {
	if got := pointsToPixels(72, DefaultWidth); got != 100 {
		t.Errorf("72pt at default width = %v px, want 100", got)
	}
	if got := pointsToPixels(72, DefaultWidth/2); got != 50 {
		t.Errorf("72pt at half width = %v px, want 50", got)
	}
}

func TestRenderSVG(t *testing.T) {
	l := defaultLayout(t)
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1400.0 1400.0"`) {
		t.Errorf("unexpected header: %.80s", svg)
	}
	if got := strings.Count(svg, `class="edge"`); got != len(l.Edges) {
		t.Errorf("edge paths = %d, want %d", got, len(l.Edges))
	}
	for _, want := range []string{
		dataset.DefaultTitle,
		">5 agencies<",
		">1 agency<",
		">DOJ<",
		`stroke="#1E90FF"`,
		`stroke-opacity="0.90"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(svg, "<image") {
		t.Error("no images were supplied")
	}
	if strings.Contains(svg, "@font-face") {
		t.Error("fallback font should not be embedded")
	}
	if strings.Contains(svg, " Q") {
		t.Error("winter theme draws straight segments")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := defaultLayout(t)
	simple, _ := theme.Get(theme.Simple)
	custom, err := fonts.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	svg := string(RenderSVG(l,
		WithTheme(simple),
		WithFont(custom),
		WithImages(assets.Set{"Tesla": solid(4, 4, color.Black)}),
		WithSize(700, 700),
		WithTitle("Tom & Jerry"),
	))

	for _, want := range []string{
		`width="700" height="700"`,
		"@font-face",
		`font-family="&#39;Go&#39;, sans-serif"`,
		`<image id="img-Tesla"`,
		"data:image/png;base64,",
		"Tom &amp; Jerry",
		" Q",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(svg, dataset.DefaultTitle) {
		t.Error("title should be overridden")
	}
}

func TestBuildSceneImageExtent(t *testing.T) {
	l := defaultLayout(t)
	c := newConfig(WithImages(assets.Set{"Department of Labor (DOL)": solid(2, 2, color.White)}), WithSize(300, 310))
	s := buildScene(l, c)
	if len(s.images) != 1 {
		t.Fatalf("images = %d, want 1", len(s.images))
	}
	p := s.images[0]
	// Agency extent is 0.15 wide and 1.5 tall in a 3 × 31 unit window.
	if p.W < 14.9 || p.W > 15.1 || p.H < 14.9 || p.H > 15.1 {
		t.Errorf("image size = %.2f × %.2f, want 15 × 15", p.W, p.H)
	}
	if len(s.texts) != len(l.Agencies)+len(l.Companies) {
		t.Errorf("texts = %d", len(s.texts))
	}
}

func TestRenderPNG(t *testing.T) {
	l := defaultLayout(t)
	data, err := RenderPNG(l,
		WithSize(280, 280),
		WithImages(assets.Set{"Tesla": solid(4, 4, color.RGBA{R: 255, A: 255})}),
	)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 280 || b.Dy() != 280 {
		t.Fatalf("size = %v", b)
	}

	if r, g, b, _ := img.At(1, 279).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("corner should be background white, got %d,%d,%d", r>>8, g>>8, b>>8)
	}

	// Tesla is the top company at data (1, 0), which maps to (233.3, 27.1).
	if r, g, b, _ := img.At(233, 27).RGBA(); r>>8 < 200 || g>>8 > 50 || b>>8 > 50 {
		t.Errorf("Tesla logo pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestRenderJSON(t *testing.T) {
	l := defaultLayout(t)
	w, _ := theme.Get(theme.Winter)

	data, err := RenderJSON(l, WithJSONTheme(w))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Theme      string         `json:"theme"`
		Title      string         `json:"title"`
		Edges      []layout.Edge  `json:"edges"`
		Counts     map[string]int `json:"counts"`
		EdgeColors []string       `json:"edge_colors"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Theme != theme.Winter {
		t.Errorf("Theme = %q", out.Theme)
	}
	if len(out.EdgeColors) != len(out.Edges) || len(out.Edges) != len(l.Edges) {
		t.Errorf("edges = %d, colours = %d", len(out.Edges), len(out.EdgeColors))
	}
	if out.Counts["Tesla"] != 5 {
		t.Errorf("Counts[Tesla] = %d, want 5", out.Counts["Tesla"])
	}

	bare, _ := RenderJSON(l)
	if strings.Contains(string(bare), "edge_colors") {
		t.Error("edge colours need a theme")
	}
}
