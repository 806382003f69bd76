package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

func smallLayout(t *testing.T) layout.Layout {
	t.Helper()
	ds := &dataset.Dataset{
		Title: "Small",
		Agencies: []dataset.Agency{
			{Name: "Department of Labor", Abbreviation: "DOL"},
			{Name: "Environmental Protection Agency", Abbreviation: "EPA"},
		},
		Companies: []dataset.Company{{Name: "Tesla"}, {Name: "SpaceX"}},
		Relations: map[string][]string{
			"Department of Labor":             {"Tesla", "SpaceX"},
			"Environmental Protection Agency": {"Tesla"},
		},
	}
	l, err := layout.Build(ds, aggregate.Count(ds))
	if err != nil {
		t.Fatalf("layout.Build: %v", err)
	}
	return l
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(smallLayout(t), Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=LR",
		`label="Small"`,
		`"Department of Labor" [label="DOL"]`,
		`"Tesla" [label="Tesla"`,
		`"Department of Labor" -> "Tesla" [color="#1E90FF"`,
		`"Environmental Protection Agency" -> "Tesla" [color="#4682B4"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("edges = %d, want 3", got)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(smallLayout(t), Options{Detailed: true})

	if !strings.Contains(dot, `[label="Department of Labor"]`) {
		t.Error("detailed agency label should be the full name")
	}
	if !strings.Contains(dot, `label="Tesla\n2 agencies"`) {
		t.Error("detailed company label should carry the count")
	}
}

func TestToDOT_Theme(t *testing.T) {
	simple, _ := theme.Get(theme.Simple)
	dot := ToDOT(smallLayout(t), Options{Theme: simple})
	if !strings.Contains(dot, `color="#333333"`) {
		t.Error("edges should use the theme palette")
	}
}

func TestToDOT_RankOrder(t *testing.T) {
	dot := ToDOT(smallLayout(t), Options{})
	if strings.Index(dot, `"Tesla" [`) > strings.Index(dot, `"SpaceX" [`) {
		t.Error("companies should be listed most investigated first")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should pass through")
	}
}
