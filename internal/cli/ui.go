package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/probemap/pkg/pipeline"
)

// stdout receives the human-facing status lines. Logs go to stderr.
var stdout io.Writer = os.Stdout

// ANSI 256 palette.
var (
	accent  = lipgloss.Color("36")
	okColor = lipgloss.Color("35")
	warn    = lipgloss.Color("220")
	bad     = lipgloss.Color("167")
	link    = lipgloss.Color("75")
	bright  = lipgloss.Color("255")
	muted   = lipgloss.Color("245")
	faint   = lipgloss.Color("240")
)

// Styles shared with the counts table and the interactive picker.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	StyleHighlight = lipgloss.NewStyle().Foreground(accent)
	StyleDim       = lipgloss.NewStyle().Foreground(faint)
	StyleValue     = lipgloss.NewStyle().Foreground(bright)
	StyleNumber    = lipgloss.NewStyle().Foreground(accent)
	StyleWarning   = lipgloss.NewStyle().Foreground(warn)
)

var styleIconSpinner = lipgloss.NewStyle().Foreground(accent)

// A marker prefixes a status line.
type marker struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = marker{"✓", lipgloss.NewStyle().Foreground(okColor)}
	markFail = marker{"✗", lipgloss.NewStyle().Foreground(bad)}
	markWarn = marker{"!", lipgloss.NewStyle().Foreground(warn)}
	markInfo = marker{"›", lipgloss.NewStyle().Foreground(muted)}
)

func (m marker) printf(body lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(stdout, m.style.Render(m.glyph)+" "+body.Render(fmt.Sprintf(format, args...)))
}

var plain = lipgloss.NewStyle()

func printSuccess(format string, args ...any) { markOK.printf(plain, format, args...) }
func printError(format string, args ...any)   { markFail.printf(plain, format, args...) }
func printWarning(format string, args ...any) { markWarn.printf(StyleWarning, format, args...) }
func printInfo(format string, args ...any)    { markInfo.printf(plain, format, args...) }

// printDetail prints an indented secondary line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a written output file.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// statsLine summarizes a diagram as "3 agencies · 12 companies · ... · fresh".
// Zero counts are left out.
func statsLine(st pipeline.Stats, cached bool) string {
	var parts []string
	for _, c := range []struct {
		n    int
		noun string
	}{
		{st.Agencies, "agencies"},
		{st.Companies, "companies"},
		{st.Edges, "edges"},
		{st.Images, "images"},
	} {
		if c.n > 0 {
			parts = append(parts, StyleDim.Render(fmt.Sprintf("%d %s", c.n, c.noun)))
		}
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(okColor).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(muted).Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func printStats(st pipeline.Stats, cached bool) {
	fmt.Fprintln(stdout, statsLine(st, cached))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+lipgloss.NewStyle().Foreground(link).Render(cmd))
}

func printNewline() { fmt.Fprintln(stdout) }
