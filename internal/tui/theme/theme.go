// Package theme defines color themes for the tally TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Active tab
	SurfaceBright lipgloss.Color // Selected row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Focused cards, help overlay
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Success       lipgloss.Color // Saved, added
	Warning       lipgloss.Color // Unsaved changes, entry under edit
	Danger        lipgloss.Color // Errors
	Key           lipgloss.Color // Key bindings in help
}

// palette is the handful of colors a theme is derived from. Surfaces and
// text shades are blends between background and foreground.
type palette struct {
	name                     string
	bg, fg, accent           string
	success, warning, danger string
	key                      string
}

// mustHex parses a palette color. Palettes are fixed at compile time, so a
// bad value is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("theme: bad palette color " + s + ": " + err.Error())
	}
	return c
}

func blend(from, to string, t float64) lipgloss.Color {
	a, b := mustHex(from), mustHex(to)
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

func derive(p palette) Theme {
	return Theme{
		Name:          p.name,
		Background:    lipgloss.Color(p.bg),
		Surface:       blend(p.bg, p.fg, 0.06),
		SurfaceHover:  blend(p.bg, p.fg, 0.12),
		SurfaceBright: blend(p.bg, p.fg, 0.18),
		Border:        blend(p.bg, p.fg, 0.25),
		BorderAccent:  lipgloss.Color(p.accent),
		TextDim:       blend(p.bg, p.fg, 0.35),
		TextMuted:     blend(p.bg, p.fg, 0.55),
		TextPrimary:   lipgloss.Color(p.fg),
		Accent:        lipgloss.Color(p.accent),
		AccentBright:  blend(p.accent, p.fg, 0.3),
		Success:       lipgloss.Color(p.success),
		Warning:       lipgloss.Color(p.warning),
		Danger:        lipgloss.Color(p.danger),
		Key:           lipgloss.Color(p.key),
	}
}

// FlexokiDark is the default theme.
var FlexokiDark = derive(palette{
	name: "flexoki-dark", bg: "#100F0F", fg: "#FFFCF0", accent: "#3AA99F",
	success: "#A3B859", warning: "#DA702C", danger: "#D14D41", key: "#24837B",
})

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = derive(palette{
	name: "catppuccin-mocha", bg: "#1E1E2E", fg: "#CDD6F4", accent: "#89B4FA",
	success: "#A6E3A1", warning: "#FAB387", danger: "#F38BA8", key: "#94E2D5",
})

// TokyoNight is a cool blue theme.
var TokyoNight = derive(palette{
	name: "tokyo-night", bg: "#1A1B26", fg: "#C0CAF5", accent: "#7AA2F7",
	success: "#9ECE6A", warning: "#FF9E64", danger: "#F7768E", key: "#7DCFFF",
})

// Terminal uses ANSI 16 colors only, which cannot be blended.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Success:       lipgloss.Color("10"),
	Warning:       lipgloss.Color("3"),
	Danger:        lipgloss.Color("1"),
	Key:           lipgloss.Color("6"),
}

// Active is the currently selected theme.
var Active = FlexokiDark

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names lists the theme names in All order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme called name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
