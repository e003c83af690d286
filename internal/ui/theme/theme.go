package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for the application. Chroma names the syntax
// highlighting style used for coloured JSON export.
type Theme struct {
	Name   string
	Chroma string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Accent lipgloss.Color
	Red    lipgloss.Color
	Yellow lipgloss.Color
	Green  lipgloss.Color
	Blue   lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Chroma:  "catppuccin-mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Accent: lipgloss.Color("#cba6f7"),
	Red:    lipgloss.Color("#f38ba8"),
	Yellow: lipgloss.Color("#f9e2af"),
	Green:  lipgloss.Color("#a6e3a1"),
	Blue:   lipgloss.Color("#89b4fa"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// CatppuccinLatte is the light variant.
var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Chroma:  "catppuccin-latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Accent: lipgloss.Color("#8839ef"),
	Red:    lipgloss.Color("#d20f39"),
	Yellow: lipgloss.Color("#df8e1d"),
	Green:  lipgloss.Color("#40a02b"),
	Blue:   lipgloss.Color("#1e66f5"),

	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#9ca0b0"),
}

// Nord is the arctic blue theme.
var Nord = Theme{
	Name:    "Nord",
	Chroma:  "nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Accent: lipgloss.Color("#88c0d0"),
	Red:    lipgloss.Color("#bf616a"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Green:  lipgloss.Color("#a3be8c"),
	Blue:   lipgloss.Color("#5e81ac"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
}

var builtins = []Theme{CatppuccinLatte, CatppuccinMocha, Nord}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Lookup returns the built-in theme with the given name. Names match
// case-insensitively with spaces and dashes interchangeable.
func Lookup(name string) (Theme, bool) {
	k := key(name)
	for _, t := range builtins {
		if key(t.Name) == k {
			return t, true
		}
	}
	return Theme{}, false
}

// Names returns the built-in theme names in alphabetical order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, t := range builtins {
		names[i] = t.Name
	}
	return names
}

// Resolve returns the named theme: a built-in, else a custom theme from
// ~/.config/utmtag/themes, else the default.
func Resolve(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	if home, err := os.UserHomeDir(); err == nil {
		if t, ok := findCustom(filepath.Join(home, ".config", "utmtag", "themes"), name); ok {
			return t
		}
	}
	return Default()
}

func key(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
