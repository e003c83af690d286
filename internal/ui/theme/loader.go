package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// customTheme is the YAML form of a user theme:
//
//	name: Ocean
//	extends: nord
//	chroma: monokai
//	colors:
//	  accent: "#33ccff"
//
// Colors not listed come from the extended built-in, Catppuccin Mocha by
// default.
type customTheme struct {
	Name    string            `yaml:"name"`
	Extends string            `yaml:"extends"`
	Chroma  string            `yaml:"chroma"`
	Colors  map[string]string `yaml:"colors"`
}

// LoadCustomTheme loads a theme from a YAML file. The name defaults to the
// file name without extension.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var ct customTheme
	if err := yaml.Unmarshal(data, &ct); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	t := Default()
	if ct.Extends != "" {
		base, ok := Lookup(ct.Extends)
		if !ok {
			return Theme{}, fmt.Errorf("theme %s: unknown base theme %q", path, ct.Extends)
		}
		t = base
	}

	t.Name = ct.Name
	if t.Name == "" {
		base := filepath.Base(path)
		t.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if ct.Chroma != "" {
		t.Chroma = ct.Chroma
	}

	for name, value := range ct.Colors {
		slot := t.color(name)
		if slot == nil {
			return Theme{}, fmt.Errorf("theme %s: unknown color %q", path, name)
		}
		*slot = lipgloss.Color(value)
	}
	// a new accent carries over to the focused border unless that is set too
	if _, ok := ct.Colors["accent"]; ok {
		if _, ok := ct.Colors["border_focused"]; !ok {
			t.BorderFocused = t.Accent
		}
	}
	return t, nil
}

// findCustom returns the theme called name from the YAML files in dir.
// Files that fail to load are skipped.
func findCustom(dir, name string) (Theme, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Theme{}, false
	}
	want := key(name)
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err == nil && key(t.Name) == want {
			return t, true
		}
	}
	return Theme{}, false
}

func (t *Theme) color(name string) *lipgloss.Color {
	switch name {
	case "base":
		return &t.Base
	case "surface":
		return &t.Surface
	case "overlay":
		return &t.Overlay
	case "text":
		return &t.Text
	case "subtext":
		return &t.Subtext
	case "muted":
		return &t.Muted
	case "accent":
		return &t.Accent
	case "red":
		return &t.Red
	case "yellow":
		return &t.Yellow
	case "green":
		return &t.Green
	case "blue":
		return &t.Blue
	case "border_focused":
		return &t.BorderFocused
	case "border_unfocused":
		return &t.BorderUnfocused
	}
	return nil
}
