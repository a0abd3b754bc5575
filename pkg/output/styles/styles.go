// Package styles defines the visual styling for sheetpick's terminal
// output.
//
// Style definitions live in styles.yaml, compiled into the binary, so
// every command renders from the same palette. All colors are adaptive
// pairs that adjust to light and dark terminal themes. Styles are
// looked up by semantic name:
//
//	styles.Get("Success").Render("12 copied")
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef is an adaptive color definition in YAML.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML. Foreground and Background
// name entries from the colors section.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config is the full styles.yaml document.
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to built lipgloss styles.
var Registry map[string]lipgloss.Style

func init() {
	if err := load(stylesYAML); err != nil {
		panic(fmt.Sprintf("styles: embedded styles.yaml is invalid: %v", err))
	}
}

func load(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	Registry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		Registry[name] = buildStyle(def, colors)
	}
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok && def.Foreground != "" {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok && def.Background != "" {
		style = style.Background(color)
	}

	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Get retrieves a style by name, falling back to an unstyled default
// for unknown names.
func Get(name string) lipgloss.Style {
	if style, ok := Registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
