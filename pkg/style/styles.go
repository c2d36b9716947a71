package style

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config is the content of a styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to built styles
type Registry map[string]lipgloss.Style

var (
	defaultOnce     sync.Once
	defaultRegistry Registry
)

// Parse builds a registry from YAML. Unknown color names are an error.
func Parse(data []byte) (Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(Registry, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style, err := buildStyle(def, colors)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "style %s", name)
		}
		registry[name] = style
	}

	return registry, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
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

	if def.Foreground != "" {
		color, ok := colors[def.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := colors[def.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Background)
		}
		style = style.Background(color)
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style, nil
}

// Default returns the registry built from the embedded styles.yaml
func Default() Registry {
	defaultOnce.Do(func() {
		registry, err := Parse(defaultStyles)
		if err != nil {
			panic(fmt.Sprintf("embedded styles are invalid: %v", err))
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// Get returns the named style, or a plain style if it is not registered
func (r Registry) Get(name string) lipgloss.Style {
	if style, ok := r[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render renders text with the named style
func (r Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}

// Render renders text with a style from the default registry
func Render(name, text string) string {
	return Default().Render(name, text)
}
