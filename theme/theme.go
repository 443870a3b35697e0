// Package theme wraps the forgeui theme system for the dashboard shell and
// defines the brand colors the navigation bar's utility classes refer to.
package theme

import (
	"fmt"
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/theme"
)

// Config holds theme configuration.
type Config struct {
	Mode      string // "light", "dark", "auto"
	CustomCSS string
}

// DefaultConfig returns the default theme config.
func DefaultConfig() Config {
	return Config{Mode: "auto"}
}

// Palette maps brand color names to CSS colors. Each name backs the
// bg-*, text-* and border-* utility classes of the same name.
type Palette map[string]string

// DefaultPalette returns the Unweave brand colors.
func DefaultPalette() Palette {
	return Palette{
		"primary-black": "#0b0b0c",
		"primary-white": "#fafafa",
		"primary-blue":  "#2f6bff",
		"system-grey4":  "#a1a1aa",
		"system-grey6":  "#27272a",
	}
}

// Manager renders theme nodes for the document head.
type Manager struct {
	config  Config
	palette Palette
}

// NewManager creates a theme manager.
func NewManager(config Config, palette Palette) *Manager {
	if palette == nil {
		palette = DefaultPalette()
	}

	return &Manager{config: config, palette: palette}
}

// HeadNodes returns forgeui theme variables, the Tailwind config, the dark
// mode script, brand CSS and optional custom CSS.
func (m *Manager) HeadNodes() []g.Node {
	light := theme.DefaultLight()
	dark := theme.DefaultDark()

	nodes := []g.Node{
		theme.HeadContent(light, dark),
		theme.StyleTag(light, dark),
		theme.TailwindConfigScript(),
		theme.DarkModeScript(),
		html.StyleEl(g.Raw(m.BrandCSS())),
	}

	if css := m.CustomCSSNode(); css != nil {
		nodes = append(nodes, css)
	}

	return nodes
}

// BrandCSS returns utility rules for every palette color, in a stable order.
func (m *Manager) BrandCSS() string {
	names := make([]string, 0, len(m.palette))
	for name := range m.palette {
		names = append(names, name)
	}

	slices.Sort(names)

	var sb strings.Builder

	for _, name := range names {
		color := m.palette[name]
		fmt.Fprintf(&sb, ".bg-%s{background-color:%s}", name, color)
		fmt.Fprintf(&sb, ".text-%s{color:%s}", name, color)
		fmt.Fprintf(&sb, ".border-%s{border-color:%s}", name, color)
		fmt.Fprintf(&sb, ".hover\\:text-%s:hover{color:%s}", name, color)
	}

	sb.WriteString(".z-100{z-index:100}")

	return sb.String()
}

// CustomCSSNode returns a <style> tag with custom CSS, or nil.
func (m *Manager) CustomCSSNode() g.Node {
	if m.config.CustomCSS == "" {
		return nil
	}

	return html.StyleEl(g.Raw(m.config.CustomCSS))
}

// BodyClass returns "dark" when dark mode is forced.
func (m *Manager) BodyClass() string {
	if m.config.Mode == "dark" {
		return "dark"
	}

	return ""
}
