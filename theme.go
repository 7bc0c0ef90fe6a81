package scrollreel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of UI colors for one theme.
type Palette struct {
	Background Color
	Text       Color
	Accent     Color
	Nav        Color
	NavActive  Color
	Panel      Color
	Error      Color
}

// PaletteConfig holds palette colors as hex strings ("#rrggbb").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Nav        string `yaml:"nav"`
	NavActive  string `yaml:"navActive"`
	Panel      string `yaml:"panel"`
	Error      string `yaml:"error"`
}

// DefaultPaletteConfig returns the built-in colors for a theme.
func DefaultPaletteConfig(t Theme) PaletteConfig {
	if t == ThemeLight {
		return PaletteConfig{
			Background: "#f4f1ea",
			Text:       "#1c1b22",
			Accent:     "#d9480f",
			Nav:        "#ffffff",
			NavActive:  "#1c1b22",
			Panel:      "#e3ddd0",
			Error:      "#c92a2a",
		}
	}
	return PaletteConfig{
		Background: "#0b0b12",
		Text:       "#f1f3f5",
		Accent:     "#ffa94d",
		Nav:        "#1e1e2a",
		NavActive:  "#f1f3f5",
		Panel:      "#25253a",
		Error:      "#ff6b6b",
	}
}

// Palette parses every color of the config.
func (pc PaletteConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"background", pc.Background, &p.Background},
		{"text", pc.Text, &p.Text},
		{"accent", pc.Accent, &p.Accent},
		{"nav", pc.Nav, &p.Nav},
		{"navActive", pc.NavActive, &p.NavActive},
		{"panel", pc.Panel, &p.Panel},
		{"error", pc.Error, &p.Error},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque Color.
func ParseHexColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// BlendColor interpolates a to b in CIE L*a*b* space, which keeps the
// midpoint of a dark-to-light fade from turning muddy. Alpha is linear.
func BlendColor(a, b Color, t float64) Color {
	t = clamp01(t)
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendLab(cb, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: a.A + (b.A-a.A)*t}
}

// BlendPalette interpolates every color of two palettes.
func BlendPalette(a, b Palette, t float64) Palette {
	return Palette{
		Background: BlendColor(a.Background, b.Background, t),
		Text:       BlendColor(a.Text, b.Text, t),
		Accent:     BlendColor(a.Accent, b.Accent, t),
		Nav:        BlendColor(a.Nav, b.Nav, t),
		NavActive:  BlendColor(a.NavActive, b.NavActive, t),
		Panel:      BlendColor(a.Panel, b.Panel, t),
		Error:      BlendColor(a.Error, b.Error, t),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}
