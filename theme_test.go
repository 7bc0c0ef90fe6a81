package scrollreel

import (
	"math"
	"testing"
)

func TestThemeToggle(t *testing.T) {
	tests := []struct {
		theme       Theme
		toggled     Theme
		class, icon string
	}{
		{ThemeDark, ThemeLight, "dark-theme", "☀️"},
		{ThemeLight, ThemeDark, "light-theme", "🌙"},
	}
	for _, tt := range tests {
		t.Run(tt.theme.String(), func(t *testing.T) {
			if got := tt.theme.Toggle(); got != tt.toggled {
				t.Errorf("Toggle = %v, want %v", got, tt.toggled)
			}
			if got := tt.theme.Class(); got != tt.class {
				t.Errorf("Class = %q, want %q", got, tt.class)
			}
			if got := tt.theme.Icon(); got != tt.icon {
				t.Errorf("Icon = %q, want %q", got, tt.icon)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]Theme{"dark": ThemeDark, "Light": ThemeLight, "DARK": ThemeDark} {
		got, err := ParseTheme(in)
		if err != nil || got != want {
			t.Errorf("ParseTheme(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestCategorySection(t *testing.T) {
	tests := map[Category]string{
		"Office Life":  "office",
		"College Life": "college",
		"MissingCat":   "missingcat",
		"":             "",
	}
	for c, want := range tests {
		if got := c.Section(); got != want {
			t.Errorf("%q.Section() = %q, want %q", c, got, want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 1 || math.Abs(c.G-128.0/255) > 1e-9 || c.B != 0 || c.A != 1 {
		t.Errorf("got %+v", c)
	}
	if _, err := ParseHexColor("orange"); err == nil {
		t.Error("expected error for a color name")
	}
}

func TestBlendColorEndpoints(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 1}
	b := Color{R: 1, G: 1, B: 1, A: 0.5}

	if got := BlendColor(a, b, 0); !colorNear(got, a) {
		t.Errorf("t=0: %+v", got)
	}
	if got := BlendColor(a, b, 1); !colorNear(got, b) {
		t.Errorf("t=1: %+v", got)
	}
	mid := BlendColor(a, b, 0.5)
	if mid.R <= 0 || mid.R >= 1 || math.Abs(mid.A-0.75) > 1e-9 {
		t.Errorf("t=0.5: %+v", mid)
	}
}

func TestDefaultPalettesDiffer(t *testing.T) {
	dark, err := DefaultPaletteConfig(ThemeDark).Palette()
	if err != nil {
		t.Fatal(err)
	}
	light, err := DefaultPaletteConfig(ThemeLight).Palette()
	if err != nil {
		t.Fatal(err)
	}
	if dark.Background == light.Background {
		t.Error("dark and light backgrounds should differ")
	}
	if got := BlendPalette(dark, light, 1); !colorNear(got.Background, light.Background) {
		t.Errorf("full blend background = %+v", got.Background)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
