package scrollreel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	const doc = `
assetRoot: assets/frames
extension: webp
frameCount: 120
initialCategory: Travel
initialTheme: light
categories:
  - name: Travel
    title: On the Road
    body: ["Miles of it."]
  - name: Home Life
    horizontalPan: true
    panels: [Kitchen, Garden]
scrub: 0.25
maxConcurrentLoads: 8
palettes:
  dark:
    accent: "#00ff00"
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultConfig()
	want.AssetRoot = "assets/frames"
	want.Extension = "webp"
	want.FrameCount = 120
	want.InitialCategory = "Travel"
	want.InitialTheme = "light"
	want.Categories = []CategoryConfig{
		{Name: "Travel", Title: "On the Road", Body: []string{"Miles of it."}},
		{Name: "Home Life", HorizontalPan: true, Panels: []string{"Kitchen", "Garden"}},
	}
	want.Scrub = 0.25
	want.MaxConcurrentLoads = 8
	want.Palettes.Dark.Accent = "#00ff00"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Layout().Path("Travel", ThemeLight, 3); got != "assets/frames/Travel/Light Theme/ezgif-frame-003.webp" {
		t.Errorf("path = %q", got)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("frameCnt: 10\n"))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"frame count", func(c *Config) { c.FrameCount = 0 }, "frameCount must be positive"},
		{"extension", func(c *Config) { c.Extension = "" }, "extension is empty"},
		{"no categories", func(c *Config) { c.Categories = nil; c.InitialCategory = "" }, "no categories"},
		{"duplicate", func(c *Config) { c.Categories = append(c.Categories, c.Categories[0]) }, `duplicate category "Office Life"`},
		{"pan without panels", func(c *Config) { c.Categories[1].Panels = nil }, "pans but has no panels"},
		{"initial category", func(c *Config) { c.InitialCategory = "Nope" }, `initialCategory "Nope"`},
		{"initial theme", func(c *Config) { c.InitialTheme = "sepia" }, "sepia"},
		{"negative scrub", func(c *Config) { c.Scrub = -1 }, "scrub must not be negative"},
		{"scroll screens", func(c *Config) { c.ScrollScreens = 0.5 }, "scrollScreens must be at least 1"},
		{"max loads", func(c *Config) { c.MaxConcurrentLoads = -2 }, "maxConcurrentLoads"},
		{"palette", func(c *Config) { c.Palettes.Light.Text = "blue" }, "palette text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameCount = 0
	cfg.Extension = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	want := "invalid config: frameCount must be positive, got 0; extension is empty"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
}
