package scrollreel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryConfig describes one selectable category.
type CategoryConfig struct {
	Name  string   `yaml:"name"`
	Title string   `yaml:"title"`
	Body  []string `yaml:"body"`
	// HorizontalPan enables the pinned strip of Panels below the scrub.
	HorizontalPan bool     `yaml:"horizontalPan"`
	Panels        []string `yaml:"panels"`
}

// ThemeFolders names the per-theme asset directories.
type ThemeFolders struct {
	Dark  string `yaml:"dark"`
	Light string `yaml:"light"`
}

// Palettes holds one palette per theme.
type Palettes struct {
	Dark  PaletteConfig `yaml:"dark"`
	Light PaletteConfig `yaml:"light"`
}

// Config holds every tunable of a Viewer. Durations are in seconds.
type Config struct {
	AssetRoot  string `yaml:"assetRoot"`
	Extension  string `yaml:"extension"`
	FrameCount int    `yaml:"frameCount"`

	Categories      []CategoryConfig `yaml:"categories"`
	InitialCategory string           `yaml:"initialCategory"`
	InitialTheme    string           `yaml:"initialTheme"`
	ThemeFolders    ThemeFolders     `yaml:"themeFolders"`

	Scrub           float64 `yaml:"scrub"`
	PanScrub        float64 `yaml:"panScrub"`
	SwitchDelay     float64 `yaml:"switchDelay"`
	RevealDelay     float64 `yaml:"revealDelay"`
	FadeDuration    float64 `yaml:"fadeDuration"`
	NavDuration     float64 `yaml:"navDuration"`
	NavTopThreshold float64 `yaml:"navTopThreshold"`
	ScrollScreens   float64 `yaml:"scrollScreens"`
	WheelStep       float64 `yaml:"wheelStep"`

	// MaxFrameSize downsamples frames whose larger side exceeds it. 0 disables.
	MaxFrameSize int `yaml:"maxFrameSize"`
	// MaxConcurrentLoads caps background fetches. 0 means unbounded.
	MaxConcurrentLoads int `yaml:"maxConcurrentLoads"`

	Palettes Palettes `yaml:"palettes"`
}

// DefaultConfig returns the configuration of the stock two-category reel.
func DefaultConfig() Config {
	return Config{
		AssetRoot:  DefaultAssetRoot,
		Extension:  DefaultExtension,
		FrameCount: DefaultFrameCount,
		Categories: []CategoryConfig{
			{
				Name:  "Office Life",
				Title: "Office Life",
				Body: []string{
					"Nine to five, one frame at a time.",
					"Scroll to move through the day.",
				},
			},
			{
				Name:          "College Life",
				Title:         "College Life",
				Body:          []string{"Lectures, late nights and everything between."},
				HorizontalPan: true,
				Panels:        []string{"Lectures", "Library", "Campus", "Friends", "Graduation"},
			},
		},
		InitialCategory: "Office Life",
		InitialTheme:    "dark",
		ThemeFolders:    ThemeFolders{Dark: "Dark Theme", Light: "Light Theme"},
		Scrub:           0.5,
		PanScrub:        1,
		SwitchDelay:     0.5,
		RevealDelay:     0.05,
		FadeDuration:    0.5,
		NavDuration:     0.5,
		NavTopThreshold: 100,
		ScrollScreens:   5,
		WheelStep:       60,
		Palettes: Palettes{
			Dark:  DefaultPaletteConfig(ThemeDark),
			Light: DefaultPaletteConfig(ThemeLight),
		},
	}
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks the config for values the viewer cannot run with.
func (c Config) Validate() error {
	var problems []string
	if c.FrameCount < 1 {
		problems = append(problems, fmt.Sprintf("frameCount must be positive, got %d", c.FrameCount))
	}
	if c.Extension == "" {
		problems = append(problems, "extension is empty")
	}
	if len(c.Categories) == 0 {
		problems = append(problems, "no categories")
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			problems = append(problems, fmt.Sprintf("category %d has no name", i))
			continue
		}
		if seen[cat.Name] {
			problems = append(problems, fmt.Sprintf("duplicate category %q", cat.Name))
		}
		seen[cat.Name] = true
		if cat.HorizontalPan && len(cat.Panels) == 0 {
			problems = append(problems, fmt.Sprintf("category %q pans but has no panels", cat.Name))
		}
	}
	if c.InitialCategory != "" && !seen[c.InitialCategory] {
		problems = append(problems, fmt.Sprintf("initialCategory %q is not a configured category", c.InitialCategory))
	}
	if c.InitialTheme != "" {
		if _, err := ParseTheme(c.InitialTheme); err != nil {
			problems = append(problems, err.Error())
		}
	}
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"scrub", c.Scrub},
		{"panScrub", c.PanScrub},
		{"switchDelay", c.SwitchDelay},
		{"revealDelay", c.RevealDelay},
		{"fadeDuration", c.FadeDuration},
		{"navDuration", c.NavDuration},
	} {
		if d.v < 0 {
			problems = append(problems, fmt.Sprintf("%s must not be negative", d.name))
		}
	}
	if c.ScrollScreens < 1 {
		problems = append(problems, "scrollScreens must be at least 1")
	}
	if c.MaxConcurrentLoads < 0 {
		problems = append(problems, "maxConcurrentLoads must not be negative")
	}
	for _, t := range []Theme{ThemeDark, ThemeLight} {
		if _, err := c.palette(t); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Layout returns the frame layout described by the config.
func (c Config) Layout() FrameLayout {
	return FrameLayout{
		Root:        c.AssetRoot,
		Ext:         c.Extension,
		DarkFolder:  c.ThemeFolders.Dark,
		LightFolder: c.ThemeFolders.Light,
	}
}

// category looks up a configured category by name.
func (c Config) category(name Category) (CategoryConfig, bool) {
	for _, cat := range c.Categories {
		if Category(cat.Name) == name {
			return cat, true
		}
	}
	return CategoryConfig{}, false
}

func (c Config) palette(t Theme) (Palette, error) {
	pc := c.Palettes.Dark
	if t == ThemeLight {
		pc = c.Palettes.Light
	}
	p, err := pc.Palette()
	if err != nil {
		return Palette{}, fmt.Errorf("%s %w", t, err)
	}
	return p, nil
}
