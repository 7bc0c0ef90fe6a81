package scrollreel

import "testing"

func TestResolveFramePath(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		theme    string
		index    int
		want     string
	}{
		{"first", "Office Life", "Dark Theme", 1, "public/img/Office Life/Dark Theme/ezgif-frame-001.jpg"},
		{"two digits", "College Life", "Light Theme", 42, "public/img/College Life/Light Theme/ezgif-frame-042.jpg"},
		{"last", "Office Life", "Dark Theme", 240, "public/img/Office Life/Dark Theme/ezgif-frame-240.jpg"},
		{"unknown category", "MissingCat", "Dark Theme", 1, "public/img/MissingCat/Dark Theme/ezgif-frame-001.jpg"},
		{"four digits", "Office Life", "Dark Theme", 1000, "public/img/Office Life/Dark Theme/ezgif-frame-1000.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFramePath(DefaultAssetRoot, tt.category, tt.theme, tt.index, DefaultExtension)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrameLayoutThemeFolders(t *testing.T) {
	var l FrameLayout
	if got := l.ThemeFolder(ThemeDark); got != "Dark Theme" {
		t.Errorf("dark = %q", got)
	}
	if got := l.ThemeFolder(ThemeLight); got != "Light Theme" {
		t.Errorf("light = %q", got)
	}

	l = FrameLayout{Root: "assets", Ext: "webp", DarkFolder: "night", LightFolder: "day"}
	if got, want := l.Path("Office Life", ThemeLight, 7), "assets/Office Life/day/ezgif-frame-007.webp"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestConfigLayoutMatchesDefaults(t *testing.T) {
	l := DefaultConfig().Layout()
	got := l.Path("Office Life", ThemeDark, 1)
	want := ResolveFramePath("public/img", "Office Life", "Dark Theme", 1, "jpg")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
