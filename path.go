package scrollreel

import (
	"fmt"
	"path"
)

const (
	// DefaultAssetRoot is the directory frame sets live under.
	DefaultAssetRoot = "public/img"
	// DefaultExtension is the frame image file extension.
	DefaultExtension = "jpg"

	framePrefix = "ezgif-frame-"
)

// FrameLayout resolves frame identifiers to slash-separated resource paths.
type FrameLayout struct {
	Root string
	Ext  string
	// DarkFolder and LightFolder name the theme directories. Empty values
	// fall back to "Dark Theme" and "Light Theme".
	DarkFolder  string
	LightFolder string
}

// ThemeFolder returns the directory name for the given theme.
func (l FrameLayout) ThemeFolder(t Theme) string {
	if t == ThemeLight {
		if l.LightFolder != "" {
			return l.LightFolder
		}
		return "Light Theme"
	}
	if l.DarkFolder != "" {
		return l.DarkFolder
	}
	return "Dark Theme"
}

// Path returns the location of the 1-based frame index for category and theme.
func (l FrameLayout) Path(category Category, theme Theme, index int) string {
	return ResolveFramePath(l.Root, category, l.ThemeFolder(theme), index, l.Ext)
}

// ResolveFramePath builds {root}/{category}/{theme}/ezgif-frame-NNN.{ext}.
// The index is zero-padded to three digits. Inputs are not validated: an
// unknown category simply yields a path that fails to load.
func ResolveFramePath(root string, category Category, themeFolder string, index int, ext string) string {
	name := fmt.Sprintf("%s%03d.%s", framePrefix, index, ext)
	return path.Join(root, string(category), themeFolder, name)
}
