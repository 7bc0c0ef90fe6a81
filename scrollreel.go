package scrollreel

import (
	"fmt"
	"strings"
)

// DefaultFrameCount is the number of frames in every category/theme set.
const DefaultFrameCount = 240

// NoFrame is the current-frame index before anything has been drawn.
const NoFrame = -1

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Category names a frame set, e.g. "Office Life".
type Category string

// Section returns the content-section token for the category: the lowercased
// first word ("Office Life" -> "office").
func (c Category) Section() string {
	fields := strings.Fields(string(c))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Theme selects the visual variant of a frame set.
type Theme uint8

const (
	ThemeDark  Theme = iota // dark frames, "dark-theme" class
	ThemeLight              // light frames, "light-theme" class
)

// ParseTheme accepts "dark", "light", or the folder names "Dark Theme" and
// "Light Theme" (case-insensitive).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "dark theme", "dark-theme":
		return ThemeDark, nil
	case "light", "light theme", "light-theme":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("unknown theme %q", s)
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Class returns the global visual class applied while the theme is active.
func (t Theme) Class() string {
	if t == ThemeLight {
		return "light-theme"
	}
	return "dark-theme"
}

// Icon returns the glyph shown on the theme toggle. It advertises the theme
// a click switches to.
func (t Theme) Icon() string {
	if t == ThemeLight {
		return "🌙"
	}
	return "☀️"
}

// State is the coordinator's position in the switch/load cycle.
type State uint8

const (
	StateIdle      State = iota // waiting for input
	StateSwitching              // sections fading out before a category swap
	StateLoading                // waiting for the first frame of a new set
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwitching:
		return "switching"
	case StateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// ViewerEventType identifies a notification emitted to an EventSink.
type ViewerEventType uint8

const (
	ViewerFrameDrawn      ViewerEventType = iota // a frame was painted onto the canvas
	ViewerReady                                  // the first frame of a set loaded
	ViewerLoadFailed                             // the first frame of a set failed to load
	ViewerCategoryChanged                        // the active category was swapped
	ViewerThemeChanged                           // the theme was toggled
)

// ViewerEvent carries notification data for an EventSink.
type ViewerEvent struct {
	Type       ViewerEventType
	Category   Category
	Theme      Theme
	Frame      int
	Generation uint64
	// Path is set for ViewerReady and ViewerLoadFailed.
	Path string
}

// EventSink receives viewer notifications. Used by the ECS bridge.
type EventSink interface {
	EmitEvent(event ViewerEvent)
}
