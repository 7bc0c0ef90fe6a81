package scrollreel

import "github.com/tanema/gween/ease"

// Navbar geometry in pixels.
const (
	navTopY         = 16 // docked-at-top offset from the window top
	navBottomMargin = 32 // docked-at-bottom offset from the window bottom
	navHeight       = 44
	navPadding      = 6
	navButtonW      = 140
	navButtonGap    = 6
	navToggleW      = 32
)

// NavPose is where the navigation bar rests.
type NavPose uint8

const (
	NavDockedBottom NavPose = iota // page at the very top
	NavDockedTop                   // page scrolled past the threshold
)

func (p NavPose) String() string {
	if p == NavDockedTop {
		return "top"
	}
	return "bottom"
}

// Navbar is the floating bar holding one button per category and the theme
// toggle. It docks at the bottom while the page is at offset 0 and at the
// top once the offset passes Threshold.
type Navbar struct {
	// X and Y are the bar's screen position. Y is tweened between poses.
	X, Y float64
	// Threshold is the scroll offset beyond which the bar docks at the top.
	Threshold float64
	// Duration is the dock transition time in seconds.
	Duration float32

	categories []Category
	pose       NavPose
	tween      *TweenGroup
	viewportH  float64
}

func newNavbar(categories []Category, threshold float64, duration float32) *Navbar {
	return &Navbar{
		Threshold:  threshold,
		Duration:   duration,
		categories: categories,
	}
}

// Pose returns the pose the bar is at or heading to.
func (n *Navbar) Pose() NavPose {
	return n.pose
}

// Width returns the bar width.
func (n *Navbar) Width() float64 {
	k := float64(len(n.categories))
	return 2*navPadding + k*navButtonW + k*navButtonGap + navToggleW
}

// layout positions the bar for a new window size. Without a running tween
// the bar snaps to its pose.
func (n *Navbar) layout(viewportW, viewportH float64) {
	n.viewportH = viewportH
	n.X = (viewportW - n.Width()) / 2
	if n.tween == nil || n.tween.Done {
		n.Y = n.poseY(n.pose)
	}
}

func (n *Navbar) poseY(p NavPose) float64 {
	if p == NavDockedTop {
		return navTopY
	}
	return n.viewportH - navBottomMargin - navHeight
}

// onScroll reacts to the global scroll trigger. It returns the transition
// tween when the pose changes, or nil.
func (n *Navbar) onScroll(u TriggerUpdate) *TweenGroup {
	switch {
	case u.Scroll > n.Threshold && n.pose != NavDockedTop:
		n.pose = NavDockedTop
	case u.Scroll == 0 && n.pose != NavDockedBottom:
		n.pose = NavDockedBottom
	default:
		return nil
	}
	n.tween.Stop()
	n.tween = TweenValue(&n.Y, n.poseY(n.pose), n.Duration, ease.OutQuad)
	return n.tween
}

// Bounds returns the bar's screen rectangle.
func (n *Navbar) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width(), Height: navHeight}
}

// ButtonRect returns the screen rectangle of category button i.
func (n *Navbar) ButtonRect(i int) Rect {
	return Rect{
		X:      n.X + navPadding + float64(i)*(navButtonW+navButtonGap),
		Y:      n.Y + navPadding,
		Width:  navButtonW,
		Height: navHeight - 2*navPadding,
	}
}

// ToggleRect returns the screen rectangle of the theme toggle.
func (n *Navbar) ToggleRect() Rect {
	k := float64(len(n.categories))
	return Rect{
		X:      n.X + navPadding + k*(navButtonW+navButtonGap),
		Y:      n.Y + navPadding,
		Width:  navToggleW,
		Height: navHeight - 2*navPadding,
	}
}

// hit resolves a click at screen (x, y) to a category button or the toggle.
func (n *Navbar) hit(x, y float64) (category Category, toggle, ok bool) {
	if n.ToggleRect().Contains(x, y) {
		return "", true, true
	}
	for i, c := range n.categories {
		if n.ButtonRect(i).Contains(x, y) {
			return c, false, true
		}
	}
	return "", false, false
}
