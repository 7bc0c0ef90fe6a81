package scrollreel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pageStepFrac is the share of the window height PageUp/PageDown/Space move.
const pageStepFrac = 0.9

// InputState holds the polled state of inputs for a single tick. Polling is
// kept apart from handling so scripted runs can feed the same values.
type InputState struct {
	// ScrollDelta is the scroll movement in pixels, positive downward.
	ScrollDelta float64

	ScrollHome  bool
	ScrollEnd   bool
	ToggleTheme bool
	// Category is a 1-based category shortcut, 0 for none.
	Category int

	Click          bool
	ClickX, ClickY float64
}

var categoryKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// pollInput reads this tick's keyboard, wheel and mouse state.
func pollInput(wheelStep, pageStep float64) InputState {
	var in InputState

	_, wy := ebiten.Wheel()
	in.ScrollDelta = -wy * wheelStep

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		in.ScrollDelta += wheelStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		in.ScrollDelta -= wheelStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		in.ScrollDelta += pageStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		in.ScrollDelta -= pageStep
	}
	in.ScrollHome = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	in.ScrollEnd = inpututil.IsKeyJustPressed(ebiten.KeyEnd)
	in.ToggleTheme = inpututil.IsKeyJustPressed(ebiten.KeyT)

	for i, k := range categoryKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Category = i + 1
			break
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click = true
		in.ClickX, in.ClickY = float64(x), float64(y)
	}
	return in
}

// processInput applies one tick of input. An injected state, when queued,
// replaces real input for that tick.
func (v *Viewer) processInput() {
	if v.processInjectedInput() {
		return
	}
	if !v.realInput {
		return
	}
	v.applyInput(pollInput(v.cfg.WheelStep, v.viewport.Height*pageStepFrac))
}

// applyInput turns an input snapshot into coordinator events.
func (v *Viewer) applyInput(in InputState) {
	if in.ScrollDelta != 0 {
		v.dispatch(event{kind: evScrollBy, scroll: in.ScrollDelta})
	}
	if in.ScrollHome {
		v.dispatch(event{kind: evScrollTo, scroll: 0, duration: scrollToDuration})
	}
	if in.ScrollEnd {
		v.dispatch(event{kind: evScrollTo, scroll: v.page.MaxScroll(), duration: scrollToDuration})
	}
	if in.ToggleTheme {
		v.dispatch(event{kind: evToggleTheme})
	}
	if in.Category > 0 && in.Category <= len(v.cfg.Categories) {
		v.dispatch(event{kind: evSelectCategory, category: Category(v.cfg.Categories[in.Category-1].Name)})
	}
	if in.Click {
		v.click(in.ClickX, in.ClickY)
	}
}

// click hit-tests the navbar at screen (x, y).
func (v *Viewer) click(x, y float64) {
	category, toggle, ok := v.navbar.hit(x, y)
	switch {
	case !ok:
	case toggle:
		v.dispatch(event{kind: evToggleTheme})
	default:
		v.dispatch(event{kind: evSelectCategory, category: category})
	}
}
