package scrollreel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport holds the page scroll offset and the visible window size.
type Viewport struct {
	// Y is the scroll offset from the top of the page.
	Y float64
	// Width and Height are the window size in pixels.
	Width, Height float64
	// MaxY is the largest valid scroll offset.
	MaxY float64

	scrollTween  *gween.Tween
	scrollTarget float64
}

// ScrollBy moves the offset by dy immediately, cancelling any ScrollTo.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.Y += dy
	v.clamp()
}

// SetScroll jumps to y immediately, cancelling any ScrollTo.
func (v *Viewport) SetScroll(y float64) {
	v.scrollTween = nil
	v.Y = y
	v.clamp()
}

// ScrollTo animates the offset to y over duration seconds.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = min(max(y, 0), v.MaxY)
	v.scrollTarget = y
	v.scrollTween = gween.New(float32(v.Y), float32(y), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// SetBounds updates the maximum scroll offset and clamps the current one.
func (v *Viewport) SetBounds(maxY float64) {
	v.MaxY = max(maxY, 0)
	v.clamp()
}

// update advances a running ScrollTo. Called once per tick.
func (v *Viewport) update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.Update(dt)
	v.Y = float64(val)
	if done {
		v.Y = v.scrollTarget
		v.scrollTween = nil
	}
	v.clamp()
}

func (v *Viewport) clamp() {
	if v.Y < 0 {
		v.Y = 0
	}
	if v.Y > v.MaxY {
		v.Y = v.MaxY
	}
}
