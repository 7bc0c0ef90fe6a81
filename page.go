package scrollreel

// Page is the virtual document the viewport scrolls through. From the top:
// the scroll container that drives the frame scrub, then the active
// category's content section. A category with a pan strip pins its section
// for StripWidth extra pixels of scroll.
type Page struct {
	ViewportW, ViewportH float64
	// ScrollScreens is the container height in viewport heights.
	ScrollScreens float64
	// StripWidth is the full width of the pan strip, or 0 when the active
	// category has none.
	StripWidth float64
}

// ContainerHeight returns the height of the frame-scrub container.
func (p Page) ContainerHeight() float64 {
	return max(p.ScrollScreens*p.ViewportH, p.ViewportH)
}

// FrameStart is the scroll offset at which the container top meets the
// viewport top.
func (p Page) FrameStart() float64 {
	return 0
}

// FrameEnd is the scroll offset at which the container bottom meets the
// viewport bottom.
func (p Page) FrameEnd() float64 {
	return max(p.ContainerHeight()-p.ViewportH, 0)
}

// SectionTop returns the document offset of the content section.
func (p Page) SectionTop() float64 {
	return p.ContainerHeight()
}

// PinStart returns the scroll offset at which the pan strip pins.
func (p Page) PinStart() float64 {
	return p.SectionTop()
}

// PinEnd returns the scroll offset at which the pan strip unpins.
func (p Page) PinEnd() float64 {
	return p.SectionTop() + p.StripWidth
}

// Height returns the full document height including pin spacing.
func (p Page) Height() float64 {
	return p.ContainerHeight() + p.ViewportH + p.StripWidth
}

// MaxScroll returns the largest valid scroll offset.
func (p Page) MaxScroll() float64 {
	return max(p.Height()-p.ViewportH, 0)
}

// SectionY returns the screen Y of the content section top at the given
// scroll offset, honoring the pin.
func (p Page) SectionY(scroll float64) float64 {
	y := p.SectionTop() - scroll
	if p.StripWidth <= 0 || scroll < p.PinStart() {
		return y
	}
	if scroll <= p.PinEnd() {
		return 0
	}
	return -(scroll - p.PinEnd())
}
