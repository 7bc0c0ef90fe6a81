package scrollreel

// CoverFit returns the rectangle an image of imgW x imgH occupies when scaled
// uniformly to cover a canvas of canvasW x canvasH. When the canvas is
// relatively wider the image spans the full width and is centered vertically;
// otherwise it spans the full height and is centered horizontally. The
// overflow is cropped symmetrically; the result never letterboxes.
func CoverFit(canvasW, canvasH, imgW, imgH float64) Rect {
	if canvasW <= 0 || canvasH <= 0 || imgW <= 0 || imgH <= 0 {
		return Rect{}
	}
	canvasAspect := canvasW / canvasH
	imgAspect := imgW / imgH

	if canvasAspect > imgAspect {
		h := canvasW / imgAspect
		return Rect{X: 0, Y: (canvasH - h) / 2, Width: canvasW, Height: h}
	}
	w := canvasH * imgAspect
	return Rect{X: (canvasW - w) / 2, Y: 0, Width: w, Height: canvasH}
}

// Renderer paints frames from a FrameSet onto a Surface.
type Renderer struct {
	surface Surface
	frames  *FrameSet
	current int
	draws   int

	// onDraw, when set, is called after every paint.
	onDraw func(index int)
}

// NewRenderer creates a renderer with nothing drawn yet.
func NewRenderer(surface Surface, frames *FrameSet) *Renderer {
	return &Renderer{surface: surface, frames: frames, current: NoFrame}
}

// Render paints the frame at index. It is a no-op if that frame is not loaded
// or is already the current frame. Returns true if a paint happened.
func (r *Renderer) Render(index int) bool {
	if index == r.current || r.frames.Get(index) == nil {
		return false
	}
	r.current = index
	r.paint()
	return true
}

// Redraw repaints the current frame regardless of idempotence, for use after
// the surface was resized. The current index does not change.
func (r *Renderer) Redraw() bool {
	if r.frames.Get(r.current) == nil {
		return false
	}
	r.paint()
	return true
}

// Reset forgets the current frame so the next Render always paints.
func (r *Renderer) Reset() {
	r.current = NoFrame
}

// Current returns the index of the last painted frame, or NoFrame.
func (r *Renderer) Current() int {
	return r.current
}

// Draws returns the number of paints performed so far.
func (r *Renderer) Draws() int {
	return r.draws
}

func (r *Renderer) paint() {
	img := r.frames.Get(r.current)
	b := img.Bounds()
	w, h := r.surface.Size()
	dst := CoverFit(float64(w), float64(h), float64(b.Dx()), float64(b.Dy()))

	r.surface.Clear()
	r.surface.DrawImage(img, dst)
	r.draws++
	if r.onDraw != nil {
		r.onDraw(r.current)
	}
}
