package scrollreel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the drawing target the Renderer paints frames onto.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear()
	DrawImage(img *ebiten.Image, dst Rect)
}

// Canvas is a persistent offscreen image the size of the window. Frames are
// painted onto it only when the frame index changes; Viewer.Draw composites
// it to the screen every tick.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a canvas of the given size. Sizes below 1 are raised to 1.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// DrawImage scales img into dst.
func (c *Canvas) DrawImage(img *ebiten.Image, dst Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.image.DrawImage(img, &op)
}

// Resize reallocates the canvas. Contents are discarded, as with an HTML
// canvas whose width or height is assigned.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == c.w && h == c.h {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(w, h)
	c.w, c.h = w, h
}

// Dispose deallocates the underlying image. The Canvas should not be used
// after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
