package scrollreel

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSurface is a Surface that records calls instead of drawing.
type recordingSurface struct {
	w, h    int
	clears  int
	draws   []Rect
	images  []*ebiten.Image
	resizes int
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}

func (s *recordingSurface) Clear() { s.clears++ }

func (s *recordingSurface) DrawImage(img *ebiten.Image, dst Rect) {
	s.draws = append(s.draws, dst)
	s.images = append(s.images, img)
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name           string
		cw, ch, iw, ih float64
		want           Rect
	}{
		{"wider canvas", 1600, 600, 800, 600, Rect{X: 0, Y: -300, Width: 1600, Height: 1200}},
		{"taller canvas", 600, 800, 800, 600, Rect{X: -233.33333333333331, Y: 0, Width: 1066.6666666666667, Height: 800}},
		{"same aspect", 1280, 720, 1920, 1080, Rect{X: 0, Y: 0, Width: 1280, Height: 720}},
		{"zero canvas", 0, 720, 1920, 1080, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverFit(tt.cw, tt.ch, tt.iw, tt.ih)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) ||
				!approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoverFitCoversAndCenters(t *testing.T) {
	sizes := [][2]float64{{1280, 720}, {720, 1280}, {1000, 1000}, {333, 777}}
	images := [][2]float64{{1920, 1080}, {1080, 1920}, {500, 500}, {64, 48}}
	for _, c := range sizes {
		for _, im := range images {
			r := CoverFit(c[0], c[1], im[0], im[1])
			if r.Width < c[0]-1e-9 || r.Height < c[1]-1e-9 {
				t.Errorf("canvas %v image %v: %+v does not cover", c, im, r)
			}
			if !approx(r.Width/r.Height, im[0]/im[1]) {
				t.Errorf("canvas %v image %v: aspect changed to %v", c, im, r.Width/r.Height)
			}
			// Overflow is split evenly on both sides.
			if !approx(r.X*2, c[0]-r.Width) || !approx(r.Y*2, c[1]-r.Height) {
				t.Errorf("canvas %v image %v: %+v not centered", c, im, r)
			}
			if r.X != 0 && r.Y != 0 {
				t.Errorf("canvas %v image %v: both axes overflow", c, im)
			}
		}
	}
}

func newTestRenderer(n int) (*Renderer, *FrameSet, *recordingSurface) {
	frames := NewFrameSet(n)
	surf := &recordingSurface{w: 160, h: 90}
	return NewRenderer(surf, frames), frames, surf
}

func TestRendererIdempotent(t *testing.T) {
	r, frames, surf := newTestRenderer(3)
	frames.Set(0, ebiten.NewImage(16, 9))

	if !r.Render(0) {
		t.Fatal("first Render(0) should paint")
	}
	if r.Render(0) {
		t.Error("second Render(0) should be a no-op")
	}
	if len(surf.draws) != 1 || surf.clears != 1 {
		t.Errorf("draws = %d clears = %d, want 1 and 1", len(surf.draws), surf.clears)
	}
	if r.Current() != 0 || r.Draws() != 1 {
		t.Errorf("current = %d draws = %d", r.Current(), r.Draws())
	}
}

func TestRendererSkipsMissingFrame(t *testing.T) {
	r, frames, surf := newTestRenderer(3)
	frames.Set(0, ebiten.NewImage(16, 9))
	r.Render(0)

	if r.Render(2) {
		t.Error("Render of an empty slot should be a no-op")
	}
	if r.Current() != 0 {
		t.Errorf("current = %d, want 0", r.Current())
	}
	if r.Render(-1) || r.Render(99) {
		t.Error("out-of-range Render should be a no-op")
	}
	if len(surf.draws) != 1 {
		t.Errorf("draws = %d, want 1", len(surf.draws))
	}
}

func TestRendererResetRepaints(t *testing.T) {
	r, frames, surf := newTestRenderer(2)
	frames.Set(0, ebiten.NewImage(16, 9))
	r.Render(0)
	r.Reset()
	if r.Current() != NoFrame {
		t.Fatalf("current = %d after Reset, want NoFrame", r.Current())
	}
	if !r.Render(0) {
		t.Error("Render(0) after Reset should paint")
	}
	if len(surf.draws) != 2 {
		t.Errorf("draws = %d, want 2", len(surf.draws))
	}
}

func TestRendererRedrawAfterResize(t *testing.T) {
	r, frames, surf := newTestRenderer(2)
	frames.Set(1, ebiten.NewImage(16, 9))
	r.Render(1)

	surf.Resize(90, 160)
	if !r.Redraw() {
		t.Fatal("Redraw should paint the current frame")
	}
	if r.Current() != 1 {
		t.Errorf("current = %d after Redraw, want 1", r.Current())
	}
	got := surf.draws[len(surf.draws)-1]
	want := CoverFit(90, 160, 16, 9)
	if got != want {
		t.Errorf("dst = %+v, want %+v", got, want)
	}
}

func TestRendererRedrawWithNothingDrawn(t *testing.T) {
	r, _, surf := newTestRenderer(2)
	if r.Redraw() {
		t.Error("Redraw with no current frame should be a no-op")
	}
	if len(surf.draws) != 0 {
		t.Errorf("draws = %d, want 0", len(surf.draws))
	}
}

func TestRendererOnDraw(t *testing.T) {
	r, frames, _ := newTestRenderer(2)
	frames.Set(0, ebiten.NewImage(4, 4))
	frames.Set(1, ebiten.NewImage(4, 4))
	var got []int
	r.onDraw = func(i int) { got = append(got, i) }

	r.Render(0)
	r.Render(1)
	r.Render(1)
	r.Redraw()

	want := []int{0, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("onDraw calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("onDraw calls = %v, want %v", got, want)
		}
	}
}

func TestFrameSetLoaded(t *testing.T) {
	s := NewFrameSet(4)
	img := ebiten.NewImage(1, 1)
	s.Set(0, img)
	s.Set(0, img)
	s.Set(3, img)
	if s.Set(4, img) {
		t.Error("Set out of range should fail")
	}
	if s.Loaded() != 2 {
		t.Errorf("Loaded = %d, want 2", s.Loaded())
	}
	s.Reset()
	if s.Loaded() != 0 || s.Get(0) != nil || s.Cap() != 4 {
		t.Errorf("after Reset: loaded %d cap %d", s.Loaded(), s.Cap())
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("size = %dx%d, want 1x1", w, h)
	}
	c.Resize(64, 32)
	if w, h := c.Size(); w != 64 || h != 32 {
		t.Errorf("size = %dx%d, want 64x32", w, h)
	}
	b := c.Image().Bounds()
	if b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("image bounds = %v", b)
	}
	c.DrawImage(ebiten.NewImage(8, 8), Rect{Width: 64, Height: 64})
	c.Dispose()
}
