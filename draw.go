package scrollreel

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw composites the canvas, the active section, the navigation bar and
// the overlay onto screen, then captures any queued screenshots.
func (v *Viewer) Draw(screen *ebiten.Image) {
	pal := v.Palette()
	screen.Fill(pal.Background.toRGBA())

	v.drawCanvas(screen)
	v.drawSection(screen, pal)
	v.drawNavbar(screen, pal)
	v.drawOverlay(screen, pal)

	if v.ShowFPS {
		v.hud.draw(screen)
	}
	v.flushScreenshots(screen)
}

// drawCanvas places the canvas sticky at the top of the window while the
// scroll container is in view, then lets it scroll away.
func (v *Viewer) drawCanvas(screen *ebiten.Image) {
	if v.canvas == nil {
		return
	}
	y := math.Min(0, v.page.FrameEnd()-v.viewport.Y)
	if y <= -v.page.ViewportH {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, y)
	screen.DrawImage(v.canvas.Image(), op)
}

func (v *Viewer) drawSection(screen *ebiten.Image, pal Palette) {
	s := v.activeSection()
	if s == nil || s.Hidden || s.Alpha <= 0 {
		return
	}
	vw, vh := v.page.ViewportW, v.page.ViewportH
	top := v.page.SectionY(v.viewport.Y)
	screenRect := Rect{Width: vw, Height: vh}
	if !screenRect.Intersects(Rect{Y: top, Width: vw, Height: vh}) {
		return
	}

	title := TextBlock{Content: s.Title, Align: TextAlignCenter, Color: pal.Accent.WithAlpha(s.Alpha)}
	title.Draw(screen, vw/2, top+48)
	body := TextBlock{
		Content:   strings.Join(s.Body, "\n"),
		Align:     TextAlignCenter,
		WrapWidth: vw * 0.8,
		Color:     pal.Text.WithAlpha(s.Alpha),
	}
	body.Draw(screen, vw/2, top+48+2*uiLineHeight)

	if s.Strip == nil {
		return
	}
	for i, name := range s.Strip.Panels {
		r := s.Strip.PanelRect(i, top, vw, vh)
		if !screenRect.Intersects(r) {
			continue
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			pal.Panel.WithAlpha(s.Alpha).toRGBA(), false)
		label := TextBlock{Content: name, Align: TextAlignCenter, Color: pal.Text.WithAlpha(s.Alpha)}
		label.Draw(screen, r.X+r.Width/2, r.Y+r.Height/2-uiLineHeight/2)
	}
}

func (v *Viewer) drawNavbar(screen *ebiten.Image, pal Palette) {
	n := v.navbar
	b := n.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		pal.Nav.WithAlpha(0.92).toRGBA(), true)

	for i, c := range n.categories {
		r := n.ButtonRect(i)
		fg := pal.Text
		if c == v.category {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
				pal.NavActive.toRGBA(), true)
			fg = pal.Nav
		}
		label := TextBlock{Content: string(c), Align: TextAlignCenter, Color: fg}
		label.Draw(screen, r.X+r.Width/2, r.Y+(r.Height-uiLineHeight)/2)
	}
	drawThemeIcon(screen, n.ToggleRect(), v.theme, pal)
}

// drawThemeIcon draws the toggle glyph as shapes; the bitmap face has no
// emoji. Dark shows a sun, light shows a crescent moon.
func drawThemeIcon(screen *ebiten.Image, r Rect, t Theme, pal Palette) {
	cx, cy := float32(r.X+r.Width/2), float32(r.Y+r.Height/2)
	rad := float32(min(r.Width, r.Height) / 4)
	if t == ThemeDark {
		vector.DrawFilledCircle(screen, cx, cy, rad, pal.Accent.toRGBA(), true)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dx, dy := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(screen, cx+dx*rad*1.4, cy+dy*rad*1.4, cx+dx*rad*1.9, cy+dy*rad*1.9,
				1.5, pal.Accent.toRGBA(), true)
		}
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, rad*1.3, pal.Accent.toRGBA(), true)
	vector.DrawFilledCircle(screen, cx+rad*0.6, cy-rad*0.4, rad*1.1, pal.Nav.toRGBA(), true)
}

func (v *Viewer) drawOverlay(screen *ebiten.Image, pal Palette) {
	o := v.overlay
	if !o.Visible {
		return
	}
	vw, vh := v.page.ViewportW, v.page.ViewportH
	vector.DrawFilledRect(screen, 0, 0, float32(vw), float32(vh), pal.Background.WithAlpha(0.85).toRGBA(), false)

	fg := pal.Text
	if o.Failed {
		fg = pal.Error
	}
	tb := TextBlock{Content: o.Message(), Align: TextAlignCenter, WrapWidth: vw * 0.9, Color: fg}
	_, h := tb.Measure()
	tb.Draw(screen, vw/2, (vh-h)/2)
}
