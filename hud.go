package scrollreel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the stats widget re-renders, in seconds.
const hudRefresh = 0.5

// hud is the corner widget showing FPS, TPS and loader progress. It is
// re-rendered into its own image every hudRefresh seconds.
type hud struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func (h *hud) update(dt float64, s debugStats, frameCount int) {
	h.elapsed += dt
	if h.img != nil && h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe %d  %d/%d\ngen %d %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.current, s.loaded, frameCount,
		s.generation, s.state)
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.text == "" {
		return
	}
	if h.img == nil {
		// 160x68 fits four DebugPrint lines.
		h.img = ebiten.NewImage(160, 68)
	}
	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
	screen.DrawImage(h.img, nil)
}
