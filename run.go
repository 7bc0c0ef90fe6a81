package scrollreel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	ShowFPS    bool
	// Logger replaces the viewer's logger when non-nil.
	Logger *zap.Logger
}

// Run opens a resizable window and runs v until the window closes.
func Run(v *Viewer, cfg RunConfig) error {
	if cfg.Logger != nil {
		v.SetLogger(cfg.Logger)
	}
	v.ShowFPS = cfg.ShowFPS
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	return ebiten.RunGame(v)
}
