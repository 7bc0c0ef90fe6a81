package scrollreel

import "go.uber.org/zap"

// debugStats is the loader and mapper snapshot logged in debug mode.
type debugStats struct {
	state      State
	generation uint64
	loaded     int
	current    int
	timers     int
	tweens     int
}

func (v *Viewer) stats() debugStats {
	return debugStats{
		state:      v.state,
		generation: v.generation,
		loaded:     v.frames.Loaded(),
		current:    v.renderer.Current(),
		timers:     len(v.timers),
		tweens:     v.tweens.len(),
	}
}

// debugLog logs the stats when they differ from the previous tick's.
func (v *Viewer) debugLog() {
	s := v.stats()
	if s == v.lastStats {
		return
	}
	v.lastStats = s
	v.log.Debug("viewer stats",
		zap.Stringer("state", s.state),
		zap.Uint64("generation", s.generation),
		zap.Int("loaded", s.loaded),
		zap.Int("frame", s.current),
		zap.Int("timers", s.timers),
		zap.Int("tweens", s.tweens))
}
