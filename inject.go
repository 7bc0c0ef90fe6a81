package scrollreel

import "fmt"

// InjectInput queues a synthetic input state. One queued state is consumed
// per Update in place of real input.
func (v *Viewer) InjectInput(in InputState) {
	v.injectQueue = append(v.injectQueue, in)
}

// InjectScroll queues a scroll of dy pixels spread evenly over frames ticks.
// Minimum frames is 1.
func (v *Viewer) InjectScroll(dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := dy / float64(frames)
	for i := 0; i < frames; i++ {
		v.InjectInput(InputState{ScrollDelta: step})
	}
}

// InjectClick queues a left click at the given screen coordinates.
func (v *Viewer) InjectClick(x, y float64) {
	v.InjectInput(InputState{Click: true, ClickX: x, ClickY: y})
}

// InjectKey queues a key action by name: "theme", "home", "end", or a
// category shortcut "1".."9".
func (v *Viewer) InjectKey(name string) error {
	var in InputState
	switch name {
	case "theme":
		in.ToggleTheme = true
	case "home":
		in.ScrollHome = true
	case "end":
		in.ScrollEnd = true
	default:
		if len(name) != 1 || name[0] < '1' || name[0] > '9' {
			return fmt.Errorf("inject key: unknown key %q", name)
		}
		in.Category = int(name[0] - '0')
	}
	v.InjectInput(in)
	return nil
}

// processInjectedInput pops one state from the inject queue and applies it.
// Returns true if a state was consumed (real input should be skipped).
func (v *Viewer) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	in := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.applyInput(in)
	return true
}
