package scrollreel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one with
// TweenValue and call Update(dt) each tick. The group writes values straight into the target fields.
//
// The Viewer keeps its own tween list; standalone users call Update themselves.
type TweenGroup struct {
	tweens  [4]*gween.Tween
	count   int
	fields  [4]*float64
	stopped bool
	Done    bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. After Stop, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.stopped {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the group where it is. The fields keep their last written values.
func (g *TweenGroup) Stop() {
	if g != nil {
		g.stopped = true
	}
}

// TweenValue creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// tweenSet is the list of running tween groups owned by a Viewer.
type tweenSet struct {
	groups []*TweenGroup
}

func (s *tweenSet) add(g *TweenGroup) *TweenGroup {
	s.groups = append(s.groups, g)
	return g
}

// update advances every group and drops finished ones.
func (s *tweenSet) update(dt float32) {
	live := s.groups[:0]
	for _, g := range s.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.groups[len(live):])
	s.groups = live
}

func (s *tweenSet) len() int {
	return len(s.groups)
}
