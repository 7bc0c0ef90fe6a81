package scrollreel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TriggerUpdate is passed to a trigger's OnUpdate callback.
type TriggerUpdate struct {
	// Progress is the (possibly smoothed) position within the trigger range, in [0, 1].
	Progress float64
	// Scroll is the page scroll offset at the time of the update.
	Scroll float64
}

// TriggerSpec describes a scroll-bound progress subscription.
type TriggerSpec struct {
	Name string
	// Start and End are evaluated on every update so they follow layout
	// changes such as a window resize.
	Start func() float64
	End   func() float64
	// Scrub is the catch-up time in seconds. Zero follows scroll 1:1.
	Scrub    float64
	OnUpdate func(TriggerUpdate)
}

// Subscription is a live trigger that can be torn down.
type Subscription interface {
	Kill()
}

// ScrollObserver maps page scroll to per-trigger progress callbacks.
type ScrollObserver interface {
	Observe(spec TriggerSpec) Subscription
	Update(scroll float64, dt float32)
}

// Trigger is a single subscription registered with ScrollTriggers.
type Trigger struct {
	spec     TriggerSpec
	progress float64
	target   float64
	scrub    *gween.Tween
	scroll   float64
	primed   bool
	killed   bool
}

// Kill stops the trigger. Its callback never fires again.
func (t *Trigger) Kill() {
	t.killed = true
	t.scrub = nil
}

// Progress returns the last reported progress.
func (t *Trigger) Progress() float64 {
	return t.progress
}

// Name returns the trigger's spec name.
func (t *Trigger) Name() string {
	return t.spec.Name
}

// update recomputes progress for scroll and fires OnUpdate when it changed.
func (t *Trigger) update(scroll float64, dt float32) {
	raw := rangeProgress(scroll, t.spec.Start(), t.spec.End())

	if t.spec.Scrub <= 0 {
		changed := !t.primed || scroll != t.scroll
		t.primed = true
		t.scroll = scroll
		t.progress = raw
		t.target = raw
		if changed {
			t.fire()
		}
		return
	}

	t.scroll = scroll
	if !t.primed {
		// First sample snaps so a freshly armed trigger reflects the
		// current scroll position immediately.
		t.primed = true
		t.progress = raw
		t.target = raw
		t.fire()
		return
	}
	if raw != t.target {
		t.target = raw
		t.scrub = gween.New(float32(t.progress), float32(raw), float32(t.spec.Scrub), ease.OutQuad)
	}
	if t.scrub == nil {
		return
	}
	val, done := t.scrub.Update(dt)
	next := float64(val)
	if done {
		next = t.target
		t.scrub = nil
	}
	if next != t.progress {
		t.progress = next
		t.fire()
	}
}

func (t *Trigger) fire() {
	if t.spec.OnUpdate != nil && !t.killed {
		t.spec.OnUpdate(TriggerUpdate{Progress: t.progress, Scroll: t.scroll})
	}
}

// ScrollTriggers is the default ScrollObserver.
type ScrollTriggers struct {
	triggers []*Trigger
}

// NewScrollTriggers creates an empty trigger registry.
func NewScrollTriggers() *ScrollTriggers {
	return &ScrollTriggers{}
}

// Observe registers a trigger. Nil Start/End default to 0.
func (s *ScrollTriggers) Observe(spec TriggerSpec) Subscription {
	if spec.Start == nil {
		spec.Start = zeroOffset
	}
	if spec.End == nil {
		spec.End = zeroOffset
	}
	t := &Trigger{spec: spec}
	s.triggers = append(s.triggers, t)
	return t
}

// Update advances every live trigger and drops killed ones.
func (s *ScrollTriggers) Update(scroll float64, dt float32) {
	live := s.triggers[:0]
	for _, t := range s.triggers {
		if t.killed {
			continue
		}
		t.update(scroll, dt)
		// A callback may have killed this or another trigger.
		if !t.killed {
			live = append(live, t)
		}
	}
	clear(s.triggers[len(live):])
	s.triggers = live
}

// Len returns the number of registered triggers, including ones killed since
// the last Update.
func (s *ScrollTriggers) Len() int {
	return len(s.triggers)
}

func zeroOffset() float64 { return 0 }

// rangeProgress maps scroll into [0, 1] across [start, end]. A degenerate
// range reports 0 before start and 1 from start on.
func rangeProgress(scroll, start, end float64) float64 {
	if end <= start {
		if scroll < start {
			return 0
		}
		return 1
	}
	return clamp01((scroll - start) / (end - start))
}

// FrameForProgress maps progress in [0, 1] to a frame index in
// [0, count-1] as floor(progress * (count-1)).
func FrameForProgress(progress float64, count int) int {
	if count <= 0 {
		return 0
	}
	idx := int(math.Floor(clamp01(progress) * float64(count-1)))
	return min(max(idx, 0), count-1)
}
