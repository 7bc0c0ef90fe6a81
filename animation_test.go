package scrollreel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.5 {
		t.Errorf("v = %f, want ~100", v)
	}
}

func TestTweenValueInterpolates(t *testing.T) {
	alpha := 1.0
	tw := TweenValue(&alpha, 0.0, 1.0, ease.Linear)

	// Halfway through.
	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(alpha-0.5) > 0.05 {
		t.Errorf("alpha = %f, want ~0.5 at halfway", alpha)
	}

	// Finish.
	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(alpha) > 0.01 {
		t.Errorf("alpha = %f, want ~0.0", alpha)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	y := 0.0
	g := TweenValue(&y, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupStop(t *testing.T) {
	y := 0.0
	g := TweenValue(&y, 100, 1.0, ease.Linear)
	g.Update(0.25)
	saved := y

	g.Stop()
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after Stop")
	}
	if y != saved {
		t.Errorf("y changed to %f after Stop, want %f", y, saved)
	}
}

func TestTweenGroupStopNil(t *testing.T) {
	var g *TweenGroup
	g.Stop() // must not panic
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutQuad at the midpoint should differ.
	var l, q float64
	gL := TweenValue(&l, 100, 1.0, ease.Linear)
	gQ := TweenValue(&q, 100, 1.0, ease.OutQuad)

	gL.Update(0.5)
	gQ.Update(0.5)

	// OutQuad should be ahead of linear at midpoint.
	if q-l < 1.0 {
		t.Errorf("OutQuad should lead linear at midpoint: linear=%f outQuad=%f", l, q)
	}
}

func TestTweenSetDropsFinished(t *testing.T) {
	var a, b float64
	var s tweenSet
	s.add(TweenValue(&a, 1, 0.5, ease.Linear))
	s.add(TweenValue(&b, 1, 1.0, ease.Linear))

	s.update(0.5)
	if s.len() != 1 {
		t.Fatalf("len = %d after first finishes, want 1", s.len())
	}
	s.update(0.5)
	if s.len() != 0 {
		t.Fatalf("len = %d after both finish, want 0", s.len())
	}
	if math.Abs(a-1) > 0.01 || math.Abs(b-1) > 0.01 {
		t.Errorf("a, b = %f, %f, want 1, 1", a, b)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)

	// Warm up; first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
