package mathbird

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mathbird/internal/config"
	"github.com/vovakirdan/mathbird/internal/core"
	"github.com/vovakirdan/mathbird/internal/questions"
)

func testZones() config.MathbirdZones {
	return config.MathbirdZones{TouchSize: 44, MinCorridor: 40, Padding: 10}
}

func testQuestion() *questions.Question {
	return &questions.Question{
		ID:       1,
		Category: questions.CategoryMul,
		Text:     "7 × 8 = ?",
		Answer:   56,
		A:        7,
		B:        8,
	}
}

// answerObstacle builds an answer-bearing obstacle with deterministic zone
// placement for geometry tests.
func answerObstacle(id ObstacleID, x, gapCenter, gapH float64) *Obstacle {
	o := &Obstacle{ID: id, X: x, Width: 70, GapCenterY: gapCenter, GapH: gapH}
	o.attachAnswer(testQuestion(), testZones(), rand.New(rand.NewSource(1)))
	return o
}

func TestObstacleCheckPassedOneShot(t *testing.T) {
	o := &Obstacle{X: 100, Width: 70, GapCenterY: 300, GapH: 150}

	if o.CheckPassed(100) {
		t.Error("entity left of the right edge should not count as passed")
	}
	if o.CheckPassed(170) {
		t.Error("entity exactly at the right edge should not count as passed")
	}
	if !o.CheckPassed(171) {
		t.Error("first call past the right edge should report passed")
	}
	for i := 0; i < 5; i++ {
		if o.CheckPassed(200 + float64(i)) {
			t.Fatal("passed must only ever be reported once")
		}
	}
}

func TestObstacleIsOffscreen(t *testing.T) {
	o := &Obstacle{X: 1, Width: 70}
	if o.IsOffscreen() {
		t.Error("obstacle with visible width should not be offscreen")
	}
	o.X = -70
	if !o.IsOffscreen() {
		t.Error("obstacle with right edge at 0 should be offscreen")
	}
}

func TestObstacleBarrierBoundsInset(t *testing.T) {
	o := &Obstacle{X: 100, Width: 70, GapCenterY: 300, GapH: 150}

	top, bottom := o.BarrierBounds(550, 4)

	if top.X != 104 || top.Y != 0 || top.W != 62 || top.H != 225 {
		t.Errorf("unexpected top wall %+v", top)
	}
	if bottom.X != 104 || bottom.Y != 375 || bottom.W != 62 || bottom.H != 175 {
		t.Errorf("unexpected bottom wall %+v", bottom)
	}
}

func TestObstacleAdvanceMovesZones(t *testing.T) {
	o := answerObstacle(1, 400, 300, 150)
	upperX := o.Answer.Upper.Bounds.X
	lowerX := o.Answer.Lower.Bounds.X

	o.Advance(3)

	if o.X != 397 {
		t.Errorf("advance should move the obstacle left, got %f", o.X)
	}
	if o.Answer.Upper.Bounds.X != upperX-3 || o.Answer.Lower.Bounds.X != lowerX-3 {
		t.Error("zones must move with the obstacle")
	}
}

func TestAnswerZoneInvariants(t *testing.T) {
	zones := testZones()

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for gapH := 150.0; gapH <= 210; gapH += 15 {
			o := &Obstacle{X: 400, Width: 70, GapCenterY: 300, GapH: gapH}
			o.attachAnswer(testQuestion(), zones, rng)

			up := o.Answer.Upper
			lo := o.Answer.Lower

			if up.Correct == lo.Correct {
				t.Fatalf("seed %d gap %f: exactly one zone must be correct", seed, gapH)
			}
			if up.Bounds.Intersects(lo.Bounds) {
				t.Fatalf("seed %d gap %f: zones overlap: %+v / %+v", seed, gapH, up.Bounds, lo.Bounds)
			}
			corridor := lo.Bounds.Y - up.Bounds.Bottom()
			if corridor < zones.MinCorridor {
				t.Fatalf("seed %d gap %f: corridor %f below minimum %f", seed, gapH, corridor, zones.MinCorridor)
			}
			if up.Bounds.Y < o.GapTop() || lo.Bounds.Bottom() > o.GapBottom() {
				t.Fatalf("seed %d gap %f: zones escape the gap", seed, gapH)
			}
			if !up.Upper || lo.Upper {
				t.Fatalf("seed %d gap %f: position tags wrong", seed, gapH)
			}

			correct, wrong := up, lo
			if lo.Correct {
				correct, wrong = lo, up
			}
			if correct.Value != 56 {
				t.Fatalf("seed %d gap %f: correct zone carries %d", seed, gapH, correct.Value)
			}
			if wrong.Value == 56 || wrong.Value < 0 {
				t.Fatalf("seed %d gap %f: bad distractor %d", seed, gapH, wrong.Value)
			}
		}
	}
}

func TestCorridorTransitSelectsNothing(t *testing.T) {
	o := answerObstacle(1, 100, 300, 150)

	// Fully inside the corridor band, horizontally inside the column.
	bird := core.NewRectF(80, 290, 34, 24)

	if z := o.CheckAnswerSelection(bird); z != nil {
		t.Errorf("corridor transit should select nothing, got zone %+v", z)
	}
	if o.CollisionExcludingCorridor(bird) {
		t.Error("corridor transit should not collide")
	}
}

func TestZoneSelection(t *testing.T) {
	o := answerObstacle(1, 100, 300, 150)
	// Gap 150 at center 300: upper zone spans [230,274], lower [326,370].

	upper := core.NewRectF(80, 260, 34, 24)
	if z := o.CheckAnswerSelection(upper); z == nil || !z.Upper {
		t.Errorf("box straddling the upper zone should select it, got %+v", z)
	}

	lower := core.NewRectF(80, 320, 34, 24)
	if z := o.CheckAnswerSelection(lower); z == nil || z.Upper {
		t.Errorf("box straddling the lower zone should select it, got %+v", z)
	}

	outside := core.NewRectF(500, 260, 34, 24)
	if z := o.CheckAnswerSelection(outside); z != nil {
		t.Errorf("box outside the column should select nothing, got %+v", z)
	}
}

func TestWallBandOfAnswerObstacleIsInert(t *testing.T) {
	o := answerObstacle(1, 100, 300, 150)

	// Inside the column but above the gap: no zone, no collision. The zones
	// are the only deadly surface an answer-bearing obstacle exposes.
	bird := core.NewRectF(80, 200, 34, 24)

	if z := o.CheckAnswerSelection(bird); z != nil {
		t.Errorf("wall band should select nothing, got %+v", z)
	}
	if o.CollisionExcludingCorridor(bird) {
		t.Error("wall band of an answer-bearing obstacle should not collide")
	}
}

func TestPlainObstacleHasNoSelection(t *testing.T) {
	o := &Obstacle{X: 100, Width: 70, GapCenterY: 300, GapH: 150}

	bird := core.NewRectF(80, 290, 34, 24)
	if o.CheckAnswerSelection(bird) != nil {
		t.Error("plain obstacle should never select a zone")
	}
	if o.CollisionExcludingCorridor(bird) {
		t.Error("plain obstacle should never zone-collide")
	}
}
