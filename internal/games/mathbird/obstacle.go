package mathbird

import (
	"math/rand"

	"github.com/vovakirdan/mathbird/internal/config"
	"github.com/vovakirdan/mathbird/internal/core"
	"github.com/vovakirdan/mathbird/internal/questions"
)

// ObstacleID identifies an obstacle within a single run. IDs are assigned at
// spawn time and never reused while the obstacle is in flight.
type ObstacleID int

// AnswerZone is a selectable region inside an obstacle's gap. Exactly one of
// the two zones on an obstacle carries the correct answer.
type AnswerZone struct {
	Bounds  core.RectF
	Value   int
	Correct bool
	Upper   bool
}

// AnswerPayload is the question context attached to an answer-bearing
// obstacle. Answered is a one-shot latch: once set, the obstacle's zones no
// longer select or collide.
type AnswerPayload struct {
	Question *questions.Question
	Upper    AnswerZone
	Lower    AnswerZone
	Answered bool
}

// Obstacle is a moving gated barrier pair. The gap is defined by its vertical
// center and height. Plain obstacles (Answer == nil) kill on wall contact;
// answer-bearing obstacles replace wall collision inside the gap with their
// two answer zones and the pass-through corridor between them.
type Obstacle struct {
	ID         ObstacleID
	X          float64
	Width      float64
	GapCenterY float64
	GapH       float64
	Passed     bool
	Answer     *AnswerPayload
}

// GapTop returns the y coordinate of the top of the gap.
func (o *Obstacle) GapTop() float64 {
	return o.GapCenterY - o.GapH/2
}

// GapBottom returns the y coordinate of the bottom of the gap.
func (o *Obstacle) GapBottom() float64 {
	return o.GapCenterY + o.GapH/2
}

// Advance moves the obstacle left by dx playfield units, zones included.
func (o *Obstacle) Advance(dx float64) {
	o.X -= dx
	if o.Answer != nil {
		o.Answer.Upper.Bounds.X -= dx
		o.Answer.Lower.Bounds.X -= dx
	}
}

// BarrierBounds returns the two wall rectangles (top wall from the playfield
// top down to the gap, bottom wall from the gap down to the floor), each
// inset horizontally so near-misses do not register.
func (o *Obstacle) BarrierBounds(floorY, inset float64) (top, bottom core.RectF) {
	w := o.Width - 2*inset
	if w < 0 {
		w = 0
	}
	top = core.NewRectF(o.X+inset, 0, w, o.GapTop())
	bottom = core.NewRectF(o.X+inset, o.GapBottom(), w, floorY-o.GapBottom())
	return top, bottom
}

// IsOffscreen reports whether the obstacle has fully left the playfield.
func (o *Obstacle) IsOffscreen() bool {
	return o.X+o.Width <= 0
}

// CheckPassed returns true exactly once: the first call where entityX is past
// the obstacle's right edge. This is the pass-scoring trigger, unrelated to
// answer correctness.
func (o *Obstacle) CheckPassed(entityX float64) bool {
	if o.Passed || entityX <= o.X+o.Width {
		return false
	}
	o.Passed = true
	return true
}

// CorridorBounds returns the navigable band between the two answer zones.
// Zero rect for plain obstacles.
func (o *Obstacle) CorridorBounds() core.RectF {
	if o.Answer == nil {
		return core.RectF{}
	}
	top := o.Answer.Upper.Bounds.Bottom()
	return core.NewRectF(o.X, top, o.Width, o.Answer.Lower.Bounds.Y-top)
}

// CheckAnswerSelection returns the zone the entity's box overlaps, or nil.
// The corridor is tested first: an overlap that sits entirely inside the
// corridor band selects nothing, which is what lets the entity fly straight
// through the gap without answering.
func (o *Obstacle) CheckAnswerSelection(b core.RectF) *AnswerZone {
	if o.Answer == nil {
		return nil
	}
	if b.Right() <= o.X || b.X >= o.X+o.Width {
		return nil
	}

	corridorTop := o.Answer.Upper.Bounds.Bottom()
	corridorBottom := o.Answer.Lower.Bounds.Y
	if b.Y >= corridorTop && b.Bottom() <= corridorBottom {
		return nil
	}

	if b.Intersects(o.Answer.Upper.Bounds) {
		return &o.Answer.Upper
	}
	if b.Intersects(o.Answer.Lower.Bounds) {
		return &o.Answer.Lower
	}
	return nil
}

// CollisionExcludingCorridor reports whether the entity overlaps either
// answer zone while not inside the corridor. Answer-bearing obstacles use
// this instead of wall collision for their gap region: the zones substitute
// for solid barriers.
func (o *Obstacle) CollisionExcludingCorridor(b core.RectF) bool {
	return o.CheckAnswerSelection(b) != nil
}

// zoneRects computes where the two answer zones sit for the current gap.
// Zone height is the touch-friendly size capped so the corridor between the
// zones keeps at least the configured minimum height.
func (o *Obstacle) zoneRects(zones config.MathbirdZones) (upper, lower core.RectF) {
	zoneH := core.MinF(zones.TouchSize, (o.GapH-zones.MinCorridor-zones.Padding)/2)
	if zoneH < 1 {
		zoneH = 1
	}

	upperTop := o.GapTop() + zones.Padding/2
	lowerTop := o.GapBottom() - zones.Padding/2 - zoneH

	upper = core.NewRectF(o.X, upperTop, o.Width, zoneH)
	lower = core.NewRectF(o.X, lowerTop, o.Width, zoneH)
	return upper, lower
}

// attachAnswer builds the two answer zones for the locked question and
// fastens them inside the gap. Which zone carries the correct answer is a
// uniform coin flip; the wrong value comes from the category-aware
// distractor heuristics.
func (o *Obstacle) attachAnswer(q *questions.Question, zones config.MathbirdZones, rng *rand.Rand) {
	upperRect, lowerRect := o.zoneRects(zones)

	wrong := questions.Distractor(q, rng)
	correctUpper := rng.Intn(2) == 0

	upperVal, lowerVal := wrong, q.Answer
	if correctUpper {
		upperVal, lowerVal = q.Answer, wrong
	}

	o.Answer = &AnswerPayload{
		Question: q,
		Upper: AnswerZone{
			Bounds:  upperRect,
			Value:   upperVal,
			Correct: correctUpper,
			Upper:   true,
		},
		Lower: AnswerZone{
			Bounds:  lowerRect,
			Value:   lowerVal,
			Correct: !correctUpper,
		},
	}
}
