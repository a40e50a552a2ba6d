package mathbird

import (
	"github.com/vovakirdan/mathbird/internal/core"
)

// selection is the outcome of a successful answer pick: which obstacle
// latched and which zone was hit.
type selection struct {
	obstacle *Obstacle
	zone     *AnswerZone
}

// resolveSelection scans obstacles in existence order and latches at most one
// answer per frame. A zone hit only counts on the obstacle the synchronizer
// currently associates with the locked question; hits on other obstacles are
// left for the fatal scan. The Answered latch is set here, before fatal
// collisions are computed, so a fresh selection is never read as a hit.
func resolveSelection(obstacles []*Obstacle, sync *Synchronizer, entity core.RectF) *selection {
	for _, o := range obstacles {
		if o.Answer == nil || o.Answer.Answered {
			continue
		}
		zone := o.CheckAnswerSelection(entity)
		if zone == nil {
			continue
		}
		if !sync.IsAssociated(o.ID) {
			continue
		}
		o.Answer.Answered = true
		return &selection{obstacle: o, zone: zone}
	}
	return nil
}

// resolveFatal reports whether the entity's box touches a killing surface.
// Plain obstacles kill on their inset walls. Unanswered answer-bearing
// obstacles kill on zone contact outside the corridor; once answered their
// gap is harmless. Ground contact is handled by the body's own integration.
func resolveFatal(obstacles []*Obstacle, entity core.RectF, floorY, inset float64) bool {
	for _, o := range obstacles {
		if o.Answer != nil {
			if !o.Answer.Answered && o.CollisionExcludingCorridor(entity) {
				return true
			}
			continue
		}
		top, bottom := o.BarrierBounds(floorY, inset)
		if entity.Intersects(top) || entity.Intersects(bottom) {
			return true
		}
	}
	return false
}
