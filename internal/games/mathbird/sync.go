package mathbird

import (
	"github.com/vovakirdan/mathbird/internal/questions"
)

// Synchronizer keeps exactly one question locked for display and binds it to
// exactly one in-flight obstacle: the unanswered answer-bearing obstacle
// closest ahead of the entity. Obstacles spawned under an earlier question
// keep referencing that question; only an interaction with the currently
// associated obstacle advances the lock.
type Synchronizer struct {
	source   questions.Source
	current  *questions.Question
	assocID  ObstacleID
	hasAssoc bool
}

// NewSynchronizer creates a synchronizer drawing from src. A nil source is
// allowed; no question can ever be locked then and spawning stays refused.
func NewSynchronizer(src questions.Source) *Synchronizer {
	return &Synchronizer{source: src}
}

// Reset drops the locked question and the association, keeping the source.
func (s *Synchronizer) Reset() {
	s.current = nil
	s.clearAssociation()
}

// Current returns the locked question, or nil when none is locked.
func (s *Synchronizer) Current() *questions.Question {
	return s.current
}

// HasQuestion reports whether a question is currently locked. Spawning an
// answer-bearing obstacle is only permitted while this is true.
func (s *Synchronizer) HasQuestion() bool {
	return s.current != nil
}

// LockQuestion makes q the displayed question and clears any prior obstacle
// association.
func (s *Synchronizer) LockQuestion(q *questions.Question) {
	s.current = q
	s.clearAssociation()
}

// restore forces the lock and association from snapshot primitives. The
// question is restored by identity only; its content is gone, so a restored
// run is for state comparison, not for resuming the same question sequence.
func (s *Synchronizer) restore(questionID int, assocID ObstacleID, hasAssoc bool) {
	switch {
	case questionID == 0:
		s.current = nil
	case s.current == nil || s.current.ID != questionID:
		s.current = &questions.Question{ID: questionID}
	}
	s.assocID = assocID
	s.hasAssoc = hasAssoc
}

// LockNext pulls the next question from the source and locks it. Returns
// whether the locked question changed.
func (s *Synchronizer) LockNext() bool {
	var next *questions.Question
	if s.source != nil {
		next = s.source.Next()
	}
	if next == s.current {
		return false
	}
	s.LockQuestion(next)
	return true
}

// RecomputeClosestAssociation re-evaluates the association against the
// current obstacle positions. Among unanswered answer-bearing obstacles
// strictly ahead of the entity, the one with the smallest x distance wins.
// With no candidate the association is cleared, which is not an error.
func (s *Synchronizer) RecomputeClosestAssociation(obstacles []*Obstacle, entityX float64) {
	var best *Obstacle
	for _, o := range obstacles {
		if o.Answer == nil || o.Answer.Answered {
			continue
		}
		if o.X <= entityX {
			continue
		}
		if best == nil || o.X < best.X {
			best = o
		}
	}

	if best == nil {
		s.clearAssociation()
		return
	}
	s.assocID = best.ID
	s.hasAssoc = true
}

// IsAssociated reports whether id is the current association target.
func (s *Synchronizer) IsAssociated(id ObstacleID) bool {
	return s.hasAssoc && s.assocID == id
}

// HandleInteraction records that an answer was resolved on the given
// obstacle. If it was the associated one, the synchronizer advances to a new
// locked question from the source and reports the change; otherwise this is
// a no-op.
func (s *Synchronizer) HandleInteraction(id ObstacleID) bool {
	if !s.IsAssociated(id) {
		return false
	}
	s.clearAssociation()
	var next *questions.Question
	if s.source != nil {
		next = s.source.Next()
	}
	s.current = next
	return true
}

// RemoveAssociation clears the association if it points at id. Called on
// obstacle retirement so stale ids never satisfy IsAssociated.
func (s *Synchronizer) RemoveAssociation(id ObstacleID) {
	if s.hasAssoc && s.assocID == id {
		s.clearAssociation()
	}
}

func (s *Synchronizer) clearAssociation() {
	s.assocID = 0
	s.hasAssoc = false
}
