package mathbird

import "math"

// ScoreState is the single source of truth for answer scoring: points,
// current streak, best streak, and the correct/incorrect totals. The pass
// count lives on the game itself; points here move only on answers.
type ScoreState struct {
	points     int
	streak     int
	bestStreak int
	correct    int
	incorrect  int

	bonus   int
	penalty int
}

// NewScoreState creates a tracker with the given per-answer bonus and
// penalty.
func NewScoreState(bonus, penalty int) *ScoreState {
	return &ScoreState{bonus: bonus, penalty: penalty}
}

// Correct awards the bonus, extends the streak and lifts the best streak
// when exceeded.
func (s *ScoreState) Correct() {
	s.points += s.bonus
	s.streak++
	if s.streak > s.bestStreak {
		s.bestStreak = s.streak
	}
	s.correct++
}

// Incorrect deducts the penalty, flooring points at zero, and breaks the
// streak. The best streak is untouched.
func (s *ScoreState) Incorrect() {
	s.points -= s.penalty
	if s.points < 0 {
		s.points = 0
	}
	s.streak = 0
	s.incorrect++
}

// Reset zeroes every counter, best streak included.
func (s *ScoreState) Reset() {
	s.points = 0
	s.streak = 0
	s.bestStreak = 0
	s.correct = 0
	s.incorrect = 0
}

// Accuracy returns the percentage of correct answers rounded to one decimal,
// or 0 before any answer has been given.
func (s *ScoreState) Accuracy() float64 {
	total := s.correct + s.incorrect
	if total == 0 {
		return 0
	}
	return math.Round(float64(s.correct)/float64(total)*1000) / 10
}
