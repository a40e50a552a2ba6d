package mathbird

import (
	"github.com/vovakirdan/mathbird/internal/questions"
)

// Summary is the end-of-run record handed to the game-over event exactly
// once per run.
type Summary struct {
	PassScore  int
	Points     int
	Streak     int
	BestStreak int
	Correct    int
	Incorrect  int
	Accuracy   float64
}

// EventSink receives lifecycle notifications from the game. Implementations
// must not call back into the game; they are invoked mid-step.
type EventSink interface {
	// GameStarted fires on every transition into the playing state from
	// menu or game over.
	GameStarted()
	// GameOver fires exactly once per run, with the final summary.
	GameOver(s Summary)
	// PassScoreChanged fires each time an obstacle is passed.
	PassScoreChanged(score int)
	// QuestionChanged fires when the locked question advances. q is nil
	// when the source ran dry and nothing is locked.
	QuestionChanged(q *questions.Question)
	// MathScoreChanged fires after every answer with the new points total
	// and current streak.
	MathScoreChanged(points, streak int)
	// AnswerFeedback fires once per answer. delta is the nominal points
	// change (+bonus or -penalty, before the zero floor). correctAnswer
	// is the value that should have been picked; it equals the picked
	// value when correct is true.
	AnswerFeedback(correct bool, delta int, correctAnswer int)
}

// NopEvents is the default sink; it drops everything.
type NopEvents struct{}

func (NopEvents) GameStarted()                        {}
func (NopEvents) GameOver(Summary)                    {}
func (NopEvents) PassScoreChanged(int)                {}
func (NopEvents) QuestionChanged(*questions.Question) {}
func (NopEvents) MathScoreChanged(int, int)           {}
func (NopEvents) AnswerFeedback(bool, int, int)       {}

var _ EventSink = NopEvents{}
