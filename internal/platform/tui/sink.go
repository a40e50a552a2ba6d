package tui

import (
	"strings"

	"github.com/vovakirdan/mathbird/internal/games/mathbird"
	"github.com/vovakirdan/mathbird/internal/registry"
	"github.com/vovakirdan/mathbird/internal/storage"
)

// sessionSink persists end-of-run summaries. Pass scores still go through the
// model's SaveScore path; this adds the math-side record.
type sessionSink struct {
	mathbird.NopEvents
	store  *storage.Store
	gameID string
}

func (s *sessionSink) GameOver(sum mathbird.Summary) {
	//nolint:errcheck // Best-effort save, game continues regardless
	s.store.SaveSession(storage.SessionRecord{
		GameID:     s.gameID,
		PassScore:  sum.PassScore,
		Points:     sum.Points,
		BestStreak: sum.BestStreak,
		Correct:    sum.Correct,
		Incorrect:  sum.Incorrect,
		Accuracy:   sum.Accuracy,
	})
}

// WireSessionEvents attaches summary persistence to games that emit one.
// Games without an event surface are left alone, and so is the classic ride:
// its runs live in the plain scores table.
func WireSessionEvents(game registry.Game, store *storage.Store) {
	if store == nil {
		return
	}
	g, ok := game.(*mathbird.Game)
	if !ok || strings.HasSuffix(game.ID(), "_classic") {
		return
	}
	g.SetEvents(&sessionSink{store: store, gameID: game.ID()})
}
