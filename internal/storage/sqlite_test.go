package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("mathbird", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("mathbird_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mathbird", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	classicScores, err := store.TopScores("mathbird_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classicScores) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classicScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("mathbird", (i+1)*100)
	}

	scores, err := store.TopScores("mathbird", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mathbird")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("mathbird", 100)
	store.SaveScore("mathbird", 300)
	store.SaveScore("mathbird", 200)

	high, err = store.HighScore("mathbird")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveSession(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(SessionRecord{
		GameID:     "mathbird",
		PassScore:  7,
		Points:     55,
		BestStreak: 4,
		Correct:    6,
		Incorrect:  2,
		Accuracy:   75.0,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive session ID, got %d", id)
	}

	sessions, err := store.RecentSessions("mathbird", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.PassScore != 7 || got.Points != 55 || got.BestStreak != 4 {
		t.Errorf("Session fields lost in round trip: %+v", got)
	}
	if got.Correct != 6 || got.Incorrect != 2 || got.Accuracy != 75.0 {
		t.Errorf("Math fields lost in round trip: %+v", got)
	}
}

func TestStoreTopSessionsOrdering(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 30, PassScore: 5})
	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 80, PassScore: 2})
	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 30, PassScore: 9})
	store.SaveSession(SessionRecord{GameID: "mathbird_classic", Points: 0, PassScore: 40})

	top, err := store.TopSessions("mathbird", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(top))
	}
	if top[0].Points != 80 {
		t.Errorf("Expected 80 points first, got %d", top[0].Points)
	}
	// Equal points break the tie on pass score.
	if top[1].PassScore != 9 || top[2].PassScore != 5 {
		t.Errorf("Tie break wrong: %d then %d", top[1].PassScore, top[2].PassScore)
	}
}

func TestStoreRecentSessionsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 10})
	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 20})
	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 30})

	recent, err := store.RecentSessions("mathbird", 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions with limit, got %d", len(recent))
	}
	if recent[0].Points != 30 || recent[1].Points != 20 {
		t.Errorf("Expected newest first, got %d then %d", recent[0].Points, recent[1].Points)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mathbird", 100)
	store.SaveScore("mathbird", 200)
	store.SaveScore("mathbird_classic", 300)
	store.SaveSession(SessionRecord{GameID: "mathbird", Points: 50})

	if err := store.ClearScores("mathbird"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("mathbird", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	sessions, _ := store.RecentSessions("mathbird", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}

	classicScores, _ := store.TopScores("mathbird_classic", 10)
	if len(classicScores) != 1 {
		t.Error("Classic scores should not be affected by clearing mathbird")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("mathbird")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Empty game should have zero stats, got %+v", stats)
	}

	store.SaveScore("mathbird", 10)
	store.SaveScore("mathbird", 30)

	stats, err = store.GetGameStats("mathbird")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20.0 {
		t.Errorf("Expected avg 20.0, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("Expected total 40, got %d", stats.TotalScore)
	}
}

func TestStoreSessionStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{
		GameID: "mathbird", Points: 30, BestStreak: 3, Correct: 3, Incorrect: 1, Accuracy: 75.0,
	})
	store.SaveSession(SessionRecord{
		GameID: "mathbird", Points: 50, BestStreak: 5, Correct: 5, Incorrect: 3, Accuracy: 62.5,
	})

	stats, err := store.GetSessionStats("mathbird")
	if err != nil {
		t.Fatalf("GetSessionStats() failed: %v", err)
	}

	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.BestPoints != 50 {
		t.Errorf("Expected best points 50, got %d", stats.BestPoints)
	}
	if stats.BestStreak != 5 {
		t.Errorf("Expected best streak 5, got %d", stats.BestStreak)
	}
	if stats.AvgAccuracy != 68.75 {
		t.Errorf("Expected avg accuracy 68.75, got %f", stats.AvgAccuracy)
	}
	if stats.TotalCorrect != 8 || stats.TotalIncorrect != 4 {
		t.Errorf("Expected totals 8/4, got %d/%d", stats.TotalCorrect, stats.TotalIncorrect)
	}
}
