package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func saveScore(t *testing.T, store *Store, gameID string, score float64) string {
	t.Helper()
	id, err := store.SaveRun(RunRecord{GameID: gameID, Score: score})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(RunRecord{
		GameID:   "dodge",
		Score:    123.456,
		Grazes:   7,
		Dashes:   3,
		Duration: 45.5,
		Seed:     99,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Score != 123.456 || got.Grazes != 7 || got.Dashes != 3 || got.Duration != 45.5 || got.Seed != 99 {
		t.Errorf("RunByID() = %+v, fields not preserved", got)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	got, err := store.SaveRun(RunRecord{RunID: want, GameID: "dodge", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("run ID = %q, expected %q", got, want)
	}

	if _, err := store.SaveRun(RunRecord{RunID: want, GameID: "dodge", Score: 2}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "dodge", 100.5)
	saveScore(t, store, "dodge", 50.25)
	saveScore(t, store, "dodge", 200.75)
	saveScore(t, store, "other", 500)

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200.75 || scores[1].Score != 100.5 || scores[2].Score != 50.25 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "dodge", float64((i+1)*100))
	}

	scores, err := store.TopScores("dodge", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := saveScore(t, store, "dodge", 10)
	saveScore(t, store, "dodge", 30)
	last := saveScore(t, store, "dodge", 20)

	runs, err := store.RecentRuns("dodge", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].RunID != last {
		t.Errorf("RecentRuns() = %v, expected newest first", runs)
	}
	for _, r := range runs {
		if r.RunID == first {
			t.Error("oldest run should fall outside the limit")
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %v", high)
	}

	saveScore(t, store, "dodge", 100)
	saveScore(t, store, "dodge", 300.5)
	saveScore(t, store, "dodge", 200)

	high, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300.5 {
		t.Errorf("Expected high score of 300.5, got %v", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "dodge", 100)
	saveScore(t, store, "dodge", 200)
	saveScore(t, store, "other", 300)

	if err := store.ClearScores("dodge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("dodge", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing dodge")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("dodge")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for empty game = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "dodge", Score: 10, Grazes: 2, Dashes: 1, Duration: 8})
	store.SaveRun(RunRecord{GameID: "dodge", Score: 30, Grazes: 4, Dashes: 2, Duration: 20})

	stats, err := store.GetGameStats("dodge")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("HighScore = %v, AvgScore = %v, expected 30 and 20", stats.HighScore, stats.AvgScore)
	}
	if stats.TotalGrazes != 6 || stats.TotalDashes != 3 {
		t.Errorf("TotalGrazes = %d, TotalDashes = %d, expected 6 and 3", stats.TotalGrazes, stats.TotalDashes)
	}
	if stats.TotalSeconds != 28 || stats.LongestRun != 20 {
		t.Errorf("TotalSeconds = %v, LongestRun = %v, expected 28 and 20", stats.TotalSeconds, stats.LongestRun)
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.arcade/x.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".arcade", "x.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
