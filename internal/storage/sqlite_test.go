package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("crawl", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("crawl_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("crawl", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}

	high, err := store.HighScore("crawl")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore = %d, want 200", high)
	}
}

func TestHighScoreEmptyGame(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("nonexistent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore = %d, want 0 for unplayed game", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("crawl", 100)
	store.SaveScore("crawl_endless", 300)

	if err := store.ClearScores("crawl"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("crawl", 10)
	if len(scores) != 0 {
		t.Errorf("got %d scores after clear, want 0", len(scores))
	}
	// Other variants untouched.
	scores, _ = store.TopScores("crawl_endless", 10)
	if len(scores) != 1 {
		t.Errorf("other variant lost scores: %d", len(scores))
	}
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		GameID:     "crawl",
		Score:      730,
		Depth:      3,
		Wave:       12,
		Kills:      48,
		Gold:       210,
		HeroLevel:  6,
		Duration:   540,
		DeathCause: "mauled at depth 3",
		BossKilled: true,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveRun returned zero ID")
	}

	store.SaveRun(RunRecord{GameID: "crawl", Score: 120, Depth: 1, Wave: 3, Kills: 9})

	runs, err := store.BestRuns("crawl", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	best := runs[0]
	if best.Score != 730 || best.Depth != 3 || best.Kills != 48 {
		t.Errorf("best run mismatch: %+v", best)
	}
	if best.DeathCause != "mauled at depth 3" {
		t.Errorf("death cause = %q", best.DeathCause)
	}
	if !best.BossKilled {
		t.Error("boss flag lost")
	}
}

func TestRecentRunsAcrossVariants(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "crawl", Score: 100, Depth: 1})
	store.SaveRun(RunRecord{GameID: "crawl_endless", Score: 900, Depth: 9})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2 across variants", len(runs))
	}
}

func TestRunStatsAggregation(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "crawl", Score: 100, Depth: 1, Kills: 10})
	store.SaveRun(RunRecord{GameID: "crawl", Score: 300, Depth: 3, Kills: 25})
	store.SaveRun(RunRecord{GameID: "crawl_endless", Score: 999, Depth: 9, Kills: 99})

	stats, err := store.GetRunStats("crawl")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.BestScore != 300 || stats.BestDepth != 3 {
		t.Errorf("best = %d/%d, want 300/3", stats.BestScore, stats.BestDepth)
	}
	if stats.TotalKills != 35 {
		t.Errorf("TotalKills = %d, want 35", stats.TotalKills)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRunStats("crawl")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats not zeroed: %+v", stats)
	}
}
