package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreInMemoryDefault(t *testing.T) {
	// Empty path means in-memory: fully functional, nothing on disk.
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun("char-boy", 0, 2, 80); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some runs
	if _, err := store.SaveRun("char-boy", 0, 1, 100); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("char-boy", 1, 0, 50); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("char-cat-girl", 0, 3, 200); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by score descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %v", runs)
	}

	if runs[0].Avatar != "char-cat-girl" {
		t.Errorf("Expected avatar char-cat-girl on top run, got %s", runs[0].Avatar)
	}
	if runs[0].Gems != 3 {
		t.Errorf("Expected 3 gems on top run, got %d", runs[0].Gems)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun("char-boy", i, i, (i+1)*100)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("char-boy", 0, 0, 300)
	store.SaveRun("char-boy", 1, 0, 100)
	store.SaveRun("char-boy", 2, 0, 200)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first: the replay indexes went 0, 1, 2
	if runs[0].Replay != 2 || runs[2].Replay != 0 {
		t.Errorf("Runs not in recency order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun("char-boy", 0, 0, 100)
	store.SaveRun("char-boy", 1, 0, 300)
	store.SaveRun("char-boy", 2, 0, 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store: zero stats, no error
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected zero stats for empty store, got %+v", stats)
	}

	store.SaveRun("char-boy", 0, 2, 100)
	store.SaveRun("char-boy", 1, 3, 200)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 200 {
		t.Errorf("HighScore = %d, expected 200", stats.HighScore)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %f, expected 150", stats.AvgScore)
	}
	if stats.TotalGems != 5 {
		t.Errorf("TotalGems = %d, expected 5", stats.TotalGems)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("char-boy", 0, 0, 100)
	store.SaveRun("char-boy", 1, 0, 200)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
