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
	dbPath := filepath.Join(tmpDir, "nested", "game.db")

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

func TestStoreInsertAndTop(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Insert("Ada", 3, 1200)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Insert() id = %d, want positive", id)
	}

	records, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.PlayerName != "Ada" || r.Level != 3 || r.Score != 1200 {
		t.Errorf("record = %+v, want Ada/3/1200", r)
	}
	if r.ID != id {
		t.Errorf("record ID = %d, want %d", r.ID, id)
	}
}

func TestStoreTopOrderingAndLimit(t *testing.T) {
	store := openTestStore(t)

	scores := []int{300, 50, 900, 120, 700}
	for i, s := range scores {
		if _, err := store.Insert("p", i+1, s); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}

	records, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(records) != len(scores) {
		t.Fatalf("Expected %d records, got %d", len(scores), len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Score > records[i-1].Score {
			t.Errorf("records not descending at %d: %d > %d", i, records[i].Score, records[i-1].Score)
		}
	}
	if records[0].Score != 900 {
		t.Errorf("best score = %d, want 900", records[0].Score)
	}

	top2, err := store.Top(2)
	if err != nil {
		t.Fatalf("Top(2) failed: %v", err)
	}
	if len(top2) != 2 || top2[1].Score != 700 {
		t.Errorf("Top(2) = %+v", top2)
	}
}

func TestStoreTopDefaultsToTen(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.Insert("p", 1, i*10); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}

	records, err := store.Top(0)
	if err != nil {
		t.Fatalf("Top(0) failed: %v", err)
	}
	if len(records) != DefaultTop {
		t.Errorf("Top(0) returned %d records, want %d", len(records), DefaultTop)
	}
	if records[0].Score != 140 {
		t.Errorf("best score = %d, want 140", records[0].Score)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty high score = %d, want 0", hs)
	}

	store.Insert("Ada", 3, 1200)
	store.Insert("Bob", 5, 3100)
	store.Insert("Cy", 1, 200)

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 3100 {
		t.Errorf("HighScore() = %d, want 3100", hs)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.HighScore != 3100 || stats.BestLevel != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 1500 {
		t.Errorf("avg score = %v, want 1500", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "game.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Insert("Ada", 3, 1200)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	records, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(records) != 1 || records[0].PlayerName != "Ada" {
		t.Errorf("records after reopen = %+v", records)
	}
}
