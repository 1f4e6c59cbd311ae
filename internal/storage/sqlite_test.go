package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
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

func testRun(score int) Run {
	trace := flappy.Trace{Seed: 42}
	trace.Record(0, flappy.NoDelta)
	trace.Record(1, flappy.DeltaOf(0.016))
	trace.Record(0, flappy.DeltaOf(0.017))
	return Run{
		Source:     "sim",
		Seed:       42,
		Score:      score,
		Ticks:      uint64(score * 100),
		ConfigYAML: "world:\n  width: 400\n",
		Trace:      trace,
	}
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

func TestStoreSaveAndGetRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(testRun(7))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if run == nil {
		t.Fatal("GetRun() returned nil for a saved run")
	}

	if run.Score != 7 || run.Ticks != 700 || run.Seed != 42 || run.Source != "sim" {
		t.Errorf("run = %+v", run)
	}
	if run.ConfigYAML != "world:\n  width: 400\n" {
		t.Errorf("ConfigYAML = %q", run.ConfigYAML)
	}
	if len(run.Trace.Frames) != 3 || run.Trace.Seed != 42 {
		t.Fatalf("Trace = %+v", run.Trace)
	}
	if run.Trace.Frames[0].DT.Valid {
		t.Error("first frame should keep its missing delta")
	}
	if run.Trace.Frames[1] != (flappy.Frame{Taps: 1, DT: flappy.DeltaOf(0.016)}) {
		t.Errorf("frame 1 = %+v", run.Trace.Frames[1])
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreGetMissingRun(t *testing.T) {
	store := openTestStore(t)

	run, err := store.GetRun(999)
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil for a missing run, got %+v", run)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{5, 1, 9, 3, 7} {
		if _, err := store.SaveRun(testRun(score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 9 || runs[1].Score != 7 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Frames != 3 {
		t.Errorf("Frames = %d, expected 3", runs[0].Frames)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for _, score := range []int{1, 2, 3} {
		id, err := store.SaveRun(testRun(score))
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to ID order.
	if runs[0].ID != ids[2] || runs[2].ID != ids[0] {
		t.Errorf("Runs not newest first: %+v", runs)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	for _, score := range []int{2, 8, 5} {
		store.SaveRun(testRun(score))
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 8 {
		t.Errorf("Expected high score of 8, got %d", high)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 8 || stats.AvgScore != 5 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.SaveRun(testRun(4))
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if run, _ := store.GetRun(id); run != nil {
		t.Error("run still present after delete")
	}
	if err := store.DeleteRun(id); err != nil {
		t.Errorf("deleting a missing run failed: %v", err)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
