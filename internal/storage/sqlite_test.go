package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{ModeID: "classic", Player: "a", Level: 120, Ticks: 9000},
		{ModeID: "classic", Player: "b", Level: 340, Ticks: 30000},
		{ModeID: "classic", Player: "c", Level: 340, Ticks: 25000},
		{ModeID: "master", Player: "d", Level: 999, Ticks: 50000, Completed: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Level descending, faster run first on ties
	wantPlayers := []string{"c", "b", "a"}
	for i, want := range wantPlayers {
		if top[i].Player != want {
			t.Errorf("TopRuns()[%d].Player = %q, expected %q", i, top[i].Player, want)
		}
	}
	if top[0].ModeID != "classic" {
		t.Errorf("TopRuns()[0].ModeID = %q, expected classic", top[0].ModeID)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("TopRuns()[0].CreatedAt should be set")
	}

	master, err := store.TopRuns("master", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(master) != 1 || !master[0].Completed || master[0].Level != 999 {
		t.Errorf("TopRuns(master) = %+v, expected one completed run at 999", master)
	}
}

func TestStoreAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{ModeID: "classic", Level: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{ModeID: "classic", Level: 20}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(top))
	}
	if top[0].RunID == "" || top[0].RunID == top[1].RunID {
		t.Errorf("run IDs should be unique and non-empty, got %q and %q", top[0].RunID, top[1].RunID)
	}

	found, err := store.RunByID(top[1].RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if found == nil || found.Level != 10 {
		t.Errorf("RunByID() = %+v, expected level 10", found)
	}

	missing, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID(nope) = %+v, expected nil", missing)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	r := RunRecord{RunID: "fixed", ModeID: "classic", Level: 1}
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("SaveRun() with a duplicate run ID should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveRun(RunRecord{ModeID: "classic", Level: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Level != 140 {
		t.Errorf("Expected best level 140, got %d", top[0].Level)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopRuns("classic", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(top))
	}
}

func TestStoreBestLevel(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLevel("classic")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", best)
	}

	for _, lvl := range []int{100, 500, 300} {
		if _, err := store.SaveRun(RunRecord{ModeID: "classic", Level: lvl}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestLevel("classic")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 500 {
		t.Errorf("Expected best level 500, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{ModeID: "classic", Level: 100})
	store.SaveRun(RunRecord{ModeID: "master", Level: 200})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}
	master, _ := store.TopRuns("master", 10)
	if len(master) != 1 {
		t.Errorf("Expected 1 master run, got %d", len(master))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ModeStats("classic")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("ModeStats() on empty mode = %+v", empty)
	}

	played := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.SaveRun(RunRecord{ModeID: "classic", Level: 100, Ticks: 1000, CreatedAt: played})
	store.SaveRun(RunRecord{ModeID: "classic", Level: 300, Ticks: 3000, CreatedAt: played.Add(time.Hour)})
	store.SaveRun(RunRecord{ModeID: "master", Level: 999, Ticks: 9000, Completed: true, CreatedAt: played})

	stats, err := store.ModeStats("classic")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.BestLevel != 300 {
		t.Errorf("BestLevel = %d, expected 300", stats.BestLevel)
	}
	if stats.AvgLevel != 200 {
		t.Errorf("AvgLevel = %v, expected 200", stats.AvgLevel)
	}
	if stats.TotalTicks != 4000 {
		t.Errorf("TotalTicks = %d, expected 4000", stats.TotalTicks)
	}
	if !stats.LastPlayed.Equal(played.Add(time.Hour)) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, played.Add(time.Hour))
	}

	all, err := store.AllModeStats()
	if err != nil {
		t.Fatalf("AllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["master"].Completed != 1 {
		t.Errorf("master Completed = %d, expected 1", all["master"].Completed)
	}
	if all["classic"].Runs != 2 {
		t.Errorf("classic Runs = %d, expected 2", all["classic"].Runs)
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
