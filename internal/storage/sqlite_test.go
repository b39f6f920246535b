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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsMatches(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchRecord{LeftScore: 7, RightScore: 2, Winner: "left", WinningScore: 7}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Expected 1 match after reopen, got %d", len(matches))
	}
}

func TestSaveMatchAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchRecord{
		LeftScore:    3,
		RightScore:   7,
		Winner:       "right",
		WinningScore: 7,
		Ticks:        4200,
		Rules:        "classic",
		Source:       "ssh",
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("match ID %q is not a uuid: %v", id, err)
	}

	rec, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if rec.LeftScore != 3 || rec.RightScore != 7 || rec.Winner != "right" {
		t.Errorf("scores round-trip mismatch: %+v", rec)
	}
	if rec.Ticks != 4200 || rec.Rules != "classic" || rec.Source != "ssh" {
		t.Errorf("metadata round-trip mismatch: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveMatchDefaults(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchRecord{MatchID: "fixed-id", LeftScore: 7, Winner: "left", WinningScore: 7})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("explicit match ID replaced: %q", id)
	}

	rec, _ := store.MatchByID(id)
	if rec == nil || rec.Source != "local" {
		t.Errorf("source should default to local, got %+v", rec)
	}

	if _, err := store.SaveMatch(MatchRecord{MatchID: "fixed-id", Winner: "left"}); err == nil {
		t.Error("duplicate match ID should fail")
	}
}

func TestSaveMatchRejectsInvalidWinner(t *testing.T) {
	store := openTestStore(t)

	for _, winner := range []string{"", "none", "Left"} {
		if _, err := store.SaveMatch(MatchRecord{Winner: winner}); err == nil {
			t.Errorf("SaveMatch() with winner %q should fail", winner)
		}
	}
}

func TestMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unknown match, got %+v", rec)
	}
}

func TestRecentMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveMatch(MatchRecord{LeftScore: 7, RightScore: i, Winner: "left", WinningScore: 7}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	// Newest first
	for i, want := range []int{4, 3, 2} {
		if matches[i].RightScore != want {
			t.Errorf("matches[%d].RightScore = %d, expected %d", i, matches[i].RightScore, want)
		}
	}

	all, _ := store.RecentMatches(0)
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 matches, got %d", len(all))
	}
}

func TestStandings(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Standings()
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}
	if st.Matches != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("empty standings = %+v", st)
	}

	records := []MatchRecord{
		{LeftScore: 7, RightScore: 5, Winner: "left", WinningScore: 7},
		{LeftScore: 2, RightScore: 7, Winner: "right", WinningScore: 7},
		{LeftScore: 3, RightScore: 1, Winner: "left", WinningScore: 3},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	st, err = store.Standings()
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}
	if st.Matches != 3 || st.LeftWins != 2 || st.RightWins != 1 {
		t.Errorf("wins = %+v, expected 3 matches, 2-1", st)
	}
	if st.LeftGoals != 12 || st.RightGoals != 13 {
		t.Errorf("goals = %d-%d, expected 12-13", st.LeftGoals, st.RightGoals)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{LeftScore: 7, Winner: "left", WinningScore: 7}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, _ := store.RecentMatches(10)
	if len(matches) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(matches))
	}
}
