package bankroll

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := &FileStore{Path: path, Currency: "USD"}

	sessions := []Session{
		Sanitize(map[string]any{"id": "a", "date": "2026-01-01", "buyIn": 100.0, "cashOut": 150.0}),
		Sanitize(map[string]any{"id": "b", "sessionType": "tournament", "stake": "50 MTT"}),
	}
	if err := store.SaveAll(sessions); err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}

	got := store.LoadAll()
	if len(got) != 2 {
		t.Fatalf("LoadAll() returned %d sessions, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("LoadAll() ids = %q, %q", got[0].ID, got[1].ID)
	}
	if want := M(50, "USD"); !got[0].Profit.Equal(want) {
		t.Errorf("Profit = %v, want %v", got[0].Profit, want)
	}
	if got[1].Type != Tournament {
		t.Errorf("Type = %q, want %q", got[1].Type, Tournament)
	}
}

func TestFileStore_LoadAllToleratesCorruption(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "not json at all"},
		{name: "not a list", content: `{"id":"a"}`},
		{name: "empty file", content: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sessions.json")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			store := &FileStore{Path: path}
			if got := store.LoadAll(); len(got) != 0 {
				t.Errorf("LoadAll() = %d sessions, want 0", len(got))
			}
		})
	}
}

func TestFileStore_LoadAllMissingFile(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "absent.json")}
	if got := store.LoadAll(); len(got) != 0 {
		t.Errorf("LoadAll() = %d sessions, want 0", len(got))
	}
}

func TestFileStore_LoadAllSanitizesElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	// a list of garbage elements still loads, sanitized to defaults
	content := `[null, "junk", {"id":"keep","profit":9999,"buyIn":10,"cashOut":25}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := (&FileStore{Path: path}).LoadAll()
	if len(got) != 3 {
		t.Fatalf("LoadAll() = %d sessions, want 3", len(got))
	}
	for _, s := range got {
		if s.ID == "" {
			t.Error("sanitized element has no id")
		}
	}
	if want := M(15, ""); !got[2].Profit.Equal(want) {
		t.Errorf("stored profit was trusted: %v, want recomputed %v", got[2].Profit, want)
	}
}

func TestFindLedger(t *testing.T) {
	dir := t.TempDir()

	l, err := FindLedger(dir, "", "USD")
	if err != nil {
		t.Fatalf("FindLedger() on an empty directory failed: %v", err)
	}
	if l.Name() != DefaultLedgerName || l.Len() != 0 {
		t.Errorf("default ledger = %q with %d sessions", l.Name(), l.Len())
	}

	// a mutation must materialize the file
	l.Create(SessionInput{Date: "2026-01-01"})
	if _, err := os.Stat(filepath.Join(dir, DefaultLedgerName+ledgerExt)); err != nil {
		t.Fatalf("ledger file was not created: %v", err)
	}

	// reloading by name finds the same data
	again, err := FindLedger(dir, DefaultLedgerName, "USD")
	if err != nil {
		t.Fatalf("FindLedger() by name failed: %v", err)
	}
	if again.Len() != 1 {
		t.Errorf("reloaded ledger holds %d sessions, want 1", again.Len())
	}
}

func TestFindLedger_Ambiguous(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"live", "online"} {
		if err := os.WriteFile(filepath.Join(dir, name+ledgerExt), []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := FindLedger(dir, "", "USD"); err == nil {
		t.Error("FindLedger() should fail when several ledgers match an empty name")
	}
	if _, err := FindLedger(dir, "live", "USD"); err != nil {
		t.Errorf("FindLedger() by exact name failed: %v", err)
	}
}

func TestFindLedgers(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2026")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{filepath.Join(dir, "live.json"), filepath.Join(sub, "online.json")} {
		if err := os.WriteFile(p, []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ledgers, err := FindLedgers(dir)
	if err != nil {
		t.Fatalf("FindLedgers() failed: %v", err)
	}
	if len(ledgers) != 2 {
		t.Fatalf("FindLedgers() = %d ledgers, want 2", len(ledgers))
	}
	names := map[string]bool{}
	for _, l := range ledgers {
		names[l.Name()] = true
	}
	if !names["live"] || !names[filepath.Join("2026", "online")] {
		t.Errorf("ledger names = %v", names)
	}
}
