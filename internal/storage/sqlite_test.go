package storage

import (
	"bytes"
	"errors"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveReplay(Replay{GameID: "hunter", ConfigYAML: []byte("x"), Inputs: []byte{1}}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if n, _ := store.CountReplays(""); n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	want := Replay{
		GameID:     "hunter",
		Seed:       -42,
		TickRate:   60,
		Difficulty: "hard",
		ConfigYAML: []byte("road:\n  width: 20\n"),
		Ticks:      1234,
		Inputs:     []byte{1, 200, 9, 0},
	}
	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if got.ID != id || got.GameID != want.GameID || got.Seed != want.Seed || got.TickRate != want.TickRate ||
		got.Difficulty != want.Difficulty || got.Ticks != want.Ticks {
		t.Errorf("metadata mismatch: got %+v", got)
	}
	if !bytes.Equal(got.ConfigYAML, want.ConfigYAML) || !bytes.Equal(got.Inputs, want.Inputs) {
		t.Error("blobs did not round trip")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"hunter", "hunter_classic", "hunter"} {
		if _, err := store.SaveReplay(Replay{GameID: id, ConfigYAML: []byte("x"), Inputs: []byte{1}}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.ListReplays("", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 replays, got %d", len(all))
	}
	if all[0].ID < all[1].ID {
		t.Error("replays should be newest first")
	}

	hunter, err := store.ListReplays("hunter", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hunter) != 2 {
		t.Errorf("expected 2 hunter replays, got %d", len(hunter))
	}

	limited, err := store.ListReplays("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d", len(limited))
	}

	if n, err := store.CountReplays("hunter_classic"); err != nil || n != 1 {
		t.Errorf("CountReplays = %d, %v", n, err)
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{GameID: "hunter", ConfigYAML: []byte("x"), Inputs: []byte{1}})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.LoadReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("LoadReplay after delete: %v, want ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("second delete: %v, want ErrReplayNotFound", err)
	}
}
