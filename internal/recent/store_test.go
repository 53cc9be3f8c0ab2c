package recent

import (
	"encoding/json"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"

	"github.com/ytget/nostorage/internal/model"
)

type memoryStorage struct {
	values  map[string]string
	removed []string
	writes  int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string]string)}
}

func (m *memoryStorage) String(key string) string { return m.values[key] }

func (m *memoryStorage) SetString(key, value string) {
	m.values[key] = value
	m.writes++
}

func (m *memoryStorage) RemoveValue(key string) {
	delete(m.values, key)
	m.removed = append(m.removed, key)
}

func entry(n int) model.RecentEntry {
	return model.RecentEntry{
		URL:       fmt.Sprintf("https://example.com/watch?v=%d", n),
		Title:     fmt.Sprintf("Video %d", n),
		Thumbnail: fmt.Sprintf("https://img.example.com/%d.jpg", n),
	}
}

func TestLoadEmpty(t *testing.T) {
	store := NewStore(newMemoryStorage())
	if got := store.Load(); len(got) != 0 {
		t.Errorf("Expected empty list, got %d entries", len(got))
	}
}

func TestLoadPersisted(t *testing.T) {
	storage := newMemoryStorage()
	data, _ := json.Marshal([]model.RecentEntry{entry(2), entry(1)})
	storage.values[StorageKey] = string(data)

	got := NewStore(storage).Load()
	if diff := cmp.Diff([]model.RecentEntry{entry(2), entry(1)}, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCorruptClearsStorage(t *testing.T) {
	for _, corrupt := range []string{"{not-json", `{"url":"x"}`, "[1,2"} {
		storage := newMemoryStorage()
		storage.values[StorageKey] = corrupt

		got := NewStore(storage).Load()
		if len(got) != 0 {
			t.Errorf("Load(%q) returned %d entries, expected none", corrupt, len(got))
		}
		if _, ok := storage.values[StorageKey]; ok {
			t.Errorf("Load(%q) should clear the corrupt value", corrupt)
		}
		if len(storage.removed) != 1 || storage.removed[0] != StorageKey {
			t.Errorf("Load(%q) removed %v", corrupt, storage.removed)
		}
	}
}

func TestLoadTruncatesOversizedList(t *testing.T) {
	storage := newMemoryStorage()
	var entries []model.RecentEntry
	for i := 0; i < 8; i++ {
		entries = append(entries, entry(i))
	}
	data, _ := json.Marshal(entries)
	storage.values[StorageKey] = string(data)

	got := NewStore(storage).Load()
	if len(got) != MaxEntries {
		t.Errorf("Expected %d entries, got %d", MaxEntries, len(got))
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	storage := newMemoryStorage()
	store := NewStore(storage)
	store.Load()

	store.Add(entry(1))
	got := store.Add(entry(2))

	expected := []model.RecentEntry{entry(2), entry(1)}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}

	var persisted []model.RecentEntry
	if err := json.Unmarshal([]byte(storage.values[StorageKey]), &persisted); err != nil {
		t.Fatalf("persisted value is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(expected, persisted); diff != "" {
		t.Errorf("persisted mismatch (-want +got):\n%s", diff)
	}
	if storage.writes != 2 {
		t.Errorf("Expected a write per Add, got %d", storage.writes)
	}
}

func TestAddDeduplicatesByURL(t *testing.T) {
	store := NewStore(newMemoryStorage())
	store.Load()

	store.Add(entry(1))
	store.Add(entry(2))
	store.Add(entry(3))

	updated := entry(1)
	updated.Title = "Renamed"
	got := store.Add(updated)

	expected := []model.RecentEntry{updated, entry(3), entry(2)}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestAddEvictsOldest(t *testing.T) {
	store := NewStore(newMemoryStorage())
	store.Load()

	for i := 1; i <= 6; i++ {
		store.Add(entry(i))
	}

	got := store.Entries()
	expected := []model.RecentEntry{entry(6), entry(5), entry(4), entry(3), entry(2)}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	store := NewStore(newMemoryStorage())
	store.Load()
	store.Add(entry(1))

	got := store.Entries()
	got[0].Title = "mutated"

	if store.Entries()[0].Title != entry(1).Title {
		t.Error("Entries should return a copy")
	}
}

func TestStoreWithFynePreferences(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	prefs := app.Preferences()

	store := NewStore(prefs)
	store.Load()
	store.Add(entry(1))
	store.Add(entry(2))

	reloaded := NewStore(prefs).Load()
	if diff := cmp.Diff([]model.RecentEntry{entry(2), entry(1)}, reloaded); diff != "" {
		t.Errorf("reloaded mismatch (-want +got):\n%s", diff)
	}

	prefs.SetString(StorageKey, "garbage")
	if got := NewStore(prefs).Load(); len(got) != 0 {
		t.Errorf("Expected empty list after corruption, got %d", len(got))
	}
	if prefs.String(StorageKey) != "" {
		t.Error("corrupt preference should be removed")
	}
}
