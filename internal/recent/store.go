package recent

import (
	"encoding/json"
	"sync"

	"github.com/ytget/nostorage/internal/logger"
	"github.com/ytget/nostorage/internal/model"
)

// StorageKey is the preference key holding the JSON-encoded list
const StorageKey = "recentDownloads"

// MaxEntries caps the list length
const MaxEntries = 5

// Storage is the durable key/value backend. fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Store is a bounded, url-deduplicated, most-recent-first list of completed downloads
type Store struct {
	mu      sync.Mutex
	storage Storage
	entries []model.RecentEntry
}

// NewStore creates a store on top of storage. Call Load before use.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads the persisted list. Malformed data is removed from storage and an
// empty list is returned; Load never fails.
func (s *Store) Load() []model.RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	saved := s.storage.String(StorageKey)
	if saved == "" {
		return s.snapshot()
	}

	var entries []model.RecentEntry
	if err := json.Unmarshal([]byte(saved), &entries); err != nil {
		logger.Log.Warnw("discarding corrupt recent downloads", "error", err)
		s.storage.RemoveValue(StorageKey)
		return s.snapshot()
	}

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	s.entries = entries
	return s.snapshot()
}

// Add moves entry to the front, dropping any entry with the same URL and anything
// beyond MaxEntries, persists the result and returns it
func (s *Store) Add(entry model.RecentEntry) []model.RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.RecentEntry, 0, MaxEntries)
	next = append(next, entry)
	for _, item := range s.entries {
		if item.URL == entry.URL {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, item)
	}

	s.entries = next
	s.persist()
	return s.snapshot()
}

// Entries returns a copy of the current list
func (s *Store) Entries() []model.RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// persist writes the list synchronously. Callers hold s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		logger.Log.Errorw("encode recent downloads", "error", err)
		return
	}
	s.storage.SetString(StorageKey, string(data))
}

func (s *Store) snapshot() []model.RecentEntry {
	out := make([]model.RecentEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
