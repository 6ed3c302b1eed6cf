package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Entry is a single recorded pick. The front-end owns the field set
// (Player, PlayerTeam, OppTeam, Position, Stat, LineMode, LineValue, Pick,
// Level, Multiplier, ...); the store persists whatever it is given and
// manages only the "id" field.
type Entry map[string]interface{}

// ID returns the entry's id field if present and integral.
// JSON numbers decode as float64, so both forms are accepted.
func (e Entry) ID() (int, bool) {
	switch v := e["id"].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// SetID assigns the entry's id field.
func (e Entry) SetID(id int) {
	e["id"] = id
}

// EntryStore persists entries as a JSON array in a single flat file.
// Every operation reads, mutates and rewrites the whole file; a mutex
// serializes mutations so concurrent requests cannot lose writes.
type EntryStore struct {
	mu   sync.Mutex
	path string
}

// NewEntryStore creates a store backed by the given file path. The file
// is created lazily on first write.
func NewEntryStore(path string) *EntryStore {
	return &EntryStore{path: path}
}

// List returns all entries in index order. A missing or corrupt file is
// treated as an empty store rather than an error.
func (s *EntryStore) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Upsert replaces the entry at e's id when that id is a valid existing
// index; otherwise it assigns id = count and appends. The full entry list
// after the mutation is returned.
func (s *EntryStore) Upsert(e Entry) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	if id, ok := e.ID(); ok && id >= 0 && id < len(entries) {
		entries[id] = e
	} else {
		e.SetID(len(entries))
		entries = append(entries, e)
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry at the given index and renumbers every
// subsequent entry down by one, keeping ids dense and contiguous. An
// out-of-range id is a no-op.
func (s *EntryStore) Delete(id int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	if id < 0 || id >= len(entries) {
		return entries, nil
	}

	entries = append(entries[:id], entries[id+1:]...)
	for i, e := range entries {
		e.SetID(i)
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *EntryStore) load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("Failed to read entries file, treating as empty")
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Entries file is corrupt, treating as empty")
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	return entries
}

func (s *EntryStore) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write entries file: %w", err)
	}
	return nil
}
