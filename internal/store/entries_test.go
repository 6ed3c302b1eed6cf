package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *EntryStore {
	t.Helper()
	return NewEntryStore(filepath.Join(t.TempDir(), "entries.json"))
}

// requireContiguousIDs asserts the store invariant: after any mutation the
// id set is exactly {0..count-1} in index order.
func requireContiguousIDs(t *testing.T, entries []Entry) {
	t.Helper()
	for i, e := range entries {
		id, ok := e.ID()
		require.True(t, ok, "Entry %d should carry an id", i)
		require.Equal(t, i, id, "Entry id should equal its index")
	}
}

func TestUpsert_AppendsWithFreshID(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Upsert(Entry{"Player": "Patrick Mahomes"})
	require.NoError(t, err, "Should append first entry")
	require.Len(t, entries, 1)
	requireContiguousIDs(t, entries)

	entries, err = s.Upsert(Entry{"Player": "Josh Allen"})
	require.NoError(t, err, "Should append second entry")
	require.Len(t, entries, 2)
	requireContiguousIDs(t, entries)
	assert.Equal(t, "Josh Allen", entries[1]["Player"])
}

func TestUpsert_ReplacesExistingIndex(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Upsert(Entry{"Player": "Patrick Mahomes"})
	require.NoError(t, err)
	_, err = s.Upsert(Entry{"Player": "Josh Allen"})
	require.NoError(t, err)

	// ids decoded from JSON arrive as float64; the store accepts both
	entries, err := s.Upsert(Entry{"id": float64(0), "Player": "Lamar Jackson"})
	require.NoError(t, err, "Should replace entry 0")
	require.Len(t, entries, 2, "Replace should not grow the list")
	assert.Equal(t, "Lamar Jackson", entries[0]["Player"])
	assert.Equal(t, "Josh Allen", entries[1]["Player"])
	requireContiguousIDs(t, entries)
}

func TestUpsert_OutOfRangeIDAppends(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Upsert(Entry{"Player": "Patrick Mahomes"})
	require.NoError(t, err)

	entries, err := s.Upsert(Entry{"id": 99, "Player": "Josh Allen"})
	require.NoError(t, err, "Out-of-range id should append")
	require.Len(t, entries, 2)
	id, ok := entries[1].ID()
	require.True(t, ok)
	assert.Equal(t, 1, id, "Appended entry should get id = previous count")

	entries, err = s.Upsert(Entry{"id": -3, "Player": "Joe Burrow"})
	require.NoError(t, err, "Negative id should append")
	require.Len(t, entries, 3)
	requireContiguousIDs(t, entries)
}

func TestDelete_RenumbersSubsequentEntries(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := s.Upsert(Entry{"Player": name})
		require.NoError(t, err)
	}

	entries, err := s.Delete(1)
	require.NoError(t, err, "Should delete entry 1")
	require.Len(t, entries, 3)
	requireContiguousIDs(t, entries)
	assert.Equal(t, "A", entries[0]["Player"], "Entries before the deleted index are unchanged")
	assert.Equal(t, "C", entries[1]["Player"], "Entries after the deleted index shift down")
	assert.Equal(t, "D", entries[2]["Player"])
}

func TestDelete_OutOfRangeIsNoOp(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Upsert(Entry{"Player": "A"})
	require.NoError(t, err)

	entries, err := s.Delete(5)
	require.NoError(t, err, "Out-of-range delete should not error")
	require.Len(t, entries, 1)
	requireContiguousIDs(t, entries)
}

func TestIDInvariant_AcrossMutationSequence(t *testing.T) {
	s := newTestStore(t)

	ops := []func() ([]Entry, error){
		func() ([]Entry, error) { return s.Upsert(Entry{"Player": "A"}) },
		func() ([]Entry, error) { return s.Upsert(Entry{"Player": "B"}) },
		func() ([]Entry, error) { return s.Upsert(Entry{"Player": "C"}) },
		func() ([]Entry, error) { return s.Delete(0) },
		func() ([]Entry, error) { return s.Upsert(Entry{"id": 1, "Player": "B2"}) },
		func() ([]Entry, error) { return s.Upsert(Entry{"Player": "D"}) },
		func() ([]Entry, error) { return s.Delete(2) },
		func() ([]Entry, error) { return s.Delete(0) },
	}

	for i, op := range ops {
		entries, err := op()
		require.NoError(t, err, "Operation %d should succeed", i)
		requireContiguousIDs(t, entries)
	}
}

func TestList_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	entries := s.List()
	require.NotNil(t, entries, "List should never return nil")
	assert.Empty(t, entries)
}

func TestList_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewEntryStore(path)
	assert.Empty(t, s.List(), "Corrupt file should degrade to an empty store")
}

func TestEntries_PersistAcrossStoreInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")

	s := NewEntryStore(path)
	_, err := s.Upsert(Entry{"Player": "Patrick Mahomes", "LineValue": 275.5})
	require.NoError(t, err)

	reopened := NewEntryStore(path)
	entries := reopened.List()
	require.Len(t, entries, 1, "Entries should survive a restart")
	assert.Equal(t, "Patrick Mahomes", entries[0]["Player"])
	assert.Equal(t, 275.5, entries[0]["LineValue"])
}
