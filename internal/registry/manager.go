package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sessionfs/sessionfs/internal/events"
	"github.com/sessionfs/sessionfs/internal/types"
)

var (
	// ErrNotFound indicates the key does not resolve to a record.
	ErrNotFound = errors.New("session not found")
	// ErrKeyExists indicates a rename target collides with a live key.
	ErrKeyExists = errors.New("session key already exists")
)

// Manager is the authoritative in-memory list of session records.
//
// Records are created once at construction and never added or removed
// afterwards. The only permitted mutation is overwriting a record's key
// via Rename. Iteration order is insertion order and survives renames.
type Manager struct {
	mu      sync.RWMutex
	records []types.SessionRecord
	index   map[string]int // key -> position in records
	renames int64
	changes *events.Emitter[[]types.RecordChange]
}

// NewManager creates a registry seeded with the given records.
// Records with duplicate or empty keys are dropped; first occurrence wins.
func NewManager(seed []types.SessionRecord) *Manager {
	m := &Manager{
		index:   make(map[string]int, len(seed)),
		changes: events.New[[]types.RecordChange](),
	}
	for _, rec := range seed {
		if rec.Key == "" {
			continue
		}
		if _, dup := m.index[rec.Key]; dup {
			continue
		}
		m.index[rec.Key] = len(m.records)
		m.records = append(m.records, rec)
	}
	return m
}

// List returns a copy of all records in insertion order.
// Safe for concurrent callers; mutating the result has no effect.
func (m *Manager) List() []types.SessionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.SessionRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Get returns the record for key, if present.
func (m *Manager) Get(key string) (types.SessionRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[key]
	if !ok {
		return types.SessionRecord{}, false
	}
	return m.records[i], true
}

// Rename moves the record at oldKey to newKey. Only the key changes; the
// record keeps its position, label, description, status, and timing.
// Subscribers receive the {original, modified} pair on success.
//
// The read-compare-write runs under one lock so two concurrent renames of
// the same record cannot lose an update.
func (m *Manager) Rename(oldKey, newKey string) error {
	if newKey == "" {
		return fmt.Errorf("rename to %q: empty key", newKey)
	}

	m.mu.Lock()
	i, ok := m.index[oldKey]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("rename %q: %w", oldKey, ErrNotFound)
	}
	if oldKey == newKey {
		m.mu.Unlock()
		return nil
	}
	if _, taken := m.index[newKey]; taken {
		m.mu.Unlock()
		return fmt.Errorf("rename %q to %q: %w", oldKey, newKey, ErrKeyExists)
	}

	original := m.records[i]
	m.records[i].Key = newKey
	modified := m.records[i]
	delete(m.index, oldKey)
	m.index[newKey] = i
	atomic.AddInt64(&m.renames, 1)
	m.mu.Unlock()

	m.changes.Emit([]types.RecordChange{{Original: original, Modified: modified}})
	return nil
}

// Subscribe registers fn to run whenever the registry's visible contents
// change. Callers must release the subscription when done.
func (m *Manager) Subscribe(fn func([]types.RecordChange)) *events.Subscription {
	return m.changes.Subscribe(fn)
}

// Stats returns registry statistics.
func (m *Manager) Stats() types.RegistryStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byStatus := make(map[types.Status]int)
	for _, rec := range m.records {
		byStatus[rec.Status]++
	}

	return types.RegistryStats{
		TotalSessions: len(m.records),
		ByStatus:      byStatus,
		Renames:       atomic.LoadInt64(&m.renames),
	}
}
