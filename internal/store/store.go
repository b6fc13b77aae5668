package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sessionfs/sessionfs/internal/events"
	"github.com/sessionfs/sessionfs/internal/types"
)

// FileKind discriminates entry types. The store only ever reports files.
type FileKind string

const (
	KindFile FileKind = "file"
)

// Metadata describes a virtual resource. Size is always zero: content is
// synthesized on demand, so no byte count is precomputed.
type Metadata struct {
	Kind       FileKind  `json:"kind"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Resolver answers whether a resource key belongs to a live session.
// The registry implements it.
type Resolver interface {
	Get(key string) (types.SessionRecord, bool)
}

// Store exposes session records as a read-only virtual file surface.
//
// Every operation resolves or rejects immediately; nothing blocks. All
// mutating operations except Rename fail with NotPermitted. Rename only
// emits a moved notification: the corresponding registry mutation is the
// caller's responsibility (two-phase protocol).
type Store struct {
	scheme   string
	resolver Resolver
	moved    *events.Emitter[types.MovedEvent]
	clock    func() time.Time
}

// New creates a store over the given resolver.
func New(scheme string, resolver Resolver) *Store {
	if scheme == "" {
		scheme = types.DefaultScheme
	}
	return &Store{
		scheme:   scheme,
		resolver: resolver,
		moved:    events.New[types.MovedEvent](),
		clock:    time.Now,
	}
}

// Scheme returns the fixed resource key scheme for this store.
func (s *Store) Scheme() string { return s.scheme }

// Stat returns metadata for key, or NotFound.
func (s *Store) Stat(key string) (Metadata, error) {
	if _, ok := s.resolver.Get(key); !ok {
		return Metadata{}, notFound(key)
	}
	now := s.clock()
	return Metadata{
		Kind:       KindFile,
		Size:       0,
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

// Read synthesizes and returns the UTF-8 content for key, or NotFound.
// Content is deterministic given the key and regenerated on every call.
func (s *Store) Read(key string) ([]byte, error) {
	if _, ok := s.resolver.Get(key); !ok {
		return nil, notFound(key)
	}
	content := fmt.Sprintf("Chat Session: %s\n\nThis is the content of the session.", types.KeyPath(key))
	return []byte(content), nil
}

// WriteOptions mirror the host's create/overwrite flags. They are
// accepted and ignored: writes are rejected unconditionally.
type WriteOptions struct {
	Create    bool
	Overwrite bool
}

// Write always fails with NotPermitted.
func (s *Store) Write(key string, data []byte, opts WriteOptions) error {
	return notPermitted("write")
}

// Delete always fails with NotPermitted.
func (s *Store) Delete(key string) error {
	return notPermitted("delete")
}

// CreateDirectory always fails with NotPermitted.
func (s *Store) CreateDirectory(key string) error {
	return notPermitted("createDirectory")
}

// DirEntry is one name/kind pair from a directory listing.
type DirEntry struct {
	Name string   `json:"name"`
	Kind FileKind `json:"kind"`
}

// ListDirectory returns an empty listing: no hierarchy is modeled.
func (s *Store) ListDirectory(key string) []DirEntry {
	return []DirEntry{}
}

// Rename emits a moved notification for oldKey -> newKey. It does NOT
// update the registry; a listener installed by the shell performs that
// mutation as phase two of the rename protocol.
func (s *Store) Rename(oldKey, newKey string) {
	s.moved.Emit(types.MovedEvent{OldKey: oldKey, NewKey: newKey})
}

// SubscribeMoved registers fn on the moved-notification stream.
func (s *Store) SubscribeMoved(fn func(types.MovedEvent)) *events.Subscription {
	return s.moved.Subscribe(fn)
}

// WatchHandle is a no-op subscription: the store has no background
// change source to watch. Close releases it and is itself a no-op.
type WatchHandle struct {
	ID  string
	Key string
}

// Close releases the watch.
func (w *WatchHandle) Close() {}

// Watch registers interest in key. The returned handle never fires.
func (s *Store) Watch(key string) *WatchHandle {
	return &WatchHandle{ID: uuid.NewString(), Key: key}
}
