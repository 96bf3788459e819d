// Package authstate holds the observable authentication state: one snapshot
// per signed-in identity, written solely by the session listener and read by
// the HTTP layer.
package authstate

import (
	"context"
	"sync"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// Snapshot is the auth state of one identity at a point in time. A zero
// Snapshot means signed out.
type Snapshot struct {
	Profile  *entity.Profile      // Resolved application profile; nil while loading or unresolvable.
	Identity *entity.Identity     // The authenticated identity; nil while loading.
	Session  *entity.SessionToken // Current token material; nil after sign-out.
	Loading  bool                 // True from the session event until resolution finishes.
	// ProfileLoading narrows Loading to the profile fetch itself; the identity
	// may already be present while the profile is still resolving.
	ProfileLoading bool
}

// SignedIn reports whether the snapshot carries an authenticated identity.
func (s Snapshot) SignedIn() bool {
	return s.Identity != nil || s.Session != nil || s.Loading
}

// Store keeps the latest Snapshot per identity. The session listener is the
// only writer; Get and Watch are safe for any number of concurrent readers.
type Store struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]Snapshot
	watchers  map[uuid.UUID]map[uint64]chan Snapshot
	nextWatch uint64
}

// NewStore creates an empty auth-state store.
func NewStore() *Store {
	return &Store{
		snapshots: make(map[uuid.UUID]Snapshot),
		watchers:  make(map[uuid.UUID]map[uint64]chan Snapshot),
	}
}

// Get returns the current snapshot for an identity and whether one exists.
func (s *Store) Get(identityID uuid.UUID) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[identityID]

	return snap, ok
}

// Set replaces the snapshot for an identity and notifies its watchers.
// Only the session listener may call this.
func (s *Store) Set(identityID uuid.UUID, snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[identityID] = snap
	s.notifyLocked(identityID, snap)
}

// Clear removes the snapshot for an identity and notifies its watchers with a
// zero (signed-out) snapshot. Only the session listener may call this.
func (s *Store) Clear(identityID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, identityID)
	s.notifyLocked(identityID, Snapshot{})
}

// Watch returns a channel delivering snapshot updates for an identity until
// the context is canceled. Each watcher observes the latest state: when
// updates outpace the reader, intermediate snapshots are dropped in favor of
// the newest one. The current snapshot, if any, is delivered immediately.
func (s *Store) Watch(ctx context.Context, identityID uuid.UUID) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextWatch
	s.nextWatch++

	if s.watchers[identityID] == nil {
		s.watchers[identityID] = make(map[uint64]chan Snapshot)
	}
	s.watchers[identityID][id] = ch

	if snap, ok := s.snapshots[identityID]; ok {
		ch <- snap
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		defer s.mu.Unlock()

		if set, ok := s.watchers[identityID]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(s.watchers, identityID)
			}
		}
		close(ch)
	}()

	return ch
}

// notifyLocked pushes a snapshot to every watcher of the identity. All sends
// happen under s.mu, so after draining a full buffer the follow-up send
// cannot block.
func (s *Store) notifyLocked(identityID uuid.UUID, snap Snapshot) {
	for _, ch := range s.watchers[identityID] {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
