package review

import (
	"context"
	"sync"
	"time"

	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
)

// Store keeps the decisions a browsing session has made on top of the seed
// collection. Workspaces expire once the session goes idle.
type Store interface {
	// Decisions returns every decision recorded for the session, keyed by submission ID.
	Decisions(ctx context.Context, sessionID string) (map[int]Status, error)

	// Decide records a decision unless the session already holds one for id.
	// It reports whether the decision was recorded.
	Decide(ctx context.Context, sessionID string, id int, status Status) (bool, error)
}

type workspace struct {
	decisions map[int]Status
	lastSeen  time.Time
}

// MemoryStore keeps workspaces in process memory. It serves a single replica.
type MemoryStore struct {
	mu         sync.Mutex
	workspaces map[string]*workspace
	ttl        time.Duration
	now        func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		workspaces: make(map[string]*workspace),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (store *MemoryStore) Decisions(ctx context.Context, sessionID string) (map[int]Status, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, found := store.workspaces[sessionID]
	if !found {
		return map[int]Status{}, nil
	}

	current.lastSeen = store.now()
	decisions := make(map[int]Status, len(current.decisions))
	for id, status := range current.decisions {
		decisions[id] = status
	}
	return decisions, nil
}

func (store *MemoryStore) Decide(ctx context.Context, sessionID string, id int, status Status) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, found := store.workspaces[sessionID]
	if !found {
		current = &workspace{decisions: make(map[int]Status)}
		store.workspaces[sessionID] = current
	}
	current.lastSeen = store.now()

	if _, decided := current.decisions[id]; decided {
		return false, nil
	}
	current.decisions[id] = status
	return true, nil
}

// Cleanup evicts idle workspaces until ctx is cancelled.
func (store *MemoryStore) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(constants.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			store.evictIdle(store.now())
		case <-ctx.Done():
			return
		}
	}
}

func (store *MemoryStore) evictIdle(now time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for sessionID, current := range store.workspaces {
		if now.Sub(current.lastSeen) > store.ttl {
			delete(store.workspaces, sessionID)
		}
	}
}
