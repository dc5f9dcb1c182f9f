package session

import (
	"context"
	"sync"
	"time"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// MemoryStore is the single-process session store used when no Redis address
// is configured.
type MemoryStore struct {
	mu          sync.Mutex
	clock       clock.Clock
	revoked     map[string]time.Time
	subscribers map[uuid.UUID]map[chan shared.SessionEvent]struct{}
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:       clk,
		revoked:     make(map[string]time.Time),
		subscribers: make(map[uuid.UUID]map[chan shared.SessionEvent]struct{}),
	}
}

func (s *MemoryStore) Revoke(_ context.Context, sessionID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	if until.After(now) {
		s.revoked[sessionID] = until
	}
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.revoked[sessionID]
	return ok && exp.After(s.clock.Now()), nil
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
func (s *MemoryStore) Publish(_ context.Context, event shared.SessionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subscribers[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan shared.SessionEvent, error) {
	ch := make(chan shared.SessionEvent, subscriberBuffer)

	s.mu.Lock()
	subs, ok := s.subscribers[userID]
	if !ok {
		subs = make(map[chan shared.SessionEvent]struct{})
		s.subscribers[userID] = subs
	}
	subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers[userID], ch)
		if len(s.subscribers[userID]) == 0 {
			delete(s.subscribers, userID)
		}
		close(ch)
	}()

	return ch, nil
}
