//go:build unit

package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"room-booking/internal/domain/auth"
	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRevocation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	store := session.NewMemoryStore(clk)

	require.NoError(t, store.Revoke(ctx, "s1", clk.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "stale", clk.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked, "already expired sessions are not remembered")

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	clk.Add(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation lapses with the token")
}

func TestMemoryStoreFanOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := session.NewMemoryStore(clock.NewRealClock())
	userID := uuid.New()

	first, err := store.Subscribe(ctx, userID)
	require.NoError(t, err)
	second, err := store.Subscribe(ctx, userID)
	require.NoError(t, err)

	event := shared.SessionEvent{Type: auth.EventSignedOut, UserID: userID, Email: "member@example.com"}
	require.NoError(t, store.Publish(ctx, event))

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
}

func TestMemoryStorePublishNeverBlocks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := session.NewMemoryStore(clock.NewRealClock())
	userID := uuid.New()

	_, err := store.Subscribe(ctx, userID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			_ = store.Publish(ctx, shared.SessionEvent{Type: auth.EventSignedIn, UserID: userID})
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
