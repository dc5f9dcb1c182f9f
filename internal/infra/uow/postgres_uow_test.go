//go:build unit

package uow

import (
	"fmt"
	"testing"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: serialization, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "plain error", err: assert.AnError},
		{name: "nil", err: nil},
		{
			name: "wrapped by a repository and marked by a command",
			err:  errs.Mark(infra.WrapRepoErr("failed to list occupied ranges", serialization), errs.ErrDatabaseOperationFailed),
			want: true,
		},
		{name: "marked on commit", err: errs.Mark(fmt.Errorf("commit: %w", serialization), errTransactionCommit), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond

	for attempt := range maxRetries {
		floor := time.Duration(1<<attempt) * base
		for range 20 {
			got := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, got, floor)
			assert.Less(t, got, floor+floor/5+1)
		}
	}
}

func TestNewPostgresUoWIsolation(t *testing.T) {
	cfg := config.NewTestConfig()
	assert.Equal(t, pgx.ReadCommitted, NewPostgresUoW(nil, cfg).options.IsoLevel)

	cfg.Booking.RejectConflicts = true
	assert.Equal(t, pgx.Serializable, NewPostgresUoW(nil, cfg).options.IsoLevel)
}
