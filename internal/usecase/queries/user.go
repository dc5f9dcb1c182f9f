package queries

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.ErrUserNotFound

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
	// WatchSession streams sign-in and sign-out events of userID until ctx
	// is done.
	WatchSession(ctx context.Context, userID uuid.UUID) (<-chan shared.SessionEvent, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	// FindByEmail also returns the bcrypt password hash.
	FindByEmail(ctx context.Context, email string) (*UserProfileView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	sessions  shared.SessionStore
}

func NewUserQueries(readStore UserReadStore, sessions shared.SessionStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
		sessions:  sessions,
	}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return user, nil
}

func (q *userQueriesImpl) WatchSession(ctx context.Context, userID uuid.UUID) (<-chan shared.SessionEvent, error) {
	events, err := q.sessions.Subscribe(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "subscribe session events")
	}
	return events, nil
}
