package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findUserByIDSQL    = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	findUserByEmailSQL = `SELECT ` + converter.UserColumns + ` FROM users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	var row converter.UserRow
	if err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(row.Targets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserToView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserProfileView, string, error) {
	var row converter.UserRow
	if err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(row.Targets()...); err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return converter.UserToView(row), row.PasswordHash, nil
}
