package repository

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
)

const insertUserSQL = `INSERT INTO users (` + converter.UserColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create reports a taken email as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.db.Exec(ctx, insertUserSQL, converter.UserToArgs(u)...); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
