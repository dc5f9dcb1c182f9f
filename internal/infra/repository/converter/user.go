package converter

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = "id, email, full_name, password_hash, role, created_at"

type UserRow struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    pgtype.Timestamptz
}

func (u *UserRow) Targets() []any {
	return []any{&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt}
}

func UserToView(row UserRow) *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func UserToArgs(u *user.User) []any {
	return []any{
		u.ID(),
		u.Email().Value(),
		u.FullName().Value(),
		u.PasswordHash(),
		u.Role().String(),
		pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
