package fixture

import (
	"context"
	"strings"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Users serves both the user repository and the user read store.
type Users struct {
	store *Store
}

func NewUsers(store *Store) *Users {
	return &Users{store: store}
}

func (u *Users) Create(_ context.Context, usr *user.User) error {
	return u.store.insertUser(usr)
}

func (u *Users) FindByID(_ context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	usr, ok := u.store.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return userView(usr), nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*queries.UserProfileView, string, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	id, ok := u.store.emails[strings.ToLower(email)]
	if !ok {
		return nil, "", infra.NotFound("user not found")
	}
	usr := u.store.users[id]
	return userView(usr), usr.PasswordHash(), nil
}

func userView(usr *user.User) *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:        usr.ID(),
		Email:     usr.Email().Value(),
		FullName:  usr.FullName().Value(),
		Role:      usr.Role().String(),
		CreatedAt: usr.CreatedAt(),
	}
}
