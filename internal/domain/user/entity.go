package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a profile row plus the credential hash checked at login.
// Self-registration always yields RoleUser; admins are provisioned out of band.
type User struct {
	id           uuid.UUID
	email        Email
	fullName     FullName
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(email Email, fullName FullName, passwordHash string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         RoleUser,
		createdAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, email Email, fullName FullName, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) FullName() FullName   { return u.fullName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }
