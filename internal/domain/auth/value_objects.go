package auth

import (
	"room-booking/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is the sign-up payload after validation.
type Registration struct {
	Credentials
	fullName user.FullName
}

func NewRegistration(emailStr, passwordStr, fullNameStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	fullName, err := user.NewFullName(fullNameStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{Credentials: creds, fullName: fullName}, nil
}

func (r Registration) FullName() user.FullName {
	return r.fullName
}

// SessionEventType mirrors the auth state changes a client can observe.
type SessionEventType string

const (
	EventSignedIn  SessionEventType = "SIGNED_IN"
	EventSignedOut SessionEventType = "SIGNED_OUT"
)
