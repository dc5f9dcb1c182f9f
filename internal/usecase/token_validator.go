package usecase

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase/shared"
)

var ErrSessionRevoked = errs.New("session revoked")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*shared.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	sessions   shared.SessionStore
}

func NewTokenValidator(jwtService *jwt.Service, sessions shared.SessionStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*shared.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	revoked, err := t.sessions.IsRevoked(ctx, claims.SessionID())
	if err != nil {
		return nil, errs.Wrap(err, "check session revocation")
	}
	if revoked {
		return nil, ErrSessionRevoked
	}

	return &shared.Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      role.String(),
		SessionID: claims.SessionID(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}
