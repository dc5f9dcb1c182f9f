//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("unit-test-secret", time.Hour)
	sessions := session.NewMemoryStore(clock.NewRealClock())
	validator := usecase.NewTokenValidator(jwtService, sessions)
	userID := uuid.New()

	t.Run("valid token resolves the principal", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, "member@example.com", user.RoleAdmin)
		require.NoError(t, err)

		principal, err := validator.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.Equal(t, "admin", principal.Role)
		assert.NotEmpty(t, principal.SessionID)
		assert.True(t, principal.ExpiresAt.After(time.Now()))
	})

	t.Run("revoked session is refused", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, "member@example.com", user.RoleUser)
		require.NoError(t, err)
		principal, err := validator.ValidateToken(ctx, token)
		require.NoError(t, err)

		require.NoError(t, sessions.Revoke(ctx, principal.SessionID, principal.ExpiresAt))

		_, err = validator.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, usecase.ErrSessionRevoked)
	})

	t.Run("foreign signature is refused", func(t *testing.T) {
		token, err := jwt.NewService("another-secret", time.Hour).GenerateToken(userID, "member@example.com", user.RoleUser)
		require.NoError(t, err)

		_, err = validator.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token is refused", func(t *testing.T) {
		token, err := jwt.NewService("unit-test-secret", -time.Minute).GenerateToken(userID, "member@example.com", user.RoleUser)
		require.NoError(t, err)

		_, err = validator.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
