package commands

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/auth"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.ErrEmailTaken
	ErrSessionRevoke        = errs.ErrSessionRevoke
)

type AuthResult struct {
	UserID      uuid.UUID
	Email       string
	FullName    string
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, p shared.Principal) error
}

type authCommandsImpl struct {
	users      shared.UserRepository
	readStore  queries.UserReadStore
	sessions   shared.SessionStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(
	users shared.UserRepository,
	readStore queries.UserReadStore,
	sessions shared.SessionStore,
	jwtService *jwt.Service,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		readStore:  readStore,
		sessions:   sessions,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	reg, err := auth.NewRegistration(in.Email, in.Password, in.FullName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(reg.Email(), reg.FullName(), hash, a.clock.Now())
	if err := a.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.signIn(ctx, u.ID(), u.Email().Value(), u.FullName().Value(), u.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	profile, hashed, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch to avoid user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hashed, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(profile.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.signIn(ctx, profile.ID, profile.Email, profile.FullName, role)
}

func (a *authCommandsImpl) Logout(ctx context.Context, p shared.Principal) error {
	if err := a.sessions.Revoke(ctx, p.SessionID, p.ExpiresAt); err != nil {
		return errs.Mark(err, ErrSessionRevoke)
	}

	a.publish(ctx, shared.SessionEvent{
		Type:   auth.EventSignedOut,
		UserID: p.UserID,
		Email:  p.Email,
		At:     a.clock.Now(),
	})
	return nil
}

func (a *authCommandsImpl) signIn(ctx context.Context, userID uuid.UUID, email, fullName string, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	a.publish(ctx, shared.SessionEvent{
		Type:   auth.EventSignedIn,
		UserID: userID,
		Email:  email,
		At:     now,
	})

	return &AuthResult{
		UserID:      userID,
		Email:       email,
		FullName:    fullName,
		Role:        role,
		AccessToken: token,
		ExpiresAt:   now.Add(a.jwtService.TokenDuration()),
	}, nil
}

// publish failures never fail the auth operation itself.
func (a *authCommandsImpl) publish(ctx context.Context, event shared.SessionEvent) {
	if err := a.sessions.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish session event",
			"type", string(event.Type),
			"user_id", event.UserID,
			"error", err.Error(),
		)
	}
}
