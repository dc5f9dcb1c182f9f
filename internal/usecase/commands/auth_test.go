//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/auth"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/fixturetest"

	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	cancel   context.CancelFunc
	clock    *clock.MockClock
	env      *fixturetest.Env
	sessions *session.MemoryStore
	jwt      *jwt.Service
	cmds     commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, jakarta))
	s.env = fixturetest.NewEnv(s.T(), s.clock.Now())
	s.sessions = session.NewMemoryStore(s.clock)
	s.jwt = jwt.NewService("unit-test-secret", time.Hour)
	s.cmds = commands.NewAuthCommands(s.env.Users, s.env.Users, s.sessions, s.jwt, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.cancel()
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success: creates a user and signs in", func() {
		result, err := s.cmds.Register(s.ctx, commands.RegisterInput{
			Email:    "New.Person@Example.com",
			Password: "longpassword",
			FullName: "New Person",
		})
		s.Require().NoError(err)

		s.Equal("new.person@example.com", result.Email)
		s.Equal(user.RoleUser, result.Role)
		s.True(result.ExpiresAt.Equal(s.clock.Now().Add(time.Hour)))

		claims, err := s.jwt.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(result.UserID, claims.UserID)

		profile, err := s.env.Users.FindByID(s.ctx, result.UserID)
		s.Require().NoError(err)
		s.Equal("New Person", profile.FullName)
	})

	s.Run("error: email taken", func() {
		_, err := s.cmds.Register(s.ctx, commands.RegisterInput{
			Email:    fixturetest.UserEmail,
			Password: "longpassword",
			FullName: "Impostor",
		})
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: validation", func() {
		cases := []struct {
			name string
			in   commands.RegisterInput
			is   error
		}{
			{"bad email", commands.RegisterInput{Email: "nope", Password: "longpassword", FullName: "A"}, user.ErrInvalidEmail},
			{"weak password", commands.RegisterInput{Email: "a@example.com", Password: "short", FullName: "A"}, user.ErrPasswordTooWeak},
			{"blank name", commands.RegisterInput{Email: "a@example.com", Password: "longpassword", FullName: " "}, user.ErrInvalidFullName},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Register(s.ctx, tc.in)
				s.True(errs.Is(err, commands.ErrDomainValidation))
				s.True(errs.Is(err, tc.is))
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: publishes a sign-in event", func() {
		events, err := s.sessions.Subscribe(s.ctx, s.env.AdminID)
		s.Require().NoError(err)

		result, err := s.cmds.Login(s.ctx, commands.LoginInput{Email: "ADMIN@example.com", Password: dbtest.DefaultPassword})
		s.Require().NoError(err)
		s.Equal(s.env.AdminID, result.UserID)
		s.Equal(user.RoleAdmin, result.Role)

		select {
		case ev := <-events:
			s.Equal(auth.EventSignedIn, ev.Type)
			s.Equal(fixturetest.AdminEmail, ev.Email)
		case <-time.After(time.Second):
			s.Fail("no session event received")
		}
	})

	s.Run("error: wrong password and unknown email look the same", func() {
		_, err := s.cmds.Login(s.ctx, commands.LoginInput{Email: fixturetest.UserEmail, Password: "wrongpassword"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)

		_, err = s.cmds.Login(s.ctx, commands.LoginInput{Email: "ghost@example.com", Password: dbtest.DefaultPassword})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: malformed input", func() {
		_, err := s.cmds.Login(s.ctx, commands.LoginInput{Email: "ghost", Password: "x"})
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	result, err := s.cmds.Login(s.ctx, commands.LoginInput{Email: fixturetest.UserEmail, Password: dbtest.DefaultPassword})
	s.Require().NoError(err)
	claims, err := s.jwt.ValidateToken(result.AccessToken)
	s.Require().NoError(err)

	events, err := s.sessions.Subscribe(s.ctx, s.env.UserID)
	s.Require().NoError(err)

	s.Require().NoError(s.cmds.Logout(s.ctx, shared.Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: claims.SessionID(),
		ExpiresAt: claims.ExpiresAtTime(),
	}))

	revoked, err := s.sessions.IsRevoked(s.ctx, claims.SessionID())
	s.Require().NoError(err)
	s.True(revoked)

	select {
	case ev := <-events:
		s.Equal(auth.EventSignedOut, ev.Type)
	case <-time.After(time.Second):
		s.Fail("no session event received")
	}
}
