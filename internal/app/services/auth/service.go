package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainauth "chaletbay/internal/domain/auth"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenGenerator interface {
	NewToken() (string, error)
}

// Service authenticates the single administrator account configured at boot.
// There is no user registry: one operator runs the chalet.
type Service struct {
	AdminUser  string
	AdminHash  string
	Sessions   domainauth.SessionStore
	Passwords  PasswordHasher
	Tokens     TokenGenerator
	SessionTTL time.Duration
	Logger     *slog.Logger
}

type LoginParams struct {
	Username string
	Password string
}

func (s *Service) Login(ctx context.Context, params LoginParams) (string, error) {
	username := strings.TrimSpace(params.Username)
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.AdminUser)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := s.Passwords.Compare(s.AdminHash, params.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.NewToken()
	if err != nil {
		return "", err
	}
	session, err := domainauth.NewSession(domainauth.CreateSessionParams{
		Token:    domainauth.Token(token),
		Username: username,
		TTL:      s.SessionTTL,
		Now:      time.Now(),
	})
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.Info("administrator authenticated", "user", username)
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := s.Sessions.Delete(ctx, domainauth.Token(token)); err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Resolve validates a bearer token and returns the live session. Expired
// sessions are deleted on sight.
func (s *Service) Resolve(ctx context.Context, token string) (*domainauth.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	session, err := s.Sessions.Get(ctx, domainauth.Token(token))
	if err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		_ = s.Sessions.Delete(ctx, session.Token)
		return nil, ErrInvalidCredentials
	}
	return session, nil
}
