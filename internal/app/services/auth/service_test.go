package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "chaletbay/internal/domain/auth"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (stubHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

type stubTokens struct {
	next string
}

func (s stubTokens) NewToken() (string, error) { return s.next, nil }

type memorySessions struct {
	items map[domainauth.Token]*domainauth.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{items: make(map[domainauth.Token]*domainauth.Session)}
}

func (m *memorySessions) Save(ctx context.Context, s *domainauth.Session) error {
	m.items[s.Token] = s
	return nil
}

func (m *memorySessions) Get(ctx context.Context, token domainauth.Token) (*domainauth.Session, error) {
	if s, ok := m.items[token]; ok {
		return s, nil
	}
	return nil, domainauth.ErrSessionNotFound
}

func (m *memorySessions) Delete(ctx context.Context, token domainauth.Token) error {
	delete(m.items, token)
	return nil
}

func newService() (*Service, *memorySessions) {
	sessions := newMemorySessions()
	svc := &Service{
		AdminUser:  "admin",
		AdminHash:  "hash:secret",
		Sessions:   sessions,
		Passwords:  stubHasher{},
		Tokens:     stubTokens{next: "tok-1"},
		SessionTTL: time.Hour,
	}
	return svc, sessions
}

func TestLoginIssuesSession(t *testing.T) {
	svc, sessions := newService()
	token, err := svc.Login(context.Background(), LoginParams{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Contains(t, sessions.items, domainauth.Token("tok-1"))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Login(context.Background(), LoginParams{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginParams{Username: "intruder", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveExpiredSession(t *testing.T) {
	svc, sessions := newService()
	token, err := svc.Login(context.Background(), LoginParams{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	sessions.items[domainauth.Token(token)].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotContains(t, sessions.items, domainauth.Token(token), "expired sessions are removed")
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	svc, _ := newService()
	assert.NoError(t, svc.Logout(context.Background(), "missing"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
