package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicecenter/internal/domain"
	"servicecenter/internal/errors"
)

var testUser = domain.User{ID: "2", Login: "мастер2", Role: domain.RoleMaster, Name: "Сергей Иванов"}

func newTestTokenService(now time.Time) *TokenService {
	s := NewTokenService("test-secret", time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestTokenService_IssueAndParse(t *testing.T) {
	now := time.Date(2024, 10, 28, 10, 0, 0, 0, time.UTC)
	s := newTestTokenService(now)

	token, issued, err := s.Issue(testUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	session, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, testUser, session.User)
	assert.Equal(t, issued.TokenID, session.TokenID)
}

func TestTokenService_Expired(t *testing.T) {
	now := time.Date(2024, 10, 28, 10, 0, 0, 0, time.UTC)
	s := newTestTokenService(now)
	token, _, err := s.Issue(testUser)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }

	_, err = s.Parse(token)
	_, ok := errors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("other-secret", time.Hour).Issue(testUser)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "manager",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: string(domain.RoleManager),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsUnknownRole(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "admin",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(token)
	assert.ErrorContains(t, err, "invalid token claims")
}

func TestTokenService_Revoke(t *testing.T) {
	s := NewTokenService("test-secret", time.Hour)
	token, session, err := s.Issue(testUser)
	require.NoError(t, err)

	s.Revoke(*session)

	_, err = s.Parse(token)
	assert.ErrorContains(t, err, "session has ended")
}

func TestTokenService_RevokePrunesExpiredEntries(t *testing.T) {
	now := time.Date(2024, 10, 28, 10, 0, 0, 0, time.UTC)
	s := newTestTokenService(now)
	s.Revoke(Session{TokenID: "old", ExpiresAt: now.Add(-time.Minute)})
	s.Revoke(Session{TokenID: "new", ExpiresAt: now.Add(time.Minute)})

	assert.NotContains(t, s.revoked, "old")
	assert.Contains(t, s.revoked, "new")
}

func TestTokenService_EmptySecret(t *testing.T) {
	_, _, err := NewTokenService("", time.Hour).Issue(testUser)
	assert.ErrorContains(t, err, "secret is empty")
}
