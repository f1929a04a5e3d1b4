package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"servicecenter/internal/domain"
	"servicecenter/internal/errors"
)

// Claims carry the whole session identity so requests need no roster lookup.
type Claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type Session struct {
	User      domain.User
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues HS256 session tokens and remembers tokens revoked by logout
// until they would have expired anyway.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (s *TokenService) Issue(user domain.User) (string, *Session, error) {
	if len(s.secret) == 0 {
		return "", nil, fmt.Errorf("token secret is empty")
	}

	now := s.now()
	session := &Session{
		User:      user,
		TokenID:   uuid.New().String(),
		ExpiresAt: now.Add(s.ttl),
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Login: user.Login,
		Role:  string(user.Role),
		Name:  user.Name,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}

	return token, session, nil
}

func (s *TokenService) Parse(tokenString string) (*Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	role := domain.Role(claims.Role)
	if !role.Valid() || claims.Subject == "" {
		return nil, errors.NewUnauthorizedError("invalid token claims")
	}

	if s.isRevoked(claims.ID) {
		return nil, errors.NewUnauthorizedError("session has ended")
	}

	return &Session{
		User: domain.User{
			ID:    claims.Subject,
			Login: claims.Login,
			Role:  role,
			Name:  claims.Name,
		},
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke ends a session before its token expires.
func (s *TokenService) Revoke(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	s.revoked[session.TokenID] = session.ExpiresAt
}

func (s *TokenService) isRevoked(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[tokenID]
	return ok
}
