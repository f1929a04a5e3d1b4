package service

import (
	"strings"

	"go.uber.org/zap"

	"servicecenter/internal/domain"
	"servicecenter/internal/errors"
)

// Authenticator checks logins against a fixed roster. Passwords are compared in cleartext.
type Authenticator struct {
	credentials []domain.Credential
	logger      *zap.Logger
}

func NewAuthenticator(credentials []domain.Credential, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		credentials: append([]domain.Credential(nil), credentials...),
		logger:      logger,
	}
}

// Authenticate trims both inputs and returns the matching user, or
// errors.ErrInvalidCredentials without saying which field was wrong.
func (a *Authenticator) Authenticate(login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)

	for _, c := range a.credentials {
		if c.Login == login && c.Password == password {
			user := c.User()
			a.logger.Info("login succeeded", zap.String("userId", user.ID), zap.String("role", string(user.Role)))
			return &user, nil
		}
	}

	a.logger.Warn("login failed", zap.String("login", login))
	return nil, errors.ErrInvalidCredentials
}
