package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicecenter/internal/auth/service"
	"servicecenter/internal/domain"
	apperrors "servicecenter/internal/errors"
	"servicecenter/internal/respond"
)

type TokenParser interface {
	Parse(token string) (*service.Session, error)
}

type sessionKey struct{}

func WithSession(ctx context.Context, session *service.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func SessionFrom(ctx context.Context) (*service.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*service.Session)
	return session, ok && session != nil
}

func UserFrom(ctx context.Context) (domain.User, bool) {
	session, ok := SessionFrom(ctx)
	if !ok {
		return domain.User{}, false
	}
	return session.User, true
}

// Authenticate requires a valid `Authorization: Bearer <token>` header and puts the
// session into the request context.
func Authenticate(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respond.Error(w, uuid.New().String(), apperrors.NewUnauthorizedError("authorization header is missing"), logger)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				respond.Error(w, uuid.New().String(), apperrors.NewUnauthorizedError("invalid token format"), logger)
				return
			}

			session, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Debug("rejected token", zap.Error(err))
				respond.Error(w, uuid.New().String(), err, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireRole lets the request through only for the listed roles. It must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				respond.Error(w, uuid.New().String(), apperrors.NewUnauthorizedError("no session"), logger)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("role not allowed", zap.String("userId", user.ID), zap.String("role", string(user.Role)), zap.String("path", r.URL.Path))
			respond.Error(w, uuid.New().String(), apperrors.NewForbiddenError("operation not allowed for role "+string(user.Role)), logger)
		})
	}
}
