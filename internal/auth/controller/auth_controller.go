package controller

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicecenter/internal/access"
	"servicecenter/internal/auth/middleware"
	"servicecenter/internal/auth/service"
	"servicecenter/internal/domain"
	"servicecenter/internal/dto"
	apperrors "servicecenter/internal/errors"
	"servicecenter/internal/respond"
)

type Authenticator interface {
	Authenticate(login, password string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(user domain.User) (string, *service.Session, error)
	Revoke(session service.Session)
}

type AuthController struct {
	auth   Authenticator
	tokens TokenIssuer
	logger *zap.Logger
}

func NewAuthController(auth Authenticator, tokens TokenIssuer, logger *zap.Logger) *AuthController {
	return &AuthController{
		auth:   auth,
		tokens: tokens,
		logger: logger,
	}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	r.Body = http.MaxBytesReader(w, r.Body, respond.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.Error(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return
	}

	var details []apperrors.ValidationDetail
	if req.Login == "" {
		details = append(details, apperrors.ValidationDetail{Field: "login", Message: "login is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}
	if len(details) > 0 {
		respond.Error(w, traceID, apperrors.NewValidationError("validation failed", details...), logger)
		return
	}

	user, err := c.auth.Authenticate(req.Login, req.Password)
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}

	token, session, err := c.tokens.Issue(*user)
	if err != nil {
		respond.Error(w, traceID, apperrors.NewInternalError("issuing session token", err), logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		TraceID:   traceID,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.UserFromDomain(*user),
		View:      string(access.SelectView(*user)),
	}, logger)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		respond.Error(w, uuid.New().String(), apperrors.NewUnauthorizedError("no session"), c.logger)
		return
	}

	c.tokens.Revoke(*session)
	c.logger.Info("logout", zap.String("userId", session.User.ID))

	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok {
		respond.Error(w, uuid.New().String(), apperrors.NewUnauthorizedError("no session"), c.logger)
		return
	}

	respond.JSON(w, http.StatusOK, dto.SessionResponse{
		User:      dto.UserFromDomain(session.User),
		View:      string(access.SelectView(session.User)),
		ExpiresAt: session.ExpiresAt,
	}, c.logger)
}
