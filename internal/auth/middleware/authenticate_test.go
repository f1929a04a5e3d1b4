package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicecenter/internal/auth/service"
	"servicecenter/internal/domain"
)

const testSecret = "test-secret"

var (
	managerUser = domain.User{ID: "manager", Login: "менеджер", Role: domain.RoleManager, Name: "Менеджер"}
	masterUser  = domain.User{ID: "1", Login: "мастер1", Role: domain.RoleMaster, Name: "Иван Петров"}
)

func buildTestRouter(tokens *service.TokenService, roles ...domain.Role) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(Authenticate(tokens, zap.NewNop()))
		if len(roles) > 0 {
			r.Use(RequireRole(zap.NewNop(), roles...))
		}
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			user, _ := UserFrom(r.Context())
			_ = json.NewEncoder(w).Encode(map[string]string{"id": user.ID})
		})
	})
	return r
}

func bearer(t *testing.T, tokens *service.TokenService, user domain.User) string {
	t.Helper()
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	rr := doRequest(buildTestRouter(tokens), bearer(t, tokens, masterUser))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"1"}`, rr.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rr := doRequest(buildTestRouter(service.NewTokenService(testSecret, time.Hour)), "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_BadFormat(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	rr := doRequest(buildTestRouter(tokens), "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rr := doRequest(buildTestRouter(service.NewTokenService(testSecret, time.Hour)), "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token, session, err := tokens.Issue(masterUser)
	require.NoError(t, err)
	tokens.Revoke(*session)

	rr := doRequest(buildTestRouter(tokens), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_ManagerAllowed(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	rr := doRequest(buildTestRouter(tokens, domain.RoleManager), bearer(t, tokens, managerUser))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireRole_MasterForbidden(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)

	rr := doRequest(buildTestRouter(tokens, domain.RoleManager), bearer(t, tokens, masterUser))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUserFrom_EmptyContext(t *testing.T) {
	_, ok := UserFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
