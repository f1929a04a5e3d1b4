package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicecenter/internal/auth/middleware"
	"servicecenter/internal/auth/service"
	"servicecenter/internal/dto"
	"servicecenter/internal/respond"
	"servicecenter/internal/seed"
)

func newTestController() (*AuthController, *service.TokenService) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	auth := service.NewAuthenticator(seed.Roster().Credentials, zap.NewNop())
	return NewAuthController(auth, tokens, zap.NewNop()), tokens
}

func postLogin(c *AuthController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	c.Login(rr, req)
	return rr
}

func TestLogin_Manager(t *testing.T) {
	c, tokens := newTestController()

	rr := postLogin(c, `{"login":"менеджер","password":"менеджер"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "manager", resp.User.Role)
	assert.Equal(t, "manager_dashboard", resp.View)
	assert.NotEmpty(t, resp.TraceID)

	session, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager", session.User.ID)
}

func TestLogin_Master(t *testing.T) {
	c, _ := newTestController()

	rr := postLogin(c, `{"login":" мастер1 ","password":"пасс1"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "master_dashboard", resp.View)
}

func TestLogin_WrongPasswordIsGeneric(t *testing.T) {
	c, _ := newTestController()

	rr := postLogin(c, `{"login":"мастер1","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "incorrect login or password", resp.Message)
	assert.NotContains(t, rr.Body.String(), "password is")
}

func TestLogin_MissingFields(t *testing.T) {
	c, _ := newTestController()

	rr := postLogin(c, `{"login":""}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Details, 2)
}

func TestLogin_InvalidJSON(t *testing.T) {
	c, _ := newTestController()

	rr := postLogin(c, `{`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	c, tokens := newTestController()
	user := seed.Roster().Credentials[0].User()
	token, session, err := tokens.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rr := httptest.NewRecorder()
	c.Logout(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, err = tokens.Parse(token)
	assert.Error(t, err)
}

func TestMe(t *testing.T) {
	c, tokens := newTestController()
	_, session, err := tokens.Issue(seed.Roster().Credentials[1].User())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rr := httptest.NewRecorder()
	c.Me(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2", resp.User.ID)
	assert.Equal(t, "master_dashboard", resp.View)
}

func TestMe_NoSession(t *testing.T) {
	c, _ := newTestController()

	rr := httptest.NewRecorder()
	c.Me(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_BodyTooLarge(t *testing.T) {
	c, _ := newTestController()

	rr := postLogin(c, `{"login":"`+strings.Repeat("x", respond.MaxBodyBytes)+`","password":"p"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
