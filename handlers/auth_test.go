package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/settleview/settleview-api/internal/config"
	"github.com/settleview/settleview-api/internal/sessions"
	"github.com/settleview/settleview-api/internal/tokens"
	"github.com/settleview/settleview-api/internal/users"
	"github.com/settleview/settleview-api/pkg/middleware"
)

type authEnv struct {
	router    *gin.Engine
	cfg       *config.Config
	usersSvc  *users.Service
	blacklist *sessions.Blacklist
}

func newAuthEnv(t *testing.T, blacklist *sessions.Blacklist) *authEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret-32-bytes-xxxxxx"
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = 7 * 24 * time.Hour

	usersSvc := users.NewService(users.NewMemoryRepository())
	_, err := usersSvc.Register(context.Background(), "1", "john@example.com", "John Doe", users.RoleClient, "test123")
	require.NoError(t, err)

	sessionsSvc := sessions.NewService(sessions.NewMemoryRepository())
	h := NewAuthHandler(cfg, usersSvc, sessionsSvc, blacklist)

	r := gin.New()
	h.Register(r.Group("/"))

	ver := tokens.NewVerifier(cfg.JWT.Secret, blacklist)
	r.GET("/api/me", middleware.AuthMiddleware(ver), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sub": middleware.Subject(c)})
	})
	return &authEnv{router: r, cfg: cfg, usersSvc: usersSvc, blacklist: blacklist}
}

func (e *authEnv) post(t *testing.T, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesTokens(t *testing.T) {
	env := newAuthEnv(t, nil)

	w := env.post(t, "/auth/login", `{"email":"john@example.com","password":"test123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken  string     `json:"accessToken"`
		RefreshToken string     `json:"refreshToken"`
		User         users.User `json:"user"`
		ExpiresIn    int        `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "John Doe", resp.User.Name)
	require.Equal(t, 900, resp.ExpiresIn)

	// the access token opens protected routes
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	wr := httptest.NewRecorder()
	env.router.ServeHTTP(wr, req)
	require.Equal(t, http.StatusOK, wr.Code)
	require.JSONEq(t, `{"sub":"1"}`, wr.Body.String())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newAuthEnv(t, nil)

	w := env.post(t, "/auth/login", `{"email":"john@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.post(t, "/auth/login", `{"email":"nobody@example.com","password":"test123"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.post(t, "/auth/login", `{"email":"john@example.com"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	env := newAuthEnv(t, nil)

	w := env.post(t, "/auth/login", `{"email":"john@example.com","password":"test123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = env.post(t, "/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	require.NotEmpty(t, refreshed.AccessToken)

	w = env.post(t, "/auth/refresh", `{"refresh_token":"never-issued"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesTokens(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	blacklist := sessions.NewBlacklist(redis.NewClient(&redis.Options{Addr: m.Addr()}))

	env := newAuthEnv(t, blacklist)

	w := env.post(t, "/auth/login", `{"email":"john@example.com","password":"test123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = env.post(t, "/auth/logout", `{"refresh_token":"`+login.RefreshToken+`"}`, login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	// the refresh token is gone
	w = env.post(t, "/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// the access token is blacklisted
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	wr := httptest.NewRecorder()
	env.router.ServeHTTP(wr, req)
	require.Equal(t, http.StatusUnauthorized, wr.Code)
}
