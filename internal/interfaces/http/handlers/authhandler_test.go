package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers/testutil"
	"github.com/tosinajy/carrier-code-verify/internal/shared/config"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

var testCookieConfig = config.CookieConfig{Path: "/", SameSite: "Lax"}

func newAuthHandler(login *mockLoginUC, logout *mockLogoutUC, now time.Time) *AuthHandler {
	if login == nil {
		login = &mockLoginUC{}
	}
	if logout == nil {
		logout = &mockLogoutUC{}
	}
	h := NewAuthHandler(login, logout, testCookieConfig, logger.NewNopLogger())
	h.now = func() time.Time { return now }
	return h
}

func TestAuthHandler_Login_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var got usecases.LoginCommand
	login := &mockLoginUC{
		ExecuteFunc: func(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
			got = cmd
			return &usecases.LoginResult{
				SessionID: "s-1",
				Token:     "signed-token",
				ExpiresAt: now.Add(30 * time.Minute),
			}, nil
		},
	}
	h := newAuthHandler(login, nil, now)

	c, w := testutil.NewFormContext("/admin/login", url.Values{
		"username": {"steward"},
		"password": {"s3cret-pass"},
	})
	c.Request.Header.Set("User-Agent", "test-agent")

	h.Login(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, pathDashboard, w.Header().Get("Location"))
	assert.Equal(t, "steward", got.Username)
	assert.Equal(t, "s3cret-pass", got.Password)
	assert.Equal(t, "test-agent", got.UserAgent)

	session := testutil.Cookie(w, utils.SessionTokenCookie)
	require.NotNil(t, session)
	assert.Equal(t, "signed-token", session.Value)
	assert.Equal(t, 1800, session.MaxAge)
	assert.True(t, session.HttpOnly)

	csrf := testutil.Cookie(w, utils.CSRFTokenCookie)
	require.NotNil(t, csrf)
	assert.Len(t, csrf.Value, 64)

	flash := testutil.Flash(w)
	require.NotNil(t, flash)
	assert.Equal(t, utils.FlashSuccess, flash.Category)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		err          error
		wantCategory utils.FlashCategory
		wantMessage  string
	}{
		{
			name:         "missing fields",
			form:         url.Values{"username": {"steward"}},
			wantCategory: utils.FlashWarning,
			wantMessage:  "Username and password are required.",
		},
		{
			name:         "invalid credentials",
			form:         url.Values{"username": {"steward"}, "password": {"wrong"}},
			err:          sharedErrors.NewUnauthorizedError("Invalid credentials"),
			wantCategory: utils.FlashDanger,
			wantMessage:  "Invalid credentials",
		},
		{
			name:         "rate limited",
			form:         url.Values{"username": {"steward"}, "password": {"wrong"}},
			err:          sharedErrors.NewRateLimitedError("Too many login attempts. Try again later."),
			wantCategory: utils.FlashDanger,
			wantMessage:  "Too many login attempts. Try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login := &mockLoginUC{
				ExecuteFunc: func(context.Context, usecases.LoginCommand) (*usecases.LoginResult, error) {
					return nil, tt.err
				},
			}
			h := newAuthHandler(login, nil, time.Now())

			c, w := testutil.NewFormContext("/admin/login", tt.form)
			h.Login(c)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, pathLogin, w.Header().Get("Location"))
			assert.Nil(t, testutil.Cookie(w, utils.SessionTokenCookie))
			flash := testutil.Flash(w)
			require.NotNil(t, flash)
			assert.Equal(t, tt.wantCategory, flash.Category)
			assert.Equal(t, tt.wantMessage, flash.Message)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	logout := &mockLogoutUC{}
	h := newAuthHandler(nil, logout, time.Now())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/logout")
	testutil.SetAuthContext(c, 1, "steward")

	h.Logout(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, pathLogin, w.Header().Get("Location"))
	assert.Equal(t, []string{"test-session-id"}, logout.sessionIDs)

	session := testutil.Cookie(w, utils.SessionTokenCookie)
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}

func TestAuthHandler_LoginPage(t *testing.T) {
	h := newAuthHandler(nil, nil, time.Now())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/login")
	testutil.SetFlashCookie(c, utils.FlashDanger, "Access denied. Admin privileges required.")

	h.LoginPage(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.PageResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Flash)
	assert.Equal(t, "Access denied. Admin privileges required.", resp.Flash.Message)
}

func TestHealthHandler(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health")
	NewHealthHandler(&mockPinger{}, logger.NewNopLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"carrier-code-verify","database":"up"}`, w.Body.String())

	c, w = testutil.NewTestContext(http.MethodGet, "/health")
	NewHealthHandler(&mockPinger{err: context.DeadlineExceeded}, logger.NewNopLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
