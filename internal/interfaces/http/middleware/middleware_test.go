package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/application/user/dto"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
	"github.com/tosinajy/carrier-code-verify/internal/shared/config"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockSessionValidator struct {
	ExecuteFunc func(ctx context.Context, token string) (*dto.CurrentUser, error)
}

func (m *mockSessionValidator) Execute(ctx context.Context, token string) (*dto.CurrentUser, error) {
	return m.ExecuteFunc(ctx, token)
}

type mockEnforcer struct {
	EnforceFunc func(role, path, method string) (bool, error)
}

func (m *mockEnforcer) Enforce(role, path, method string) (bool, error) {
	return m.EnforceFunc(role, path, method)
}

type mockLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (m *mockLimiter) Allow(_ context.Context, key string, _ ratelimit.Rule) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowed, m.err
}

func (m *mockLimiter) Reset(context.Context, string) error { return nil }

type fixedDisplay bool

func (f fixedDisplay) ShowAds(context.Context) bool { return bool(f) }

func validatorFor(token string, current *dto.CurrentUser) *mockSessionValidator {
	return &mockSessionValidator{
		ExecuteFunc: func(_ context.Context, got string) (*dto.CurrentUser, error) {
			if got == token {
				return current, nil
			}
			return nil, sharedErrors.NewUnauthorizedError("Login required")
		},
	}
}

func echoUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.GetUint(constants.ContextKeyUserID),
		"username": c.GetString(constants.ContextKeyUsername),
		"role":     c.GetString(constants.ContextKeyUserRole),
	})
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	current := &dto.CurrentUser{UserID: 7, Username: "steward", Role: "admin", SessionID: "s-1"}
	auth := NewAuthMiddleware(validatorFor("good", current), logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/admin/dashboard", auth.RequireAuth(), echoUser)
	engine.GET("/api/naic-lookup", auth.RequireAuth(), echoUser)

	t.Run("missing cookie redirects browser routes", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), utils.FlashCookie+"=")
	})

	t.Run("missing cookie on api route is 401", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/api/naic-lookup", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Login required")
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "forged"})
		w := serve(engine, req)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("cookie session populates context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "good"})
		w := serve(engine, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"username":"steward","role":"admin"}`, w.Body.String())
	})

	t.Run("bearer header is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/naic-lookup", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := serve(engine, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	current := &dto.CurrentUser{UserID: 3, Username: "viewer", Role: "viewer"}
	auth := NewAuthMiddleware(validatorFor("good", current), logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/", auth.OptionalAuth(), echoUser)

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"username":"","role":""}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "good"})
	w = serve(engine, req)
	assert.JSONEq(t, `{"user_id":3,"username":"viewer","role":"viewer"}`, w.Body.String())
}

func TestRequirePolicy(t *testing.T) {
	enforcer := &mockEnforcer{
		EnforceFunc: func(role, path, method string) (bool, error) {
			switch role {
			case "admin":
				return true, nil
			case "broken":
				return false, errors.New("adapter offline")
			default:
				return false, nil
			}
		},
	}
	perm := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyUserRole, role)
			}
			c.Next()
		}
	}

	tests := []struct {
		name         string
		role         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "admin allowed", role: "admin", path: "/admin/dashboard", wantStatus: http.StatusOK},
		{name: "viewer denied", role: "viewer", path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: LoginPath},
		{name: "no role denied", role: "", path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: LoginPath},
		{name: "enforcer error denied", role: "broken", path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: LoginPath},
		{name: "api denial is 403", role: "viewer", path: "/api/naic-lookup", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET(tt.path, withRole(tt.role), perm.RequirePolicy(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := serve(engine, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestCSRF(t *testing.T) {
	engine := gin.New()
	engine.Use(CSRF(config.CookieConfig{Path: "/"}, 3600))
	engine.GET("/admin/payers", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/admin/payers/single", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST(LoginPath, func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("safe request issues token cookie", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/admin/payers", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), utils.CSRFTokenCookie+"=")
	})

	formPost := func(token, field string) *http.Request {
		form := url.Values{"payer_name": {"Acme"}}
		if field != "" {
			form.Set(utils.CSRFTokenFormField, field)
		}
		req := httptest.NewRequest(http.MethodPost, "/admin/payers/single", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if token != "" {
			req.AddCookie(&http.Cookie{Name: utils.CSRFTokenCookie, Value: token})
		}
		return req
	}

	assert.Equal(t, http.StatusForbidden, serve(engine, formPost("", "")).Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, formPost("abc", "")).Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, formPost("abc", "xyz")).Code)
	assert.Equal(t, http.StatusOK, serve(engine, formPost("abc", "abc")).Code)

	headerReq := formPost("abc", "")
	headerReq.Header.Set(utils.CSRFTokenHeader, "abc")
	assert.Equal(t, http.StatusOK, serve(engine, headerReq).Code)

	login := httptest.NewRequest(http.MethodPost, LoginPath, nil)
	assert.Equal(t, http.StatusOK, serve(engine, login).Code)
}

func TestRateLimiter(t *testing.T) {
	rule := ratelimit.Rule{Limit: 1}

	run := func(limiter ratelimit.RateLimiter) int {
		engine := gin.New()
		engine.GET("/api/search", NewRateLimiter(limiter, "api", rule, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return serve(engine, httptest.NewRequest(http.MethodGet, "/api/search", nil)).Code
	}

	allowing := &mockLimiter{allowed: true}
	assert.Equal(t, http.StatusOK, run(allowing))
	require.Len(t, allowing.keys, 1)
	assert.True(t, strings.HasPrefix(allowing.keys[0], "api:"))

	assert.Equal(t, http.StatusTooManyRequests, run(&mockLimiter{allowed: false}))
	assert.Equal(t, http.StatusOK, run(&mockLimiter{err: errors.New("redis down")}))
	assert.Equal(t, http.StatusOK, run(nil))
}

func TestDisplayFlags(t *testing.T) {
	for _, showAds := range []bool{true, false} {
		engine := gin.New()
		engine.GET("/", DisplayFlags(fixedDisplay(showAds)), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"show_ads": c.GetBool(constants.ContextKeyShowAds)})
		})

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		if showAds {
			assert.JSONEq(t, `{"show_ads":true}`, w.Body.String())
		} else {
			assert.JSONEq(t, `{"show_ads":false}`, w.Body.String())
		}
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(constants.HeaderXRequestID, "trace-1")
	w = serve(engine, req)
	assert.Equal(t, "trace-1", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}
