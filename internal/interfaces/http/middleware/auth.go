package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/user/dto"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const (
	LoginPath        = "/admin/login"
	msgLoginRequired = "Login required"
)

type sessionValidator interface {
	Execute(ctx context.Context, token string) (*dto.CurrentUser, error)
}

type AuthMiddleware struct {
	validateSession sessionValidator
	logger          logger.Interface
}

func NewAuthMiddleware(validateSession sessionValidator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		validateSession: validateSession,
		logger:          logger,
	}
}

// RequireAuth resolves the session cookie (or a Bearer header) to the signed-in
// admin. Browser routes are redirected to the login screen, API routes get 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			m.deny(c)
			return
		}

		current, err := m.validateSession.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Warnw("session rejected", "error", err, "path", c.Request.URL.Path)
			m.deny(c)
			return
		}

		setCurrentUser(c, current)
		c.Next()
	}
}

// OptionalAuth populates the user keys when a valid session exists and never blocks.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerOrCookie(c); token != "" {
			if current, err := m.validateSession.Execute(c.Request.Context(), token); err == nil {
				setCurrentUser(c, current)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) deny(c *gin.Context) {
	if IsAPIRequest(c) {
		utils.ErrorResponse(c, http.StatusUnauthorized, msgLoginRequired)
		c.Abort()
		return
	}
	utils.RedirectWithFlash(c, LoginPath, utils.FlashWarning, msgLoginRequired)
	c.Abort()
}

func setCurrentUser(c *gin.Context, current *dto.CurrentUser) {
	c.Set(constants.ContextKeyUserID, current.UserID)
	c.Set(constants.ContextKeyUsername, current.Username)
	c.Set(constants.ContextKeyUserRole, current.Role)
	c.Set(constants.ContextKeySessionID, current.SessionID)
}

func bearerOrCookie(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.SessionTokenCookie); token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// IsAPIRequest reports whether the request targets a JSON endpoint.
func IsAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
