package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const msgAdminRequired = "Access denied. Admin privileges required."

type policyEnforcer interface {
	Enforce(role, path, method string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer policyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer policyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePolicy checks the signed-in role against the stored casbin policies
// for the request path and method. It must run after RequireAuth.
func (m *PermissionMiddleware) RequirePolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			m.deny(c)
			return
		}

		allowed, err := m.enforcer.Enforce(role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "path", c.Request.URL.Path)
			m.deny(c)
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"role", role,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			m.deny(c)
			return
		}

		c.Next()
	}
}

func (m *PermissionMiddleware) deny(c *gin.Context) {
	if IsAPIRequest(c) {
		utils.ErrorResponse(c, http.StatusForbidden, msgAdminRequired)
		c.Abort()
		return
	}
	utils.RedirectWithFlash(c, LoginPath, utils.FlashDanger, msgAdminRequired)
	c.Abort()
}
