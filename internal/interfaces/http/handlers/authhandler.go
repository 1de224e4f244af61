package handlers

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/user/dto"
	"github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/shared/config"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const (
	pathLogin     = "/admin/login"
	pathDashboard = "/admin/dashboard"
)

type AuthHandler struct {
	loginUseCase  loginUseCase
	logoutUseCase logoutUseCase
	cookieConfig  config.CookieConfig
	logger        logger.Interface
	now           func() time.Time
}

func NewAuthHandler(
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		logoutUseCase: logoutUC,
		cookieConfig:  cookieConfig,
		logger:        logger,
		now:           time.Now,
	}
}

// LoginPage handles GET /admin/login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	utils.RenderPage(c, gin.H{
		"csrf_field": utils.CSRFTokenFormField,
	})
}

// Login handles POST /admin/login with the username/password form.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RedirectWithFlash(c, pathLogin, utils.FlashWarning, "Username and password are required.")
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "username", req.Username)
		utils.RedirectWithError(c, pathLogin, err)
		return
	}

	maxAge := int(math.Ceil(result.ExpiresAt.Sub(h.now()).Seconds()))
	if maxAge <= 0 {
		maxAge = 1
	}
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)
	utils.SetCSRFCookie(c, h.cookieConfig, maxAge)

	utils.RedirectWithFlash(c, pathDashboard, utils.FlashSuccess, "Logged in successfully.")
}

// Logout handles GET /admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)
	if err := h.logoutUseCase.Execute(c.Request.Context(), sessionID); err != nil {
		h.logger.Warnw("failed to end session", "error", err, "session_id", sessionID)
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.ClearCSRFCookie(c, h.cookieConfig)

	utils.RedirectWithFlash(c, pathLogin, utils.FlashInfo, "You have been logged out.")
}
