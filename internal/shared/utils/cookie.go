package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/config"
)

const (
	SessionTokenCookie = "ccv_session"
	CSRFTokenCookie    = "csrf_token"
	CSRFTokenHeader    = "X-CSRF-Token"
	CSRFTokenFormField = "csrf_token"
	csrfTokenBytes     = 32
)

// SetSessionCookie stores the signed admin session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		SessionTokenCookie,
		token,
		maxAge,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		SessionTokenCookie,
		"",
		-1,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie returns the named cookie value, or "" when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}

// SetCSRFCookie issues a fresh double-submit token. The cookie is readable by
// scripts; forms echo it back in the csrf_token field.
func SetCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig, maxAge int) string {
	token := generateCSRFToken()
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		CSRFTokenCookie,
		token,
		maxAge,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		false,
	)
	return token
}

func ClearCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		CSRFTokenCookie,
		"",
		-1,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		false,
	)
}

func generateCSRFToken() string {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic("csrf: failed to generate random token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func cookiePath(cookieConfig config.CookieConfig) string {
	if cookieConfig.Path == "" {
		return "/"
	}
	return cookieConfig.Path
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
