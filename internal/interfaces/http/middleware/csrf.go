package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/config"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

// csrfExemptPaths have no session cookie to protect yet.
var csrfExemptPaths = map[string]struct{}{
	LoginPath: {},
}

// CSRF implements the double submit cookie pattern for the admin forms. Safe
// requests get a token cookie when they lack one; mutating requests must echo
// it in the X-CSRF-Token header or the csrf_token form field.
func CSRF(cookieConfig config.CookieConfig, maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken := utils.GetTokenFromCookie(c, utils.CSRFTokenCookie)

		if isSafeMethod(c.Request.Method) {
			if cookieToken == "" {
				utils.SetCSRFCookie(c, cookieConfig, maxAge)
			}
			c.Next()
			return
		}

		if _, ok := csrfExemptPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		if cookieToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token")
			c.Abort()
			return
		}

		submitted := c.GetHeader(utils.CSRFTokenHeader)
		if submitted == "" {
			submitted = c.PostForm(utils.CSRFTokenFormField)
		}
		if submitted == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token header")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) != 1 {
			utils.ErrorResponse(c, http.StatusForbidden, "invalid CSRF token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
