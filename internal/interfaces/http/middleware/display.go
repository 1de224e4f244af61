package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
)

// DisplayFlags exposes the persisted presentation flags to every page handler.
func DisplayFlags(provider setting.DisplayProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyShowAds, provider.ShowAds(c.Request.Context()))
		c.Next()
	}
}
