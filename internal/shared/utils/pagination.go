package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// ParsePagination reads ?page= from the query string. Listings always page by
// the fixed page size; missing or malformed values fall back to page 1.
func ParsePagination(c *gin.Context) query.PageFilter {
	return query.PageFilter{
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: constants.DefaultPageSize,
	}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
