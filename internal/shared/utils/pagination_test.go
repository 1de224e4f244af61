package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantPage int
	}{
		{name: "default", rawQuery: "", wantPage: 1},
		{name: "explicit page", rawQuery: "page=3", wantPage: 3},
		{name: "zero falls back", rawQuery: "page=0", wantPage: 1},
		{name: "negative falls back", rawQuery: "page=-4", wantPage: 1},
		{name: "garbage falls back", rawQuery: "page=abc", wantPage: 1},
		{name: "page size is fixed", rawQuery: "page=2&page_size=500", wantPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/directory?"+tt.rawQuery, nil)

			p := ParsePagination(c)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, 50, p.PageSize)
		})
	}
}

func TestParsePagination_HugePageStaysPastTheEnd(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/directory?page=200000000000000000", nil)

	p := ParsePagination(c)
	assert.Equal(t, 200000000000000000, p.CurrentPage())
	assert.Equal(t, query.MaxOffset, p.Offset())
}
