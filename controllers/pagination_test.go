package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&limit=20", 3, 20, 40},
		{"zero page", "page=0", 1, 10, 0},
		{"negative page", "page=-2", 1, 10, 0},
		{"zero limit falls back", "limit=0", 1, 10, 0},
		{"limit capped", "limit=500", 1, 100, 0},
		{"non-numeric", "page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit, offset := getPaginationParams(paginationContext(tc.query), 10)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestPaginationMeta(t *testing.T) {
	meta := paginationMeta(2, 10, 45)
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 10, meta["limit"])
	assert.Equal(t, 45, meta["total_items"])
	assert.Equal(t, 5, meta["total_pages"])

	empty := paginationMeta(1, 10, 0)
	assert.Equal(t, 0, empty["total_pages"])
}
