package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationParamsFor(t *testing.T, rawQuery string) (int, int) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	assert.NoError(t, err)
	c.Request = req
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"Defaults", "", 1, 10},
		{"Explicit values", "page=3&per_page=25", 3, 25},
		{"PerPage above max clamped to 50", "per_page=1000", 1, 50},
		{"PerPage zero clamped to default", "per_page=0", 1, 10},
		{"PerPage negative clamped to default", "per_page=-5", 1, 10},
		{"Page zero clamped to 1", "page=0", 1, 10},
		{"Page negative clamped to 1", "page=-2", 1, 10},
		{"Non-numeric values fall back", "page=abc&per_page=xyz", 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage := paginationParamsFor(t, tc.query)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPerPage, perPage)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalCount int64
		perPage    int
		want       int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{49, 10, 5},
		{50, 10, 5},
		{51, 10, 6},
		{10, 50, 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TotalPages(tc.totalCount, tc.perPage),
			"totalCount=%d perPage=%d", tc.totalCount, tc.perPage)
	}
}
