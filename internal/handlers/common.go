package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Pagination describes the collection window returned by list endpoints.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int64 `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
}

// PaginatedResponse is the envelope for paginated API responses.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// GetPaginationParams extracts and clamps pagination parameters from Gin context.
// Valores inválidos são corrigidos silenciosamente, nunca rejeitados.
func GetPaginationParams(c *gin.Context) (page int, perPage int) {
	pageQuery := c.DefaultQuery("page", strconv.Itoa(DefaultPage))
	perPageQuery := c.DefaultQuery("per_page", strconv.Itoa(DefaultPageSize))

	page, err := strconv.Atoi(pageQuery)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPage, err = strconv.Atoi(perPageQuery)
	if err != nil || perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	return page, perPage
}

// TotalPages computes ceil(totalCount / perPage).
func TotalPages(totalCount int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	return (totalCount + int64(perPage) - 1) / int64(perPage)
}

// PaginateScope returns a GORM scope function to apply pagination.
func PaginateScope(page, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * perPage
		return db.Offset(offset).Limit(perPage)
	}
}
