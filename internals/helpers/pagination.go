package helper

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 200
)

type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePageParams reads ?page and ?pageSize with clamped bounds.
func ParsePageParams(c *fiber.Ctx) PageParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageParams{Page: page, PageSize: pageSize}
}

// PageMeta is the envelope metadata on paginated lists.
type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
}

func NewPageMeta(p PageParams, total int64) PageMeta {
	return PageMeta{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(p.PageSize))),
	}
}
