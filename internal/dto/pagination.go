package dto

import (
	"math"
	"strconv"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPage keeps Offset within 32 bits at any limit.
	MaxPage = math.MaxInt32 / MaxPageLimit
)

// PageRequest is a 1-indexed page request.
type PageRequest struct {
	Page  int
	Limit int
}

func NewPageRequest(page, limit int) PageRequest {
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// ParsePageRequest reads raw query values; garbage falls back to defaults.
func ParsePageRequest(pageStr, limitStr string) PageRequest {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)
	return NewPageRequest(page, limit)
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(p PageRequest, total int64) Pagination {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPage[T any](items []T, p PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPagination(p, total)}
}
