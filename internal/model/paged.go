package model

import "math"

// PagedResult is one page of an ordered result set plus the total count of
// the same predicate without paging applied.
type PagedResult[T any] struct {
	Items      []T `json:"items" msgpack:"items"`
	TotalItems int `json:"total_items" msgpack:"total_items"`
	Page       int `json:"page" msgpack:"page"`
	Size       int `json:"size" msgpack:"size"`
}

// NewPagedResult builds a page, never leaving Items nil.
func NewPagedResult[T any](items []T, total, page, size int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{Items: items, TotalItems: total, Page: page, Size: size}
}

// IsEmpty reports whether the page holds no items.
func (p PagedResult[T]) IsEmpty() bool { return len(p.Items) == 0 }

// TotalPages is ceil(TotalItems / Size). It is meant for presentation only.
func (p PagedResult[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}

// Offset returns the number of rows skipped before the given 1-based page.
// It saturates at math.MaxInt instead of wrapping.
func Offset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}
