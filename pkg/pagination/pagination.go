// Package pagination slices listing results into fixed-size, 1-based
// pages. Out-of-range page numbers clamp to the nearest valid page and
// never error, matching the behavior template layers expect from a
// paginator.
package pagination

import "strconv"

const DefaultPageSize = 10

type Metadata struct {
	Page        int   `json:"page"`
	TotalPages  int   `json:"total_pages"`
	Total       int64 `json:"total"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type Page[T any] struct {
	Items []T `json:"items"`
	Metadata
}

// ParsePage turns a raw "page" query value into a 1-based page number.
// Missing, malformed and non-positive values all degrade to page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

type Pager struct {
	PageSize int
}

func New(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{PageSize: size}
}

// Window clamps page into the valid range for total items and returns
// the offset of the requested slice together with page metadata. An
// empty collection yields a single empty page.
func (p Pager) Window(total int64, page int) (int, Metadata) {
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	meta := Metadata{
		Page:        page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	return (page - 1) * p.PageSize, meta
}
