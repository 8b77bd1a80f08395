package dto

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (Page-1)*PageSize inside int.
	MaxPage = math.MaxInt / MaxPageSize
)

// PriceQuery carries per-request pricing options.
type PriceQuery struct {
	// At overrides the reference date offers are evaluated against.
	At *time.Time
}

type ItemFilters struct {
	PriceQuery
	CategoryID string
	Page       int
	PageSize   int
}

// Normalize clamps paging to sane bounds.
func (f *ItemFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

func (f *ItemFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}
