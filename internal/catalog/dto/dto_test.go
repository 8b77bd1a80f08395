package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemFilters_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           ItemFilters
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", in: ItemFilters{}, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "negative", in: ItemFilters{Page: -3, PageSize: -1}, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "page size capped", in: ItemFilters{Page: 2, PageSize: 1000}, wantPage: 2, wantPageSize: MaxPageSize},
		{name: "page capped", in: ItemFilters{Page: math.MaxInt, PageSize: 20}, wantPage: MaxPage, wantPageSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in
			f.Normalize()

			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantPageSize, f.PageSize)
			assert.GreaterOrEqual(t, f.Offset(), 0)
		})
	}
}

func TestItemFilters_OffsetAtLimits(t *testing.T) {
	f := ItemFilters{Page: math.MaxInt, PageSize: MaxPageSize}
	f.Normalize()

	assert.Equal(t, (MaxPage-1)*MaxPageSize, f.Offset())
	assert.Greater(t, f.Offset(), 0)
}
