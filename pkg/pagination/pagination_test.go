package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "missing", raw: "", want: 1},
		{name: "garbage", raw: "abc", want: 1},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-3", want: 1},
		{name: "valid", raw: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.raw))
		})
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	p := New(10)

	tests := []struct {
		name       string
		total      int64
		page       int
		wantOffset int
		wantMeta   Metadata
	}{
		{
			name:       "first of three",
			total:      25,
			page:       1,
			wantOffset: 0,
			wantMeta:   Metadata{Page: 1, TotalPages: 3, Total: 25, HasNext: true},
		},
		{
			name:       "middle page",
			total:      25,
			page:       2,
			wantOffset: 10,
			wantMeta:   Metadata{Page: 2, TotalPages: 3, Total: 25, HasNext: true, HasPrevious: true},
		},
		{
			name:       "beyond the end clamps to last",
			total:      25,
			page:       99,
			wantOffset: 20,
			wantMeta:   Metadata{Page: 3, TotalPages: 3, Total: 25, HasPrevious: true},
		},
		{
			name:       "below the start clamps to first",
			total:      25,
			page:       -1,
			wantOffset: 0,
			wantMeta:   Metadata{Page: 1, TotalPages: 3, Total: 25, HasNext: true},
		},
		{
			name:       "empty collection is one empty page",
			total:      0,
			page:       1,
			wantOffset: 0,
			wantMeta:   Metadata{Page: 1, TotalPages: 1, Total: 0},
		},
		{
			name:       "exact multiple",
			total:      20,
			page:       2,
			wantOffset: 10,
			wantMeta:   Metadata{Page: 2, TotalPages: 2, Total: 20, HasPrevious: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, meta := p.Window(tt.total, tt.page)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantMeta, meta)
		})
	}
}

func TestNewDefaultsPageSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultPageSize, New(0).PageSize)
	assert.Equal(t, DefaultPageSize, New(-5).PageSize)
	assert.Equal(t, 25, New(25).PageSize)
}
