package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	// 10 items, 3 per page -> 4 pages
	tests := []struct {
		name       string
		raw        string
		wantNumber int
		wantOffset int
	}{
		{"first page", "1", 1, 0},
		{"middle page", "2", 2, 3},
		{"last page", "4", 4, 9},
		{"non-numeric falls back to first", "abc", 1, 0},
		{"empty falls back to first", "", 1, 0},
		{"zero falls back to first", "0", 1, 0},
		{"negative falls back to first", "-2", 1, 0},
		{"beyond last falls back to last", "9999", 4, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(10, 3, tt.raw)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantOffset, page.Offset)
			assert.Equal(t, 4, page.NumPages)
		})
	}
}

func TestPaginateEmptyListing(t *testing.T) {
	page := Paginate(0, 3, "5")
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestPageNavigation(t *testing.T) {
	page := Paginate(10, 3, "2")
	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.Prev())
	assert.Equal(t, 3, page.Next())
}
