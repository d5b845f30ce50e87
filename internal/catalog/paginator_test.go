package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gr-qft/teini/internal/domain"
)

func makeProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{ID: int64(i + 1)}
	}
	return products
}

func TestWindow(t *testing.T) {
	products := makeProducts(5)

	tests := []struct {
		name    string
		index   int
		size    int
		wantIDs []int64
	}{
		{name: "first page full", index: 0, size: 3, wantIDs: []int64{1, 2, 3}},
		{name: "last page partial", index: 1, size: 3, wantIDs: []int64{4, 5}},
		{name: "beyond the end", index: 2, size: 3, wantIDs: nil},
		{name: "negative index", index: -1, size: 3, wantIDs: nil},
		{name: "zero size", index: 0, size: 0, wantIDs: nil},
		{name: "size covers everything", index: 0, size: 10, wantIDs: []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(products, tt.index, tt.size)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestHasNext(t *testing.T) {
	tests := []struct {
		name  string
		index int
		size  int
		total int
		want  bool
	}{
		{name: "seven items page zero", index: 0, size: 3, total: 7, want: true},
		{name: "seven items page one", index: 1, size: 3, total: 7, want: true},
		{name: "seven items page two", index: 2, size: 3, total: 7, want: false},
		{name: "exact multiple last page", index: 1, size: 3, total: 6, want: false},
		{name: "empty catalog", index: 0, size: 3, total: 0, want: false},
		{name: "zero size", index: 0, size: 0, total: 7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasNext(tt.index, tt.size, tt.total))
		})
	}
}

func TestHasPrevious(t *testing.T) {
	assert.False(t, HasPrevious(0))
	assert.True(t, HasPrevious(1))
	assert.True(t, HasPrevious(5))
}
