package catalog

import "github.com/gr-qft/teini/internal/domain"

// Window clips products to the zero-based page at index with the given size.
// Out-of-range pages come back empty rather than as an error; negative
// indexes and non-positive sizes also yield an empty window.
func Window(products []domain.Product, index, size int) []domain.Product {
	if index < 0 || size <= 0 {
		return nil
	}

	start := index * size
	if start >= len(products) {
		return nil
	}

	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// HasNext reports whether another page exists after the zero-based page at
// index, given the total number of items.
func HasNext(index, size, total int) bool {
	if size <= 0 {
		return false
	}
	return (index+1)*size < total
}

// HasPrevious reports whether a page precedes the zero-based page at index.
func HasPrevious(index int) bool {
	return index > 0
}
