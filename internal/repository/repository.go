package repository

import (
	"context"

	"github.com/gr-qft/teini/internal/domain"
)

// ProductRepository is the data-store collaborator of the catalog pipeline.
type ProductRepository interface {
	// ListVisible returns visible products (availability != notVisible) in
	// stable id order, windowed by offset and limit. A limit <= 0 means no
	// limit.
	ListVisible(ctx context.Context, offset, limit int) ([]domain.Product, error)

	// CountVisible returns the number of visible products. The paginator
	// relies on this rather than re-counting a partial list.
	CountVisible(ctx context.Context) (int, error)

	// GetByID retrieves one product regardless of availability.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}
