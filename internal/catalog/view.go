package catalog

import (
	"time"

	"github.com/gr-qft/teini/internal/domain"
)

// ProductView is the wire representation of a product. Timestamps are
// normalized to RFC 3339 so the payload round-trips byte-for-byte through
// any cache layer.
type ProductView struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        int64         `json:"price"`
	Currency     string        `json:"currency"`
	Availability string        `json:"availability"`
	Brand        *domain.Brand `json:"brand,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// NewProductView converts a domain product to its wire form.
func NewProductView(p domain.Product) ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		Availability: string(p.Availability),
		Brand:        p.Brand,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ImageEntry pairs a product with its resolved image set. Products that
// resolved no images have no entry at all, so clients can distinguish
// "no images" from "empty list".
type ImageEntry struct {
	ProductID int64           `json:"product_id"`
	Images    domain.ImageSet `json:"images"`
}

// PageView is one assembled catalog page as served to clients.
type PageView struct {
	Products    []ProductView `json:"products"`
	Images      []ImageEntry  `json:"images"`
	TotalCount  int           `json:"total_count"`
	Page        int           `json:"page"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// buildPageView composes the wire page from an already-windowed product
// slice and its image sets. The slice is clipped to size as a final guard so
// a page can never exceed its nominal size.
func buildPageView(products []domain.Product, sets map[int64]domain.ImageSet, index, size, total int) *PageView {
	window := Window(products, 0, size)

	view := &PageView{
		Products:    make([]ProductView, 0, len(window)),
		Images:      make([]ImageEntry, 0, len(window)),
		TotalCount:  total,
		Page:        index,
		HasNext:     HasNext(index, size, total),
		HasPrevious: HasPrevious(index),
	}

	for _, p := range window {
		view.Products = append(view.Products, NewProductView(p))
		if set, ok := sets[p.ID]; ok {
			view.Images = append(view.Images, ImageEntry{ProductID: p.ID, Images: set})
		}
	}

	return view
}
