package domain

import "time"

// Product availability states. Only products whose availability is not
// AvailabilityNotVisible ever enter the catalog pipeline.
const (
	AvailabilityVisible    = "visible"
	AvailabilityNotVisible = "notVisible"
	AvailabilitySoldOut    = "soldOut"
)

// Product represents a product in the catalog.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	Availability string    `json:"availability"`
	BrandID      *int64    `json:"brand_id,omitempty"`
	Brand        *Brand    `json:"brand,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Brand is referenced, never owned, by Product.
type Brand struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
}

// ImageSet is the ordered image paths of one product paired index-for-index
// with their blur placeholder encodings.
type ImageSet struct {
	Paths        []string `json:"paths"`
	Placeholders []string `json:"blurDataURLs"`
}

// Len returns the number of images in the set.
func (s ImageSet) Len() int {
	return len(s.Paths)
}
