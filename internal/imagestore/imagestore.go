package imagestore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product has no image directory. Callers
// treat it as "no images", never as a pipeline failure.
var ErrNotFound = errors.New("imagestore: no images for product")

// Store is the image-store collaborator of the catalog pipeline.
type Store interface {
	// List returns the reference paths of the images stored for a product,
	// in the store's listing order. The order must be deterministic for a
	// given store state. Returns ErrNotFound when the product has no
	// directory at all.
	List(ctx context.Context, productID int64) ([]string, error)

	// Read returns the raw bytes of one image reference previously returned
	// by List.
	Read(ctx context.Context, ref string) ([]byte, error)
}
