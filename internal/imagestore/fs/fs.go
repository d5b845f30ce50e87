// Package fs stores product images on the local filesystem under
// root/<productID>/, the layout used by the storefront's public asset
// directory.
package fs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gr-qft/teini/internal/imagestore"
)

// Store implements imagestore.Store over a directory tree. Image references
// are URL-style paths ("/products/<id>/<file>") so they can be served as-is;
// baseURL is the public prefix ("/products").
type Store struct {
	root    string
	baseURL string
}

// New creates a filesystem image store rooted at root.
func New(root, baseURL string) *Store {
	return &Store{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// List returns the image references for a product in directory order.
// os.ReadDir sorts entries by name, which keeps the order stable across
// calls for an unchanged directory.
func (s *Store) List(_ context.Context, productID int64) ([]string, error) {
	dir := filepath.Join(s.root, strconv.FormatInt(productID, 10))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, imagestore.ErrNotFound
		}
		return nil, fmt.Errorf("list images for product %d: %w", productID, err)
	}

	var refs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		refs = append(refs, path.Join(s.baseURL, strconv.FormatInt(productID, 10), entry.Name()))
	}

	if len(refs) == 0 {
		return nil, imagestore.ErrNotFound
	}

	return refs, nil
}

// Read loads the bytes behind an image reference returned by List.
func (s *Store) Read(_ context.Context, ref string) ([]byte, error) {
	rel := strings.TrimPrefix(ref, s.baseURL+"/")
	if rel == ref || strings.Contains(rel, "..") {
		return nil, fmt.Errorf("invalid image reference %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", ref, err)
	}
	return data, nil
}
