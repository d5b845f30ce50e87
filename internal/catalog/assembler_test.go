package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-qft/teini/internal/domain"
	"github.com/gr-qft/teini/internal/imagestore"
	"github.com/gr-qft/teini/internal/imagestore/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func stubEncode(data []byte) (string, error) {
	return "blur:" + string(data), nil
}

func TestAssemblerPairsPathsAndPlaceholders(t *testing.T) {
	store := memory.New()
	store.Put(1, "/products/1/a.jpg", []byte("aa"))
	store.Put(1, "/products/1/b.jpg", []byte("bb"))

	a := NewAssembler(store, stubEncode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), []domain.Product{{ID: 1}})
	require.NoError(t, err)
	require.Contains(t, sets, int64(1))

	set := sets[1]
	assert.Equal(t, []string{"/products/1/a.jpg", "/products/1/b.jpg"}, set.Paths)
	assert.Equal(t, []string{"blur:aa", "blur:bb"}, set.Placeholders)
}

func TestAssemblerSkipsProductsWithoutImages(t *testing.T) {
	store := memory.New()
	store.Put(1, "/products/1/a.jpg", []byte("aa"))

	a := NewAssembler(store, stubEncode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), []domain.Product{{ID: 1}, {ID: 2}})
	require.NoError(t, err)

	assert.Contains(t, sets, int64(1))
	assert.NotContains(t, sets, int64(2))
}

func TestAssemblerDropsImageOnPlaceholderFailure(t *testing.T) {
	store := memory.New()
	store.Put(7, "/products/7/bad.jpg", []byte("bad"))
	store.Put(7, "/products/7/good.jpg", []byte("good"))

	encode := func(data []byte) (string, error) {
		if string(data) == "bad" {
			return "", errors.New("undecodable")
		}
		return stubEncode(data)
	}

	a := NewAssembler(store, encode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), []domain.Product{{ID: 7}})
	require.NoError(t, err)
	require.Contains(t, sets, int64(7))

	set := sets[7]
	assert.Equal(t, []string{"/products/7/good.jpg"}, set.Paths)
	assert.Equal(t, []string{"blur:good"}, set.Placeholders)
	assert.Equal(t, len(set.Paths), len(set.Placeholders))
}

func TestAssemblerOmitsProductWhenEveryImageFails(t *testing.T) {
	store := memory.New()
	store.Put(3, "/products/3/a.jpg", []byte("x"))

	encode := func([]byte) (string, error) {
		return "", errors.New("undecodable")
	}

	a := NewAssembler(store, encode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), []domain.Product{{ID: 3}})
	require.NoError(t, err)
	assert.NotContains(t, sets, int64(3))
}

type canceledStore struct{}

func (canceledStore) List(ctx context.Context, productID int64) ([]string, error) {
	return []string{"/products/1/a.jpg"}, nil
}

func (canceledStore) Read(ctx context.Context, ref string) ([]byte, error) {
	return nil, context.Canceled
}

var _ imagestore.Store = canceledStore{}

func TestAssemblerFailsWholeCallOnCancellation(t *testing.T) {
	a := NewAssembler(canceledStore{}, stubEncode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), []domain.Product{{ID: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sets)
}

func TestAssemblerEmptyProductList(t *testing.T) {
	a := NewAssembler(memory.New(), stubEncode, discardLogger(), 0)

	sets, err := a.Assemble(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, sets)
}
