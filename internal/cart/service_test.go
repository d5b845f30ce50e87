package cart

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-qft/teini/internal/domain"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

type stubProductRepo struct {
	products map[int64]domain.Product
}

func (r *stubProductRepo) ListVisible(context.Context, int, int) ([]domain.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) CountVisible(context.Context) (int, error) {
	return len(r.products), nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	return &p, nil
}

func newTestService() *Service {
	repo := &stubProductRepo{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Mug", Price: 1200, Currency: "EUR", Availability: domain.AvailabilityVisible},
		2: {ID: 2, Name: "Shirt", Price: 2500, Currency: "EUR", Availability: domain.AvailabilityVisible},
		3: {ID: 3, Name: "Hidden", Price: 900, Currency: "EUR", Availability: domain.AvailabilityNotVisible},
		4: {ID: 4, Name: "Gone", Price: 900, Currency: "EUR", Availability: domain.AvailabilitySoldOut},
	}}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewService(NewStore(), repo, logger)
}

func TestCartLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	const session = "sess-1"

	assert.True(t, svc.Get(ctx, session).IsEmpty())

	cart, err := svc.AddItem(ctx, session, 1, 2)
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
	assert.Equal(t, 2, cart.ItemCount())

	cart, err = svc.AddItem(ctx, session, 1, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart, err = svc.AddItem(ctx, session, 2, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(1200*3+2500), cart.TotalAmount())

	cart, err = svc.RemoveItem(ctx, session, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = svc.RemoveItem(ctx, session, 2)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	assert.True(t, svc.Get(ctx, session).IsEmpty())
}

func TestCartClear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", 1, 1)
	require.NoError(t, err)

	svc.Clear(ctx, "sess-1")
	assert.True(t, svc.Get(ctx, "sess-1").IsEmpty())
}

func TestCartUpdateItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", 1, 1)
	require.NoError(t, err)

	cart, err := svc.UpdateItem(ctx, "sess-1", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart, err = svc.UpdateItem(ctx, "sess-1", 1, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = svc.UpdateItem(ctx, "sess-1", 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRejectsInvalidAdds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.AddItem(ctx, "sess-1", 1, -2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.AddItem(ctx, "sess-1", 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.AddItem(ctx, "sess-1", 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.AddItem(ctx, "sess-1", 4, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	assert.True(t, svc.Get(ctx, "sess-1").IsEmpty())
}

func TestClearItemsRemovesOnlySnapshotQuantities(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	const session = "sess-1"

	_, err := svc.AddItem(ctx, session, 1, 2)
	require.NoError(t, err)
	snapshot := svc.Get(ctx, session)

	// Mutations after the snapshot must survive clearing it.
	_, err = svc.AddItem(ctx, session, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session, 2, 4)
	require.NoError(t, err)

	svc.ClearItems(ctx, session, snapshot.Items)

	cart := svc.Get(ctx, session)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(1), cart.Items[0].Product.ID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(2), cart.Items[1].Product.ID)
	assert.Equal(t, 4, cart.Items[1].Quantity)
}

func TestClearItemsEmptiesUnchangedCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", 1, 2)
	require.NoError(t, err)
	snapshot := svc.Get(ctx, "sess-1")

	svc.ClearItems(ctx, "sess-1", snapshot.Items)
	assert.True(t, svc.Get(ctx, "sess-1").IsEmpty())
}

func TestCartSessionsAreIsolated(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-a", 1, 1)
	require.NoError(t, err)

	assert.True(t, svc.Get(ctx, "sess-b").IsEmpty())
	assert.False(t, svc.Get(ctx, "sess-a").IsEmpty())
}

func TestCartConcurrentMutations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	const session = "sess-1"
	const workers = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, session, 1, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart := svc.Get(ctx, session)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, workers, cart.Items[0].Quantity)
}

func TestCartSnapshotIsDetached(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "sess-1", 1, 1)
	require.NoError(t, err)

	cart.Items[0].Quantity = 99

	assert.Equal(t, 1, svc.Get(ctx, "sess-1").Items[0].Quantity)
}
