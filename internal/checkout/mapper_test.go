package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr-qft/teini/internal/domain"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

func testProduct() domain.Product {
	return domain.Product{
		ID:           42,
		Name:         "Enamel Mug",
		Description:  "A mug.",
		Price:        1450,
		Currency:     "EUR",
		Availability: domain.AvailabilityVisible,
	}
}

func TestToLineItemCopiesProductData(t *testing.T) {
	item := domain.CartItem{Product: testProduct(), Quantity: 3}
	images := []string{"/products/42/front.jpg", "/products/42/back.jpg"}

	li, err := ToLineItem(item, images)
	require.NoError(t, err)

	assert.Equal(t, "EUR", li.PriceData.Currency)
	assert.Equal(t, int64(1450), li.PriceData.UnitAmount)
	assert.Equal(t, "Enamel Mug", li.PriceData.ProductData.Name)
	assert.Equal(t, "A mug.", li.PriceData.ProductData.Description)
	assert.Equal(t, images, li.PriceData.ProductData.Images)
	assert.Equal(t, 3, li.Quantity)
	assert.True(t, li.AdjustableQuantity.Enabled)
}

func TestToLineItemUsesProductPrice(t *testing.T) {
	p := testProduct()
	p.Price = 25900

	li, err := ToLineItem(domain.CartItem{Product: p, Quantity: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(25900), li.PriceData.UnitAmount)
}

func TestToLineItemRejectsNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		_, err := ToLineItem(domain.CartItem{Product: testProduct(), Quantity: quantity}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}
}

func TestToLineItemsFailsOnFirstInvalidItem(t *testing.T) {
	c := &domain.Cart{
		SessionID: "sess-1",
		Items: []domain.CartItem{
			{Product: testProduct(), Quantity: 1},
			{Product: testProduct(), Quantity: 0},
		},
	}

	_, err := ToLineItems(c, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestToLineItemsWithoutImages(t *testing.T) {
	c := &domain.Cart{
		SessionID: "sess-1",
		Items:     []domain.CartItem{{Product: testProduct(), Quantity: 2}},
	}

	items, err := ToLineItems(c, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].PriceData.ProductData.Images)
}
