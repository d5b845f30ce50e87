package checkout

import (
	"fmt"

	"github.com/gr-qft/teini/internal/domain"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// LineItem is the payment processor's line item shape.
type LineItem struct {
	PriceData          PriceData          `json:"price_data"`
	AdjustableQuantity AdjustableQuantity `json:"adjustable_quantity"`
	Quantity           int                `json:"quantity"`
}

// PriceData carries the unit price in currency minor units together with the
// display data shown on the hosted payment page.
type PriceData struct {
	Currency    string      `json:"currency"`
	UnitAmount  int64       `json:"unit_amount"`
	ProductData ProductData `json:"product_data"`
}

type ProductData struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type AdjustableQuantity struct {
	Enabled bool `json:"enabled"`
}

// ToLineItem maps one cart item to a payment line item. The unit amount is
// the product's own price, never a fixed constant. Images are whatever refs
// the caller resolved for the product; nil is fine.
func ToLineItem(item domain.CartItem, images []string) (LineItem, error) {
	if item.Quantity <= 0 {
		return LineItem{}, apperrors.InvalidInput(
			fmt.Sprintf("line item quantity must be positive, got %d for product %d", item.Quantity, item.Product.ID))
	}

	return LineItem{
		PriceData: PriceData{
			Currency:   item.Product.Currency,
			UnitAmount: item.Product.Price,
			ProductData: ProductData{
				Name:        item.Product.Name,
				Description: item.Product.Description,
				Images:      images,
			},
		},
		AdjustableQuantity: AdjustableQuantity{Enabled: true},
		Quantity:           item.Quantity,
	}, nil
}

// ToLineItems maps a whole cart. images is keyed by product id; products
// without an entry produce line items without display images. Any invalid
// item fails the whole mapping, leaving the cart untouched.
func ToLineItems(cart *domain.Cart, images map[int64][]string) ([]LineItem, error) {
	items := make([]LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		li, err := ToLineItem(item, images[item.Product.ID])
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, nil
}
