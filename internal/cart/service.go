package cart

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gr-qft/teini/internal/domain"
	"github.com/gr-qft/teini/internal/repository"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// Service owns cart session state. Product data is looked up at add time so
// a cart item always carries the catalog's current shape of the product.
type Service struct {
	store  *Store
	repo   repository.ProductRepository
	logger *slog.Logger
}

func NewService(store *Store, repo repository.ProductRepository, logger *slog.Logger) *Service {
	return &Service{store: store, repo: repo, logger: logger}
}

// Get returns the session's cart, which is empty for unknown sessions.
func (s *Service) Get(_ context.Context, sessionID string) *domain.Cart {
	return s.store.Get(sessionID)
}

// AddItem adds quantity units of a product to the session's cart, merging
// with an existing line for the same product. Products that are hidden or
// sold out cannot be added.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must be positive, got %d", quantity))
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	switch product.Availability {
	case domain.AvailabilityNotVisible:
		return nil, apperrors.NotFound("product", strconv.FormatInt(productID, 10))
	case domain.AvailabilitySoldOut:
		return nil, apperrors.InvalidInput(fmt.Sprintf("product %d is sold out", productID))
	}

	cart, err := s.store.Update(sessionID, func(c *domain.Cart) error {
		if i := c.FindItemIndex(productID); i >= 0 {
			c.Items[i].Quantity += quantity
			return nil
		}
		c.Items = append(c.Items, domain.CartItem{Product: *product, Quantity: quantity})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item added",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("cart_size", cart.ItemCount()),
	)
	return cart, nil
}

// UpdateItem sets the quantity of an existing cart line. Quantity zero
// removes the line.
func (s *Service) UpdateItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not be negative, got %d", quantity))
	}

	cart, err := s.store.Update(sessionID, func(c *domain.Cart) error {
		i := c.FindItemIndex(productID)
		if i < 0 {
			return apperrors.NotFound("cart item", strconv.FormatInt(productID, 10))
		}
		if quantity == 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
		c.Items[i].Quantity = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item updated",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)
	return cart, nil
}

// RemoveItem drops a product's line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	cart, err := s.store.Update(sessionID, func(c *domain.Cart) error {
		i := c.FindItemIndex(productID)
		if i < 0 {
			return apperrors.NotFound("cart item", strconv.FormatInt(productID, 10))
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item removed", slog.Int64("product_id", productID))
	return cart, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) {
	s.store.Delete(sessionID)
	s.logger.InfoContext(ctx, "cart cleared")
}

// ClearItems removes the given quantities from the session's cart. A line
// whose quantity drops to zero is removed; anything added to the cart after
// the snapshot was taken survives.
func (s *Service) ClearItems(ctx context.Context, sessionID string, items []domain.CartItem) {
	_, _ = s.store.Update(sessionID, func(c *domain.Cart) error {
		for _, item := range items {
			i := c.FindItemIndex(item.Product.ID)
			if i < 0 {
				continue
			}
			if c.Items[i].Quantity <= item.Quantity {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity -= item.Quantity
			}
		}
		return nil
	})
	s.logger.InfoContext(ctx, "cart items cleared", slog.Int("lines", len(items)))
}
