package checkout

import (
	"context"
	"log/slog"

	"github.com/gr-qft/teini/internal/cart"
	"github.com/gr-qft/teini/internal/event"
	"github.com/gr-qft/teini/internal/imagestore"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// Service turns a session's cart into a checkout session with the payment
// processor. Image refs are resolved best-effort for the payment page; a
// product without images just checks out without them.
type Service struct {
	carts      *cart.Service
	payment    PaymentClient
	images     imagestore.Store
	events     *event.Publisher
	successURL string
	cancelURL  string
	logger     *slog.Logger
}

func NewService(carts *cart.Service, payment PaymentClient, images imagestore.Store, events *event.Publisher, successURL, cancelURL string, logger *slog.Logger) *Service {
	return &Service{
		carts:      carts,
		payment:    payment,
		images:     images,
		events:     events,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// Checkout opens a payment session for the cart and clears the cart once the
// processor has accepted it.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*Session, error) {
	c := s.carts.Get(ctx, sessionID)
	if c.IsEmpty() {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	images := make(map[int64][]string, len(c.Items))
	for _, item := range c.Items {
		refs, err := s.images.List(ctx, item.Product.ID)
		if err != nil {
			continue
		}
		images[item.Product.ID] = refs
	}

	lineItems, err := ToLineItems(c, images)
	if err != nil {
		return nil, err
	}

	session, err := s.payment.CreateSession(ctx, SessionRequest{
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		LineItems:  lineItems,
		Metadata:   map[string]string{"cart_session_id": sessionID},
	})
	if err != nil {
		return nil, err
	}

	currency := ""
	if len(c.Items) > 0 {
		currency = c.Items[0].Product.Currency
	}
	s.events.CheckoutSessionCreated(ctx, event.CheckoutSessionCreated{
		CartSessionID:     sessionID,
		CheckoutSessionID: session.ID,
		ItemCount:         c.ItemCount(),
		TotalAmount:       c.TotalAmount(),
		Currency:          currency,
	})

	// Clear only the snapshot that was checked out; items added while the
	// payment session was being created stay in the cart.
	s.carts.ClearItems(ctx, sessionID, c.Items)

	s.logger.InfoContext(ctx, "checkout session created",
		slog.String("checkout_session_id", session.ID),
		slog.Int("line_items", len(lineItems)),
	)
	return session, nil
}
