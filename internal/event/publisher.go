package event

import (
	"context"
	"log/slog"

	"github.com/gr-qft/teini/pkg/kafka"
)

const (
	TopicCheckout = "shop.checkout"

	TypeCheckoutSessionCreated = "checkout.session.created"
)

const source = "teini-shop"

// CheckoutSessionCreated is the payload published when a checkout session
// has been opened with the payment processor.
type CheckoutSessionCreated struct {
	CartSessionID     string `json:"cart_session_id"`
	CheckoutSessionID string `json:"checkout_session_id"`
	ItemCount         int    `json:"item_count"`
	TotalAmount       int64  `json:"total_amount"`
	Currency          string `json:"currency"`
}

// Publisher emits shop domain events. A nil *Publisher drops everything,
// which keeps event emission optional in tests and local setups without a
// broker.
type Publisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

func NewPublisher(producer *kafka.Producer, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

// CheckoutSessionCreated publishes the event. Failures are logged, never
// returned: event delivery must not fail a checkout that the payment
// processor already accepted.
func (p *Publisher) CheckoutSessionCreated(ctx context.Context, payload CheckoutSessionCreated) {
	if p == nil || p.producer == nil {
		return
	}

	evt, err := kafka.NewEvent(TypeCheckoutSessionCreated, payload.CheckoutSessionID, "checkout_session", source, payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "build checkout event",
			slog.String("error", err.Error()),
		)
		return
	}

	if err := p.producer.Publish(ctx, TopicCheckout, evt); err != nil {
		p.logger.ErrorContext(ctx, "publish checkout event",
			slog.String("checkout_session_id", payload.CheckoutSessionID),
			slog.String("error", err.Error()),
		)
	}
}
