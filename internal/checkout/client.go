package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/gr-qft/teini/pkg/errors"
	"github.com/gr-qft/teini/pkg/httpclient"
)

// Session is the opaque handle returned by the payment processor. Clients
// redirect the buyer to URL to complete payment.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionRequest is the payload sent to the payment processor to open a
// checkout session.
type SessionRequest struct {
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	LineItems  []LineItem        `json:"line_items"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// PaymentClient opens checkout sessions with the external payment processor.
type PaymentClient interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}

// HTTPPaymentClient talks to the payment processor over HTTP behind a
// circuit breaker, so a flapping processor degrades checkout fast instead of
// piling up requests.
type HTTPPaymentClient struct {
	baseURL string
	client  *httpclient.CircuitBreakerClient
}

func NewHTTPPaymentClient(baseURL string, client *httpclient.CircuitBreakerClient) *HTTPPaymentClient {
	return &HTTPPaymentClient{baseURL: baseURL, client: client}
}

func (c *HTTPPaymentClient) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	resp, err := c.client.Post(ctx, c.baseURL+"/v1/checkout/sessions", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.CheckoutFailed(fmt.Sprintf("payment processor unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperrors.CheckoutFailed(
			fmt.Sprintf("payment processor returned %d: %s", resp.StatusCode, body))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, apperrors.CheckoutFailed(fmt.Sprintf("decode checkout session: %v", err))
	}
	if session.URL == "" {
		return nil, apperrors.CheckoutFailed("payment processor returned no redirect url")
	}
	return &session, nil
}

var _ PaymentClient = (*HTTPPaymentClient)(nil)
