package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gr-qft/teini/internal/checkout"
	"github.com/gr-qft/teini/pkg/httputil"
)

// CheckoutHandler turns a session's cart into a payment session.
type CheckoutHandler struct {
	service *checkout.Service
	logger  *slog.Logger
}

func NewCheckoutHandler(svc *checkout.Service, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, logger: logger}
}

// Create handles POST /api/v1/checkout/{sessionID}
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Checkout(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}
