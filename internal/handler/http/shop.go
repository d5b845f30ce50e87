package http

import (
	"net/http"

	"github.com/gr-qft/teini/pkg/httputil"
)

// ShopMeta is the env-derived shop metadata shown in the storefront header.
type ShopMeta struct {
	Name        string `json:"name"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Contact     string `json:"contact"`
}

// ShopHandler serves the static shop metadata.
type ShopHandler struct {
	meta ShopMeta
}

func NewShopHandler(meta ShopMeta) *ShopHandler {
	return &ShopHandler{meta: meta}
}

// GetMeta handles GET /api/v1/shop.
func (h *ShopHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.meta})
}
