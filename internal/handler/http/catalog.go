package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gr-qft/teini/internal/catalog"
	apperrors "github.com/gr-qft/teini/pkg/errors"
	"github.com/gr-qft/teini/pkg/httputil"
)

// CatalogHandler serves paginated catalog pages. The statically rendered
// first page and every incremental fetch go through the same endpoint, so
// the payload shape cannot drift between the two.
type CatalogHandler struct {
	service *catalog.Service
	logger  *slog.Logger
}

func NewCatalogHandler(svc *catalog.Service, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// GetPage handles GET /api/v1/catalog?page=N. page defaults to 0.
func (h *CatalogHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("page must be an integer"), h.logger)
			return
		}
		page = parsed
	}

	view, err := h.service.FetchPage(r.Context(), page)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
