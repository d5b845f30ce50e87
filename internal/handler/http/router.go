package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gr-qft/teini/internal/cart"
	"github.com/gr-qft/teini/internal/catalog"
	"github.com/gr-qft/teini/internal/checkout"
	"github.com/gr-qft/teini/pkg/health"
	"github.com/gr-qft/teini/pkg/middleware"
)

// NewRouter creates a chi router with all shop routes registered.
func NewRouter(
	catalogService *catalog.Service,
	cartService *cart.Service,
	checkoutService *checkout.Service,
	shopMeta ShopMeta,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics())
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	catalogHandler := NewCatalogHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)
	shopHandler := NewShopHandler(shopMeta)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.GetPage)
		r.Get("/shop", shopHandler.GetMeta)

		r.Route("/cart/{sessionID}", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.UpdateItem)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
		})

		r.Post("/checkout/{sessionID}", checkoutHandler.Create)
	})

	return r
}
