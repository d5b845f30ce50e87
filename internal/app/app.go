package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gr-qft/teini/internal/cart"
	"github.com/gr-qft/teini/internal/catalog"
	"github.com/gr-qft/teini/internal/checkout"
	"github.com/gr-qft/teini/internal/config"
	"github.com/gr-qft/teini/internal/event"
	handler "github.com/gr-qft/teini/internal/handler/http"
	fsstore "github.com/gr-qft/teini/internal/imagestore/fs"
	"github.com/gr-qft/teini/internal/placeholder"
	"github.com/gr-qft/teini/internal/repository/postgres"
	"github.com/gr-qft/teini/pkg/database"
	"github.com/gr-qft/teini/pkg/health"
	"github.com/gr-qft/teini/pkg/httpclient"
	pkgkafka "github.com/gr-qft/teini/pkg/kafka"
)

// App wires together all dependencies and runs the shop server.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *redis.Client
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to postgres",
		slog.String("host", cfg.PostgresHost),
		slog.String("database", cfg.PostgresDB),
	)

	var rdb *redis.Client
	var pageCache *catalog.PageCache
	if cfg.RedisEnabled {
		rdb, err = database.NewRedisClient(ctx, cfg.Redis())
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		pageCache = catalog.NewPageCache(rdb, cfg.PageCacheTTL(), logger)
		logger.Info("connected to redis", slog.String("addr", cfg.Redis().Addr()))
	}

	var producer *pkgkafka.Producer
	if cfg.KafkaEnabled {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Build the dependency graph.
	repo := postgres.NewProductRepository(pool)
	images := fsstore.New(cfg.ImageRoot, cfg.ImageBaseURL)
	assembler := catalog.NewAssembler(images, placeholder.Encode, logger, cfg.AssemblyInFlight)
	catalogService := catalog.NewService(repo, assembler, pageCache, cfg.PageSize, logger)

	cartService := cart.NewService(cart.NewStore(), repo, logger)

	paymentClient := checkout.NewHTTPPaymentClient(
		cfg.PaymentBaseURL,
		httpclient.NewCircuitBreakerClient(
			httpclient.New(httpclient.DefaultConfig()),
			httpclient.DefaultCircuitBreakerConfig("payment"),
			logger,
		),
	)
	publisher := event.NewPublisher(producer, logger)
	checkoutService := checkout.NewService(
		cartService, paymentClient, images, publisher,
		cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, logger,
	)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	if producer != nil {
		healthHandler.Register("kafka", producer.Ping)
	}

	meta := handler.ShopMeta{
		Name:        cfg.ShopName,
		Headline:    cfg.ShopHeadline,
		Subheadline: cfg.ShopSubheadline,
		Contact:     cfg.ShopContact,
	}
	router := handler.NewRouter(catalogService, cartService, checkoutService, meta, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		rdb:        rdb,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return nil
}
