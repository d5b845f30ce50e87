package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/gr-qft/teini/pkg/config"
	"github.com/gr-qft/teini/pkg/database"
)

// Config holds all configuration for the shop server.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"SHOP_HTTP_PORT" envDefault:"8080"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"teini"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"teini_secret"`
	PostgresDB   string `env:"SHOP_DB_NAME" envDefault:"shop_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Database pool
	DBMaxConns            int32 `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns            int32 `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetimeMins int   `env:"DB_MAX_CONN_LIFETIME_MINUTES" envDefault:"60"`
	DBMaxConnIdleTimeMins int   `env:"DB_MAX_CONN_IDLE_TIME_MINUTES" envDefault:"30"`

	// Redis page cache
	RedisEnabled     bool   `env:"REDIS_ENABLED" envDefault:"false"`
	RedisHost        string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort        int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword    string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
	PageCacheTTLSecs int    `env:"PAGE_CACHE_TTL_SECONDS" envDefault:"60"`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Catalog
	PageSize         int    `env:"CATALOG_PAGE_SIZE" envDefault:"3"`
	ImageRoot        string `env:"IMAGE_ROOT" envDefault:"./public/products"`
	ImageBaseURL     string `env:"IMAGE_BASE_URL" envDefault:"/products"`
	AssemblyInFlight int    `env:"CATALOG_ASSEMBLY_IN_FLIGHT" envDefault:"8"`

	// Payment processor
	PaymentBaseURL     string `env:"PAYMENT_BASE_URL" envDefault:"https://api.stripe.example"`
	CheckoutSuccessURL string `env:"CHECKOUT_SUCCESS_URL" envDefault:"http://localhost:8080/success"`
	CheckoutCancelURL  string `env:"CHECKOUT_CANCEL_URL" envDefault:"http://localhost:8080/cancel"`

	// Shop metadata served to the rendering layer
	ShopName        string `env:"SHOP_NAME" envDefault:"teini"`
	ShopHeadline    string `env:"SHOP_HEADLINE" envDefault:"A tiny shop"`
	ShopSubheadline string `env:"SHOP_SUBHEADLINE" envDefault:"Small catalog, fast pages"`
	ShopContact     string `env:"SHOP_CONTACT" envDefault:"hello@example.com"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load shop config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values. It is separate from Load so callers
// that build a Config directly get the same checks.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.PostgresHost == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if c.PostgresUser == "" {
		return fmt.Errorf("POSTGRES_USER is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.KafkaEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when Kafka is enabled")
	}
	if c.ImageRoot == "" {
		return fmt.Errorf("IMAGE_ROOT is required")
	}
	return nil
}

// Postgres returns the database connection settings.
func (c *Config) Postgres() database.PostgresConfig {
	return database.PostgresConfig{
		Host:            c.PostgresHost,
		Port:            c.PostgresPort,
		User:            c.PostgresUser,
		Password:        c.PostgresPass,
		DBName:          c.PostgresDB,
		SSLMode:         c.PostgresSSL,
		MaxConns:        c.DBMaxConns,
		MinConns:        c.DBMinConns,
		MaxConnLifetime: time.Duration(c.DBMaxConnLifetimeMins) * time.Minute,
		MaxConnIdleTime: time.Duration(c.DBMaxConnIdleTimeMins) * time.Minute,
	}
}

// Redis returns the cache connection settings.
func (c *Config) Redis() database.RedisConfig {
	return database.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

// PageCacheTTL returns the catalog page cache lifetime.
func (c *Config) PageCacheTTL() time.Duration {
	return time.Duration(c.PageCacheTTLSecs) * time.Second
}
