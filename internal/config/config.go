package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Shopify  ShopifyConfig
	Shipping ShippingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. When URL is empty the
// service falls back to an embedded sqlite database at SQLitePath.
type DatabaseConfig struct {
	URL        string
	SQLitePath string
}

// UseSQLite reports whether the embedded fallback store should be used.
func (c DatabaseConfig) UseSQLite() bool {
	return c.URL == ""
}

// RedisConfig holds the optional Redis configuration. When URL is empty
// the pending OAuth state store stays in-process.
type RedisConfig struct {
	URL string
}

// ShopifyConfig holds the Shopify app credentials and install parameters.
type ShopifyConfig struct {
	APIKey     string
	APISecret  string
	Scopes     string
	AppURL     string
	StateTTL   time.Duration
	SweepEvery time.Duration
}

// ShippingConfig holds carrier defaults for fulfillment creation.
type ShippingConfig struct {
	DefaultTrackingCompany string
}

// Load loads configuration from environment variables
func Load() *Config {
	port := getEnv("SERVER_PORT", "8080")
	return &Config{
		Server: ServerConfig{
			Port: port,
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:        getEnv("DATABASE_URL", ""),
			SQLitePath: getEnv("SQLITE_PATH", "data/shipping.db"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Shopify: ShopifyConfig{
			APIKey:     getEnv("SHOPIFY_API_KEY", ""),
			APISecret:  getEnv("SHOPIFY_API_SECRET", ""),
			Scopes:     getEnv("SHOPIFY_SCOPES", "read_orders,read_fulfillments"),
			AppURL:     appURL(port),
			StateTTL:   getEnvAsDuration("OAUTH_STATE_TTL", 5*time.Minute),
			SweepEvery: getEnvAsDuration("OAUTH_STATE_SWEEP_INTERVAL", 5*time.Minute),
		},
		Shipping: ShippingConfig{
			DefaultTrackingCompany: getEnv("DEFAULT_TRACKING_COMPANY", "Correos de Costa Rica"),
		},
	}
}

// appURL derives the public base URL from a deployment-provided host,
// defaulting to localhost for local development.
func appURL(port string) string {
	if u := os.Getenv("APP_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	if host := os.Getenv("APP_HOST"); host != "" {
		return "https://" + host
	}
	return "http://localhost:" + port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
