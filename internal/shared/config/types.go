package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Timezone is the business timezone used for monthly scan windows.
	Timezone string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// AuthConfig only covers verification of partner session tokens.
// Token issuance lives in the partner dashboard service.
type AuthConfig struct {
	JWT          JWTConfig `mapstructure:"jwt"`
	CookieName   string    `mapstructure:"cookie_name"`
	CookieDomain string    `mapstructure:"cookie_domain"`
	CookieSecure bool      `mapstructure:"cookie_secure"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EntitlementConfig controls storefront gating and scan accounting.
type EntitlementConfig struct {
	// DomesticCountry is the country code exempt from scan limits.
	DomesticCountry string `mapstructure:"domestic_country"`
	// ScanWindow is "monthly" or "lifetime".
	ScanWindow string `mapstructure:"scan_window"`
	// CounterBackend is "redis" or "database".
	CounterBackend      string        `mapstructure:"counter_backend"`
	VisitorCookieName   string        `mapstructure:"visitor_cookie_name"`
	VisitorMarkerTTL    time.Duration `mapstructure:"visitor_marker_ttl"`
	IncrementMaxElapsed time.Duration `mapstructure:"increment_max_elapsed"`
}

type CatalogCacheConfig struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type SchedulerConfig struct {
	OfferCleanupInterval time.Duration `mapstructure:"offer_cleanup_interval"`
	OfferCleanupBatch    int           `mapstructure:"offer_cleanup_batch"`
}

// RateLimitConfig throttles anonymous storefront writes per client IP.
// Zero disables a window.
type RateLimitConfig struct {
	QuotePerMinute int `mapstructure:"quote_per_minute"`
	QuotePerHour   int `mapstructure:"quote_per_hour"`
}
