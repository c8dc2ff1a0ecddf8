package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	sharedConfig "github.com/tablescan/qrmenu/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Entitlement  sharedConfig.EntitlementConfig  `mapstructure:"entitlement"`
	CatalogCache sharedConfig.CatalogCacheConfig `mapstructure:"catalog_cache"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath overrides the search path when non-empty.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("QRMENU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *Config) error {
	switch cfg.Entitlement.ScanWindow {
	case "monthly", "lifetime":
	default:
		return fmt.Errorf("invalid entitlement.scan_window %q: must be monthly or lifetime", cfg.Entitlement.ScanWindow)
	}
	switch cfg.Entitlement.CounterBackend {
	case "redis", "database":
	default:
		return fmt.Errorf("invalid entitlement.counter_backend %q: must be redis or database", cfg.Entitlement.CounterBackend)
	}
	if cfg.CatalogCache.Size <= 0 {
		return fmt.Errorf("catalog_cache.size must be positive")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "Asia/Kolkata")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "qrmenu_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.issuer", "qrmenu-dashboard")
	v.SetDefault("auth.cookie_name", "partner_session")
	v.SetDefault("auth.cookie_domain", "")
	v.SetDefault("auth.cookie_secure", false)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Entitlement defaults
	v.SetDefault("entitlement.domestic_country", "IN")
	v.SetDefault("entitlement.scan_window", "monthly")
	v.SetDefault("entitlement.counter_backend", "redis")
	v.SetDefault("entitlement.visitor_cookie_name", "qr_visit")
	v.SetDefault("entitlement.visitor_marker_ttl", 24*time.Hour)
	v.SetDefault("entitlement.increment_max_elapsed", 2*time.Second)

	// Catalog cache defaults
	v.SetDefault("catalog_cache.size", 2048)
	v.SetDefault("catalog_cache.ttl", 5*time.Minute)

	// Scheduler defaults
	v.SetDefault("scheduler.offer_cleanup_interval", 15*time.Minute)
	v.SetDefault("scheduler.offer_cleanup_batch", 500)

	v.SetDefault("rate_limit.quote_per_minute", 30)
	v.SetDefault("rate_limit.quote_per_hour", 300)
}
