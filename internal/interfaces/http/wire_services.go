package http

import (
	"context"
	"fmt"

	"github.com/tablescan/qrmenu/internal/application/catalog"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/infrastructure/auth"
	"github.com/tablescan/qrmenu/internal/infrastructure/cache"
	"github.com/tablescan/qrmenu/internal/infrastructure/repository"
	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers"
	"github.com/tablescan/qrmenu/internal/shared/db"
)

// services holds infrastructure services shared by several use cases.
type services struct {
	txManager       *db.TransactionManager
	scanCounter     entitlement.ScanCounter
	catalogCache    *cache.CatalogCache
	catalogLoader   *catalog.Loader
	sessionVerifier *auth.PartnerSessionVerifier
}

func (c *Container) initServices() error {
	scanCounter, err := c.newScanCounter()
	if err != nil {
		return err
	}

	catalogCache := cache.NewCatalogCache(c.cfg.CatalogCache.Size, c.cfg.CatalogCache.TTL, c.log.Named("catalog_cache"))

	c.svcs = &services{
		txManager:       db.NewTransactionManager(c.db),
		scanCounter:     scanCounter,
		catalogCache:    catalogCache,
		catalogLoader:   catalog.NewLoader(c.repos.menuItemRepo, c.repos.offerRepo, catalogCache, c.log),
		sessionVerifier: auth.NewPartnerSessionVerifier(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer),
	}
	return nil
}

// newScanCounter selects the scan counter backend. Redis keeps the hot path
// off the database; the database backend serves single-node deployments.
func (c *Container) newScanCounter() (entitlement.ScanCounter, error) {
	switch c.cfg.Entitlement.CounterBackend {
	case "redis":
		if c.redis == nil {
			return nil, fmt.Errorf("entitlement.counter_backend is redis but no redis client is configured")
		}
		c.log.Infow("scan counter backend selected", "backend", "redis", "address", c.cfg.Redis.GetAddr())
		return cache.NewRedisScanCounter(c.redis), nil
	case "database", "":
		c.log.Infow("scan counter backend selected", "backend", "database")
		return repository.NewScanCounterRepository(c.db), nil
	default:
		return nil, fmt.Errorf("unknown scan counter backend %q", c.cfg.Entitlement.CounterBackend)
	}
}

// healthDeps lists the dependencies reported by /health.
func (c *Container) healthDeps() map[string]handlers.Pinger {
	deps := map[string]handlers.Pinger{
		"database": handlers.PingerFunc(func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if c.redis != nil {
		deps["redis"] = handlers.PingerFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		})
	}
	return deps
}
