// Package http wires repositories, use cases and handlers into the gin engine.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/infrastructure/config"
	"github.com/tablescan/qrmenu/internal/interfaces/http/middleware"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers of the HTTP server.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	sessionMiddleware *middleware.PartnerSessionMiddleware
}

// NewContainer wires the server. redisClient may be nil when the scan
// counter runs on the database.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	if err := c.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}
	c.initHandlers()

	return c, nil
}
