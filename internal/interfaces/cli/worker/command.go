package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	offerUsecases "github.com/tablescan/qrmenu/internal/application/offer/usecases"
	"github.com/tablescan/qrmenu/internal/infrastructure/config"
	"github.com/tablescan/qrmenu/internal/infrastructure/database"
	"github.com/tablescan/qrmenu/internal/infrastructure/repository"
	"github.com/tablescan/qrmenu/internal/infrastructure/scheduler"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run background maintenance jobs",
		Long:  `Run the scheduler that removes expired custom offers and the custom menu items they leave behind.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.NewLogger().Named("worker")

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	cleanup := offerUsecases.NewCleanupExpiredOffersUseCase(
		repository.NewOfferRepository(db, log),
		repository.NewMenuItemRepository(db, log),
		cfg.Scheduler.OfferCleanupBatch,
		log,
	)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterOfferCleanupJob(cleanup, cfg.Scheduler.OfferCleanupInterval); err != nil {
		return fmt.Errorf("failed to register offer cleanup job: %w", err)
	}

	manager.Start()
	log.Infow("worker started", "environment", env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Infow("shutting down worker", "signal", sig.String())
	return manager.Stop()
}
