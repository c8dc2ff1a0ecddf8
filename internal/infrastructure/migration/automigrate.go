package migration

import (
	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PartnerModel{},
		&models.MenuItemModel{},
		&models.OfferModel{},
		&models.QRGroupModel{},
		&models.QRCodeModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.ScanCounterModel{},
	}
}

// GormAutoMigrateStrategy builds the schema from the model structs. It is
// meant for local development and tests; deployed databases use goose.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AutoMigrateModels()...)
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
