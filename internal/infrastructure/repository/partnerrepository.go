package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/mappers"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type PartnerRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPartnerRepository(db *gorm.DB, logger logger.Interface) partner.Repository {
	return &PartnerRepositoryImpl{db: db, logger: logger}
}

func (r *PartnerRepositoryImpl) GetByID(ctx context.Context, id string) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrPartnerNotFound
		}
		r.logger.Errorw("failed to get partner", "error", err, "partner_id", id)
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return mappers.PartnerToEntity(&model)
}

type QRCodeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewQRCodeRepository(db *gorm.DB, logger logger.Interface) partner.QRCodeRepository {
	return &QRCodeRepositoryImpl{db: db, logger: logger}
}

func (r *QRCodeRepositoryImpl) GetByCode(ctx context.Context, code string) (*partner.QRCode, error) {
	var model models.QRCodeModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrQRCodeNotFound
		}
		r.logger.Errorw("failed to get qr code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get qr code: %w", err)
	}
	return mappers.QRCodeToEntity(&model)
}

type QRGroupRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewQRGroupRepository(db *gorm.DB, logger logger.Interface) partner.QRGroupRepository {
	return &QRGroupRepositoryImpl{db: db, logger: logger}
}

func (r *QRGroupRepositoryImpl) GetByID(ctx context.Context, id string) (*partner.QRGroup, error) {
	var model models.QRGroupModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrQRGroupNotFound
		}
		r.logger.Errorw("failed to get qr group", "error", err, "qr_group_id", id)
		return nil, fmt.Errorf("failed to get qr group: %w", err)
	}
	return mappers.QRGroupToEntity(&model, r.logger)
}
