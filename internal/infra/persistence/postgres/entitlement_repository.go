package postgres

import (
	"context"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"
	"perks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{db: db}
}

// FindByUser retrieves all entitlements of a user, newest first.
func (repo *entitlementRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Entitlement, error) {
	var entitlementModels []*model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entitlementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entitlements by user")
	}

	entitlements := make([]*entity.Entitlement, 0, len(entitlementModels))
	for _, entitlementM := range entitlementModels {
		entitlements = append(entitlements, toEntitlementDomain(entitlementM))
	}

	return entitlements, nil
}
