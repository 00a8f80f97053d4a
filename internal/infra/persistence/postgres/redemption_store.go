package postgres

import (
	"context"
	"time"

	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/repository"
	"perks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// redemptionStore implements repository.RedemptionStore and repository.RedemptionRepository.
type redemptionStore struct {
	db *gorm.DB
}

// NewRedemptionStore is the constructor for the store behind the redemption protocol.
func NewRedemptionStore(db *gorm.DB) repository.RedemptionStore {
	return &redemptionStore{db: db}
}

// NewRedemptionRepository is the constructor for the redemption history queries.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionStore{db: db}
}

// FindVendorByCode retrieves the single active vendor carrying code.
func (repo *redemptionStore) FindVendorByCode(ctx context.Context, code string) (*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	// Two rows are enough to tell "exactly one" from "more than one".
	if err := repo.db.WithContext(ctx).
		Where("qr_code = ? AND active = ?", code, true).
		Limit(2).
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by code")
	}

	switch len(vendorModels) {
	case 0:
		return nil, repository.ErrVendorNotFound
	case 1:
		return toVendorDomain(vendorModels[0]), nil
	default:
		return nil, errors.Wrapf(repository.ErrVendorCodeAmbiguous, "vendors %s and %s", vendorModels[0].ID, vendorModels[1].ID)
	}
}

// FindActiveEntitlement retrieves the newest active entitlement whose end date is not before at.
func (repo *redemptionStore) FindActiveEntitlement(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.Entitlement, error) {
	var entitlementM model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND active = ? AND end_date >= ?", userID, true, at).
		Order("created_at DESC").
		First(&entitlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find active entitlement")
	}

	return toEntitlementDomain(&entitlementM), nil
}

// FindRedemptionSince retrieves a redemption of vendorID by userID at or after since.
func (repo *redemptionStore) FindRedemptionSince(ctx context.Context, userID, vendorID uuid.UUID, since time.Time) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND vendor_id = ? AND redeemed_at >= ?", userID, vendorID, since).
		Order("redeemed_at DESC").
		First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption since")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// InsertRedemption persists a new redemption.
func (repo *redemptionStore) InsertRedemption(ctx context.Context, redemption *entity.Redemption) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemption
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "redemption references an unknown vendor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert redemption")
	}

	return nil
}

// ListByUser retrieves the latest redemptions made by a user.
func (repo *redemptionStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	return repo.list(ctx, "user_id = ?", userID, limit)
}

// ListByVendor retrieves the latest redemptions received by a vendor.
func (repo *redemptionStore) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	return repo.list(ctx, "vendor_id = ?", vendorID, limit)
}

func (repo *redemptionStore) list(ctx context.Context, where string, id uuid.UUID, limit int) ([]*entity.Redemption, error) {
	var redemptionModels []*model.RedemptionModel

	query := repo.db.WithContext(ctx).
		Where(where, id).
		Order("redeemed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&redemptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	if data == nil {
		return nil
	}

	return &entity.Redemption{
		ID:              data.ID,
		UserID:          data.UserID,
		VendorID:        data.VendorID,
		DiscountApplied: data.DiscountApplied,
		RedeemedAt:      data.RedeemedAt,
		RedemptionDay:   data.RedemptionDay,
	}
}

func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:              data.ID,
		UserID:          data.UserID,
		VendorID:        data.VendorID,
		DiscountApplied: data.DiscountApplied,
		RedeemedAt:      data.RedeemedAt,
		RedemptionDay:   data.RedemptionDay,
	}
}

func toEntitlementDomain(data *model.EntitlementModel) *entity.Entitlement {
	if data == nil {
		return nil
	}

	return &entity.Entitlement{
		ID:        data.ID,
		UserID:    data.UserID,
		Plan:      data.Plan,
		Active:    data.Active,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
	}
}
