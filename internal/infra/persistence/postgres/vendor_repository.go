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

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// Create persists a new vendor.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByOwner retrieves the vendor administered by ownerUserID.
func (repo *vendorRepository) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "owner_user_id = ?", ownerUserID)
}

func (repo *vendorRepository) findOne(ctx context.Context, where string, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where(where, id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// ListActive retrieves all active vendors ordered by name.
func (repo *vendorRepository) ListActive(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// UpdateQRCode replaces the vendor's QR token.
func (repo *vendorRepository) UpdateQRCode(ctx context.Context, id uuid.UUID, code string) error {
	return repo.update(ctx, id, map[string]any{"qr_code": code})
}

// UpdateDiscountText changes the displayed discount.
func (repo *vendorRepository) UpdateDiscountText(ctx context.Context, id uuid.UUID, discountText string) error {
	return repo.update(ctx, id, map[string]any{"discount_text": discountText})
}

// UpdateActive activates or deactivates the vendor.
func (repo *vendorRepository) UpdateActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.update(ctx, id, map[string]any{"active": active})
}

func (repo *vendorRepository) update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:           data.ID,
		OwnerUserID:  data.OwnerUserID,
		Name:         data.Name,
		LogoURL:      data.LogoURL,
		Location:     data.Location,
		QRCode:       data.QRCode,
		Active:       data.Active,
		DiscountText: data.DiscountText,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:           data.ID,
		OwnerUserID:  data.OwnerUserID,
		Name:         data.Name,
		LogoURL:      data.LogoURL,
		Location:     data.Location,
		QRCode:       data.QRCode,
		Active:       data.Active,
		DiscountText: data.DiscountText,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
