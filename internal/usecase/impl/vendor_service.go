package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/repository"
	"perks/internal/domain/service"
	"perks/internal/usecase"
	"perks/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxDiscountTextLength = 64
	vendorTokenBytes      = 16
)

type vendorService struct {
	vendorRepo     repository.VendorRepository
	redemptionRepo repository.RedemptionRepository
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo     repository.VendorRepository
	RedemptionRepo repository.RedemptionRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewVendorService creates a new vendor service instance
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &vendorService{
		vendorRepo:     params.VendorRepo,
		redemptionRepo: params.RedemptionRepo,
		qrcodeService:  params.QRCodeService,
		logger:         logger,
	}
}

// ListActiveVendors retrieves all participating vendors
func (s *vendorService) ListActiveVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := s.vendorRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vendors")
	}

	return vendors, nil
}

// GetVendor retrieves a vendor by ID
func (s *vendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return vendor, nil
}

// GetOwnVendor retrieves the vendor administered by the acting user
func (s *vendorService) GetOwnVendor(ctx context.Context, session entity.Session) (*entity.Vendor, error) {
	if !session.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}

	vendor, err := s.vendorRepo.FindByOwner(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	return vendor, nil
}

// GenerateVendorQR renders the acting vendor's current QR code as PNG
func (s *vendorService) GenerateVendorQR(ctx context.Context, session entity.Session) ([]byte, error) {
	vendor, err := s.GetOwnVendor(ctx, session)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateVendorQR(vendor.QRCode)
	if err != nil {
		s.logger.Error("Failed to render vendor QR code",
			slog.String("vendor_id", vendor.ID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeGenerationFailed
	}

	return png, nil
}

// RegenerateQRCode replaces the vendor's QR token
func (s *vendorService) RegenerateQRCode(ctx context.Context, session entity.Session) (*entity.Vendor, error) {
	vendor, err := s.GetOwnVendor(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := util.RandomToken(vendorTokenBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate vendor token")
	}

	if err := s.vendorRepo.UpdateQRCode(ctx, vendor.ID, token); err != nil {
		return nil, domainerrors.ErrVendorUpdateFailed.WrapMessage(err.Error())
	}

	s.logger.Info("Vendor QR code regenerated", slog.String("vendor_id", vendor.ID.String()))

	return s.reload(ctx, vendor.ID)
}

// UpdateDiscount changes the displayed discount text
func (s *vendorService) UpdateDiscount(ctx context.Context, session entity.Session, discountText string) (*entity.Vendor, error) {
	discountText = strings.TrimSpace(discountText)
	if discountText == "" || utf8.RuneCountInString(discountText) > maxDiscountTextLength {
		return nil, domainerrors.ErrInvalidDiscountText
	}

	vendor, err := s.GetOwnVendor(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.UpdateDiscountText(ctx, vendor.ID, discountText); err != nil {
		return nil, domainerrors.ErrVendorUpdateFailed.WrapMessage(err.Error())
	}

	return s.reload(ctx, vendor.ID)
}

// SetActive activates or deactivates the vendor listing
func (s *vendorService) SetActive(ctx context.Context, session entity.Session, active bool) (*entity.Vendor, error) {
	vendor, err := s.GetOwnVendor(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.UpdateActive(ctx, vendor.ID, active); err != nil {
		return nil, domainerrors.ErrVendorUpdateFailed.WrapMessage(err.Error())
	}

	return s.reload(ctx, vendor.ID)
}

// ListVendorRedemptions retrieves the latest redemptions received by the acting vendor
func (s *vendorService) ListVendorRedemptions(ctx context.Context, session entity.Session, limit int) ([]*entity.Redemption, error) {
	vendor, err := s.GetOwnVendor(ctx, session)
	if err != nil {
		return nil, err
	}

	redemptions, err := s.redemptionRepo.ListByVendor(ctx, vendor.ID, clampHistoryLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions by vendor")
	}

	return redemptions, nil
}

func (s *vendorService) reload(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload vendor")
	}

	return vendor, nil
}
