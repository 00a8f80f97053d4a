// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the redemption store.
var (
	// ErrVendorNotFound is returned when no active vendor carries the scanned code.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrVendorCodeAmbiguous is returned when more than one active vendor carries the scanned code.
	ErrVendorCodeAmbiguous = errors.New("vendor code matches more than one vendor")
	// ErrEntitlementNotFound is returned when the user has no active, non-expired entitlement.
	ErrEntitlementNotFound = errors.New("entitlement not found")
	// ErrRedemptionNotFound is returned when no redemption matches the query.
	ErrRedemptionNotFound = errors.New("redemption not found")
	// ErrDuplicateRedemption is returned when the (user, vendor, day) uniqueness constraint fires.
	ErrDuplicateRedemption = errors.New("redemption already exists for this day")
)

// RedemptionStore is the narrow data-store capability the redemption protocol depends on.
type RedemptionStore interface {
	// FindVendorByCode returns the single active vendor whose QR token equals code.
	FindVendorByCode(ctx context.Context, code string) (*entity.Vendor, error)

	// FindActiveEntitlement returns the most recently created entitlement of userID
	// that is active and whose end date is not before at.
	FindActiveEntitlement(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.Entitlement, error)

	// FindRedemptionSince returns a redemption of vendorID by userID redeemed at or after since.
	FindRedemptionSince(ctx context.Context, userID, vendorID uuid.UUID, since time.Time) (*entity.Redemption, error)

	// InsertRedemption persists a new redemption.
	// It returns ErrDuplicateRedemption when one already exists for the same user, vendor and day.
	InsertRedemption(ctx context.Context, redemption *entity.Redemption) error
}
