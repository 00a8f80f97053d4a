// Package memory provides an in-process store with the same contracts as the
// postgres repositories, including the one-redemption-per-day constraint.
// It backs tests and the "memory" persistence driver for local demos.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type redemptionKey struct {
	userID   uuid.UUID
	vendorID uuid.UUID
	day      string
}

type statKey struct {
	vendorID uuid.UUID
	day      string
}

// Store keeps vendors, entitlements, redemptions and analytics in memory.
type Store struct {
	mu sync.RWMutex

	vendors      map[uuid.UUID]*entity.Vendor
	entitlements map[uuid.UUID][]*entity.Entitlement
	redemptions  []*entity.Redemption
	redeemed     map[redemptionKey]struct{}
	processed    map[uuid.UUID]struct{}
	stats        map[statKey]int64

	// fault injection for tests, keyed by operation name
	failures map[string]error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		vendors:      make(map[uuid.UUID]*entity.Vendor),
		entitlements: make(map[uuid.UUID][]*entity.Entitlement),
		redeemed:     make(map[redemptionKey]struct{}),
		processed:    make(map[uuid.UUID]struct{}),
		stats:        make(map[statKey]int64),
		failures:     make(map[string]error),
	}
}

// Operation names accepted by FailNext.
const (
	OpFindVendorByCode      = "FindVendorByCode"
	OpFindActiveEntitlement = "FindActiveEntitlement"
	OpFindRedemptionSince   = "FindRedemptionSince"
	OpInsertRedemption      = "InsertRedemption"
)

// FailNext makes the next call of op return err.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[op] = err
}

func (s *Store) takeFailure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)

	return err
}

// AddEntitlement stores an entitlement for its user.
func (s *Store) AddEntitlement(ent *entity.Entitlement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *ent
	s.entitlements[ent.UserID] = append(s.entitlements[ent.UserID], &copied)
}

// FindVendorByCode implements repository.RedemptionStore.
func (s *Store) FindVendorByCode(ctx context.Context, code string) (*entity.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.precheck(ctx, OpFindVendorByCode); err != nil {
		return nil, err
	}

	var found *entity.Vendor
	for _, vendor := range s.vendors {
		if !vendor.Active || vendor.QRCode != code {
			continue
		}
		if found != nil {
			return nil, errors.Wrapf(repository.ErrVendorCodeAmbiguous, "code %q", code)
		}
		found = vendor
	}

	if found == nil {
		return nil, repository.ErrVendorNotFound
	}

	copied := *found

	return &copied, nil
}

// FindActiveEntitlement implements repository.RedemptionStore.
func (s *Store) FindActiveEntitlement(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.precheck(ctx, OpFindActiveEntitlement); err != nil {
		return nil, err
	}

	var newest *entity.Entitlement
	for _, ent := range s.entitlements[userID] {
		if !ent.CoversAt(at) {
			continue
		}
		if newest == nil || ent.CreatedAt.After(newest.CreatedAt) {
			newest = ent
		}
	}

	if newest == nil {
		return nil, repository.ErrEntitlementNotFound
	}

	copied := *newest

	return &copied, nil
}

// FindRedemptionSince implements repository.RedemptionStore.
func (s *Store) FindRedemptionSince(ctx context.Context, userID, vendorID uuid.UUID, since time.Time) (*entity.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.precheck(ctx, OpFindRedemptionSince); err != nil {
		return nil, err
	}

	for _, r := range s.redemptions {
		if r.UserID == userID && r.VendorID == vendorID && !r.RedeemedAt.Before(since) {
			copied := *r

			return &copied, nil
		}
	}

	return nil, repository.ErrRedemptionNotFound
}

// InsertRedemption implements repository.RedemptionStore.
func (s *Store) InsertRedemption(ctx context.Context, redemption *entity.Redemption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.precheck(ctx, OpInsertRedemption); err != nil {
		return err
	}

	key := redemptionKey{userID: redemption.UserID, vendorID: redemption.VendorID, day: redemption.RedemptionDay}
	if _, exists := s.redeemed[key]; exists {
		return repository.ErrDuplicateRedemption
	}

	copied := *redemption
	s.redeemed[key] = struct{}{}
	s.redemptions = append(s.redemptions, &copied)

	return nil
}

// Redemptions returns a snapshot of every stored redemption in insert order.
func (s *Store) Redemptions() []*entity.Redemption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Redemption, 0, len(s.redemptions))
	for _, r := range s.redemptions {
		copied := *r
		out = append(out, &copied)
	}

	return out
}

// precheck must be called with s.mu held.
func (s *Store) precheck(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, op)
	}

	return s.takeFailure(op)
}

// ListByUser implements repository.RedemptionRepository.
func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	return s.listRedemptions(ctx, limit, func(r *entity.Redemption) bool { return r.UserID == userID })
}

// ListByVendor implements repository.RedemptionRepository.
func (s *Store) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	return s.listRedemptions(ctx, limit, func(r *entity.Redemption) bool { return r.VendorID == vendorID })
}

func (s *Store) listRedemptions(ctx context.Context, limit int, match func(*entity.Redemption) bool) ([]*entity.Redemption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Redemption
	for _, r := range slices.Backward(s.redemptions) {
		if !match(r) {
			continue
		}
		copied := *r
		out = append(out, &copied)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

// Create implements repository.VendorRepository.
func (s *Store) Create(ctx context.Context, vendor *entity.Vendor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	copied := *vendor
	s.vendors[vendor.ID] = &copied

	return nil
}

// FindByID implements repository.VendorRepository.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	copied := *vendor

	return &copied, nil
}

// FindByOwner implements repository.VendorRepository.
func (s *Store) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, vendor := range s.vendors {
		if vendor.OwnerUserID == ownerUserID {
			copied := *vendor

			return &copied, nil
		}
	}

	return nil, repository.ErrVendorNotFound
}

// ListActive implements repository.VendorRepository.
func (s *Store) ListActive(ctx context.Context) ([]*entity.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Vendor, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		if vendor.Active {
			copied := *vendor
			out = append(out, &copied)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Vendor) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out, nil
}

// UpdateQRCode implements repository.VendorRepository.
func (s *Store) UpdateQRCode(ctx context.Context, id uuid.UUID, code string) error {
	return s.updateVendor(ctx, id, func(v *entity.Vendor) { v.QRCode = code })
}

// UpdateDiscountText implements repository.VendorRepository.
func (s *Store) UpdateDiscountText(ctx context.Context, id uuid.UUID, discountText string) error {
	return s.updateVendor(ctx, id, func(v *entity.Vendor) { v.DiscountText = discountText })
}

// UpdateActive implements repository.VendorRepository.
func (s *Store) UpdateActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.updateVendor(ctx, id, func(v *entity.Vendor) { v.Active = active })
}

func (s *Store) updateVendor(ctx context.Context, id uuid.UUID, apply func(*entity.Vendor)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}
	apply(vendor)
	vendor.UpdatedAt = time.Now()

	return nil
}

// FindByUser implements repository.EntitlementRepository.
func (s *Store) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Entitlement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Entitlement, 0, len(s.entitlements[userID]))
	for _, ent := range s.entitlements[userID] {
		copied := *ent
		out = append(out, &copied)
	}
	slices.SortFunc(out, func(a, b *entity.Entitlement) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out, nil
}
