package postgres

import (
	"context"
	"testing"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	vendor := &entity.Vendor{
		OwnerUserID:  uuid.New(),
		Name:         "Campus Coffee",
		QRCode:       "ABC123",
		Active:       true,
		DiscountText: "20% OFF",
	}
	require.NoError(t, repo.Create(ctx, vendor))
	require.NotEqual(t, uuid.Nil, vendor.ID)

	byOwner, err := repo.FindByOwner(ctx, vendor.OwnerUserID)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, byOwner.ID)

	require.NoError(t, repo.UpdateQRCode(ctx, vendor.ID, "NEW456"))
	require.NoError(t, repo.UpdateDiscountText(ctx, vendor.ID, "2 for 1"))
	require.NoError(t, repo.UpdateActive(ctx, vendor.ID, false))

	updated, err := repo.FindByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "NEW456", updated.QRCode)
	assert.Equal(t, "2 for 1", updated.DiscountText)
	assert.False(t, updated.Active)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)

	assert.ErrorIs(t, repo.UpdateActive(ctx, uuid.New(), true), repository.ErrVendorNotFound)
}

func TestVendorRepository_CreateKeepsInactive(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	vendor := &entity.Vendor{Name: "Closed Diner", QRCode: "DINER", Active: false, DiscountText: "5% OFF"}
	require.NoError(t, repo.Create(ctx, vendor))

	stored, err := repo.FindByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestVendorRepository_ListActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	for _, v := range []*entity.Vendor{
		{Name: "Zebra Books", QRCode: "Z", Active: true, DiscountText: "10% OFF"},
		{Name: "Art Supplies", QRCode: "A", Active: true, DiscountText: "15% OFF"},
		{Name: "Closed Diner", QRCode: "D", Active: false, DiscountText: "5% OFF"},
	} {
		require.NoError(t, repo.Create(ctx, v))
	}

	vendors, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Art Supplies", vendors[0].Name)
	assert.Equal(t, "Zebra Books", vendors[1].Name)
}
