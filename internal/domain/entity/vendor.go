// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a participating business offering a student discount.
type Vendor struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the vendor.
	OwnerUserID  uuid.UUID `json:"owner_user_id"` // The user account that administers this vendor.
	Name         string    `json:"name"`          // Display name shown on the confirmation screen.
	LogoURL      string    `json:"logo_url"`      // Logo shown on the confirmation screen.
	Location     string    `json:"location"`      // Human readable storefront location.
	QRCode       string    `json:"-"`             // Opaque token printed on the storefront QR code.
	Active       bool      `json:"active"`        // Inactive vendors cannot be redeemed against.
	DiscountText string    `json:"discount_text"` // Display string such as "20% OFF".
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
