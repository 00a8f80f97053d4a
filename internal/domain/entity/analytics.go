package entity

import "github.com/google/uuid"

// VendorDailyStat is the number of redemptions a vendor received on one day.
type VendorDailyStat struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	Day         string    `json:"day"`
	Redemptions int64     `json:"redemptions"`
}

// VendorAnalytics summarises redemptions over a window of days.
type VendorAnalytics struct {
	VendorID uuid.UUID          `json:"vendor_id"`
	Days     []*VendorDailyStat `json:"days"`
	Total    int64              `json:"total"`
}
