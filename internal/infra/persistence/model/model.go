// Package model holds the GORM table structs of the persistence layer.
package model

// All returns every model, in dependency order, for AutoMigrate in tests and local setups.
func All() []any {
	return []any{
		&VendorModel{},
		&EntitlementModel{},
		&RedemptionModel{},
		&ProcessedRedemptionEventModel{},
		&VendorDailyStatModel{},
	}
}
