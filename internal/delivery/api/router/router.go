// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perks/internal/delivery/api/middleware"
	"perks/internal/delivery/api/router/handler"
	"perks/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VendorHandler       *handler.VendorHandler
	RedemptionHandler   *handler.RedemptionHandler
	EntitlementHandler  *handler.EntitlementHandler
	ScanHandler         *handler.ScanHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	vendorHandler       *handler.VendorHandler
	redemptionHandler   *handler.RedemptionHandler
	entitlementHandler  *handler.EntitlementHandler
	scanHandler         *handler.ScanHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		vendorHandler:       params.VendorHandler,
		redemptionHandler:   params.RedemptionHandler,
		entitlementHandler:  params.EntitlementHandler,
		scanHandler:         params.ScanHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Vendor directory
	vendorsGroup := apiV1.Group("/vendors")
	{
		vendorsGroup.GET("", r.vendorHandler.ListVendors)
		vendorsGroup.GET("/:id", r.vendorHandler.GetVendor)
	}

	// Redemptions, throttled per user
	redemptionsGroup := apiV1.Group("/redemptions")
	{
		redemptionsGroup.POST("", r.redemptionHandler.Redeem, r.rateLimitMiddleware.Limit)
		redemptionsGroup.GET("", r.redemptionHandler.ListRedemptions)
	}

	// Scan stream
	apiV1.GET("/scan", r.scanHandler.HandleScan, r.rateLimitMiddleware.Limit)

	// Entitlements
	entitlementsGroup := apiV1.Group("/entitlements")
	{
		entitlementsGroup.GET("", r.entitlementHandler.List)
		entitlementsGroup.GET("/current", r.entitlementHandler.GetCurrent)
	}

	// Vendor self-service (requires vendor role)
	vendorGroup := apiV1.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("", r.vendorHandler.GetOwnVendor)
		vendorGroup.GET("/qr", r.vendorHandler.GetVendorQR)
		vendorGroup.POST("/qr/regenerate", r.vendorHandler.RegenerateQRCode)
		vendorGroup.PUT("/discount", r.vendorHandler.UpdateDiscount)
		vendorGroup.PUT("/active", r.vendorHandler.SetActive)
		vendorGroup.GET("/redemptions", r.vendorHandler.ListVendorRedemptions)
		vendorGroup.GET("/analytics", r.vendorHandler.GetAnalytics)
	}
}
