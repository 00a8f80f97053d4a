package handler

import (
	"log/slog"
	"net/http"

	"perks/internal/delivery/api/middleware"
	"perks/internal/delivery/api/response"
	"perks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC    usecase.VendorUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// VendorHandler serves the vendor directory and the vendor self-service endpoints.
type VendorHandler struct {
	vendorUC    usecase.VendorUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC:    params.VendorUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// UpdateDiscountRequest represents the request body for changing the discount text
type UpdateDiscountRequest struct {
	DiscountText string `json:"discount_text" validate:"required,max=64"`
}

// SetActiveRequest represents the request body for listing or delisting a vendor
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListVendors handles browsing participating vendors
func (h *VendorHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendorUC.ListActiveVendors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors)
}

// GetVendor handles retrieving one vendor by id
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// GetOwnVendor handles retrieving the caller's vendor listing
func (h *VendorHandler) GetOwnVendor(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	vendor, err := h.vendorUC.GetOwnVendor(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// GetVendorQR handles rendering the storefront QR code as PNG
func (h *VendorHandler) GetVendorQR(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	qrCode, err := h.vendorUC.GenerateVendorQR(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=vendor-qr.png")
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// RegenerateQRCode handles rotating the storefront QR token
func (h *VendorHandler) RegenerateQRCode(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	vendor, err := h.vendorUC.RegenerateQRCode(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// UpdateDiscount handles changing the discount text shown to students
func (h *VendorHandler) UpdateDiscount(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	var req UpdateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.UpdateDiscount(c.Request().Context(), session, req.DiscountText)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// SetActive handles listing or delisting the caller's vendor
func (h *VendorHandler) SetActive(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid active flag")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.SetActive(c.Request().Context(), session, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// ListVendorRedemptions handles the vendor's redemption history
func (h *VendorHandler) ListVendorRedemptions(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	redemptions, err := h.vendorUC.ListVendorRedemptions(c.Request().Context(), session, queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions)
}

// GetAnalytics handles the vendor's daily redemption counts
func (h *VendorHandler) GetAnalytics(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	analytics, err := h.analyticsUC.GetVendorAnalytics(c.Request().Context(), session, queryInt(c, "days", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}
