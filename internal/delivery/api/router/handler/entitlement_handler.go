package handler

import (
	"net/http"

	"perks/internal/delivery/api/middleware"
	"perks/internal/delivery/api/response"
	"perks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EntitlementHandler serves the student's subscription status.
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(entitlementUC usecase.EntitlementUsecase) *EntitlementHandler {
	return &EntitlementHandler{entitlementUC: entitlementUC}
}

// GetCurrent handles retrieving the entitlement that currently grants redemptions
func (h *EntitlementHandler) GetCurrent(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	entitlement, err := h.entitlementUC.GetCurrentEntitlement(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entitlement)
}

// List handles retrieving every entitlement the student has held
func (h *EntitlementHandler) List(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	entitlements, err := h.entitlementUC.ListEntitlements(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entitlements)
}
