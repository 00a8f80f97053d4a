package handler

import (
	"log/slog"
	"net/http"

	"perks/internal/delivery/api/middleware"
	"perks/internal/delivery/api/response"
	"perks/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves one-shot redemptions and the student's history.
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// RedeemRequest represents a scanned storefront code submitted over HTTP
type RedeemRequest struct {
	Code string `json:"code" validate:"required,max=512"`
}

// Redeem handles a single redemption attempt
func (h *RedemptionHandler) Redeem(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	confirmation, err := h.redemptionUC.Redeem(c.Request().Context(), session, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, confirmation)
}

// ListRedemptions handles the student's own redemption history
func (h *RedemptionHandler) ListRedemptions(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	redemptions, err := h.redemptionUC.ListUserRedemptions(c.Request().Context(), session, queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions)
}
