package middleware

import (
	"log/slog"

	"perks/internal/delivery/api/response"
	deliverycontext "perks/internal/delivery/context"
	domainerrors "perks/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Redemption failures tell the client whether scanning again can help.
	var redemptionErr *domainerrors.RedemptionError
	if errors.As(err, &redemptionErr) {
		if redemptionErr.HTTPCode() >= 500 {
			logger.Warn("Redemption failed",
				slog.String("kind", string(redemptionErr.Kind)),
				slog.String("stage", string(redemptionErr.Stage)),
				slog.Any("error", redemptionErr.Err),
			)
		}
		_ = response.Error(c, redemptionErr.HTTPCode(), redemptionErr.ErrorCode(), redemptionErr.Message(), response.RedemptionDetails{
			Stage:     string(redemptionErr.Stage),
			Retryable: redemptionErr.Retryable(),
		})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			logger.Error("Request failed", slog.Any("error", err))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Never expose internal details for unclassified errors.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
