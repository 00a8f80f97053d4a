package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "perks/internal/delivery/context"
	domainerrors "perks/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/redemptions", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"vendor_name": "Bean There"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"vendor_name":"Bean There"}`, string(env.Data))
	assert.Equal(t, "req-42", env.Meta.RequestID)
	assert.Nil(t, env.Error)
}

func TestError_WithholdsDetailsForServerAndAuthErrors(t *testing.T) {
	tests := []struct {
		status      int
		details     any
		wantDetails bool
	}{
		{status: http.StatusBadRequest, details: map[string]string{"field": "code"}, wantDetails: true},
		{status: http.StatusUnauthorized, details: map[string]string{"why": "expired"}},
		{status: http.StatusInternalServerError, details: map[string]string{"sql": "SELECT"}},
		{status: http.StatusServiceUnavailable, details: RedemptionDetails{Stage: "commit", Retryable: true}, wantDetails: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", tt.details))

			env := decode(t, rec)
			require.NotNil(t, env.Error)
			if tt.wantDetails {
				assert.NotEmpty(t, env.Error.Details)
			} else {
				assert.Empty(t, env.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("redemption error carries stage and retry hint", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.NewRedemptionError(
			domainerrors.KindAlreadyRedeemedToday, domainerrors.StageCommit, errors.New("23505")), "redeem")

		require.NoError(t, HandleAppError(c, err))

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "ALREADY_REDEEMED_TODAY", env.Error.Code)
		assert.Equal(t, "commit", env.Error.Details["stage"])
		assert.Equal(t, false, env.Error.Details["retryable"])
		assert.NotContains(t, rec.Body.String(), "23505")
	})

	t.Run("app error", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrVendorNotFound.WrapMessage("id")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "VENDOR_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("unknown error is returned to the error handler", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("boom")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.False(t, c.Response().Committed)
		assert.Empty(t, rec.Body.String())
	})
}
