package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync"
	"time"

	"perks/config"
	"perks/internal/delivery/api/middleware"
	"perks/internal/delivery/api/response"
	"perks/internal/domain/clock"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/service"
	"perks/internal/scan"
	"perks/internal/usecase"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	frameTypeScan               = "scan"
	frameTypeResult             = "result"
	frameTypeEntitlementChanged = "entitlement_changed"
	frameTypeError              = "error"

	maxScanFrameBytes   = 4096
	scanSendQueueSize   = 16
	defaultWriteTimeout = 5 * time.Second
)

// ScanFrame is a client to server message on the scan stream.
type ScanFrame struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

// ScanErrorInfo describes a failed redemption on the scan stream.
type ScanErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ServerFrame is a server to client message on the scan stream.
type ServerFrame struct {
	Type         string                `json:"type"`
	Payload      string                `json:"payload,omitempty"`
	Confirmation *usecase.Confirmation `json:"confirmation,omitempty"`
	Error        *ScanErrorInfo        `json:"error,omitempty"`
	ObservedAt   *time.Time            `json:"observed_at,omitempty"`
}

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	RedemptionUC  usecase.RedemptionUsecase
	EntitlementUC usecase.EntitlementUsecase
	Metrics       service.RedemptionMetrics `optional:"true"`
	Clock         clock.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// ScanHandler runs one scan intake per WebSocket connection.
type ScanHandler struct {
	redemptionUC   usecase.RedemptionUsecase
	entitlementUC  usecase.EntitlementUsecase
	metrics        service.RedemptionMetrics
	clock          clock.Clock
	cooldown       time.Duration
	originPatterns []string
	writeTimeout   time.Duration
	logger         *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	h := &ScanHandler{
		redemptionUC:  params.RedemptionUC,
		entitlementUC: params.EntitlementUC,
		metrics:       params.Metrics,
		clock:         params.Clock,
		writeTimeout:  defaultWriteTimeout,
		logger:        params.Logger,
	}

	if params.Config.Redemption != nil {
		h.cooldown = params.Config.Redemption.Cooldown
	}
	if ws := params.Config.WebSocket; ws != nil {
		h.originPatterns = ws.AllowedOrigins
		if ws.WriteTimeout > 0 {
			h.writeTimeout = ws.WriteTimeout
		}
	}

	return h
}

// HandleScan upgrades to a WebSocket and feeds scanned payloads into a scan intake.
// Closing the connection disposes the intake; a redemption already in flight still
// completes but its result is dropped.
func (h *ScanHandler) HandleScan(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		// Accept has already written the HTTP error.
		h.logger.Info("Scan stream upgrade rejected", slog.Any("error", err))

		return nil
	}
	conn.SetReadLimit(maxScanFrameBytes)

	h.serve(c.Request().Context(), conn, session)

	return nil
}

func (h *ScanHandler) serve(parent context.Context, conn *websocket.Conn, session entity.Session) {
	logger := h.logger.With(slog.String("user_id", session.UserID.String()))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := make(chan ServerFrame, scanSendQueueSize)

	var closeOnce sync.Once
	shutdown := func(code websocket.StatusCode, reason string) {
		closeOnce.Do(func() {
			cancel()
			_ = conn.Close(code, reason)
		})
	}

	enqueue := func(frame ServerFrame) {
		select {
		case <-ctx.Done():
		case send <- frame:
		default:
			logger.Warn("Scan stream send queue full, dropping frame", slog.String("type", frame.Type))
		}
	}

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)

		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-send:
				if err := h.writeFrame(ctx, conn, frame); err != nil {
					logger.Info("Scan stream write failed", slog.Any("error", err))
					shutdown(websocket.StatusAbnormalClosure, "write failed")

					return
				}
			}
		}
	}()

	intake := scan.NewIntake(ctx,
		func(ctx context.Context, payload string) (*usecase.Confirmation, error) {
			return h.redemptionUC.Redeem(ctx, session, payload)
		},
		func(result scan.Result) {
			enqueue(resultFrame(result))
		},
		scan.Options{
			Cooldown: h.cooldown,
			Clock:    h.clock,
			Logger:   logger,
			Metrics:  h.metrics,
		},
	)

	unwatch := h.entitlementUC.WatchEntitlement(session.UserID, func(change service.EntitlementChange) {
		observedAt := change.ObservedAt
		enqueue(ServerFrame{Type: frameTypeEntitlementChanged, ObservedAt: &observedAt})
	})

	h.readLoop(ctx, conn, intake, enqueue, logger)

	unwatch()
	intake.Close()
	shutdown(websocket.StatusNormalClosure, "bye")
	<-writerDone
}

func (h *ScanHandler) readLoop(ctx context.Context, conn *websocket.Conn, intake *scan.Intake, enqueue func(ServerFrame), logger *slog.Logger) {
	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			if !isExpectedCloseErr(err) {
				logger.Info("Scan stream read failed", slog.Any("error", err))
			}

			return
		}

		if msgType != websocket.MessageText {
			enqueue(errorFrame("UNSUPPORTED_FRAME", "only text frames are accepted"))

			continue
		}

		var frame ScanFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			enqueue(errorFrame("BAD_JSON", "invalid JSON"))

			continue
		}

		switch frame.Type {
		case frameTypeScan:
			intake.OnCodeScanned(frame.Payload)
		default:
			enqueue(errorFrame("UNSUPPORTED_TYPE", "unsupported frame type: "+frame.Type))
		}
	}
}

func (h *ScanHandler) writeFrame(parent context.Context, conn *websocket.Conn, frame ServerFrame) error {
	ctx, cancel := context.WithTimeout(parent, h.writeTimeout)
	defer cancel()

	b, err := json.Marshal(frame)
	if err != nil {
		return errors.WithStack(err)
	}

	return conn.Write(ctx, websocket.MessageText, b)
}

func resultFrame(result scan.Result) ServerFrame {
	frame := ServerFrame{
		Type:         frameTypeResult,
		Payload:      result.Payload,
		Confirmation: result.Confirmation,
	}
	if result.Err == nil {
		return frame
	}

	var redemptionErr *domainerrors.RedemptionError
	if errors.As(result.Err, &redemptionErr) {
		frame.Error = &ScanErrorInfo{
			Code:      redemptionErr.ErrorCode(),
			Message:   redemptionErr.Message(),
			Retryable: redemptionErr.Retryable(),
		}

		return frame
	}

	frame.Error = &ScanErrorInfo{
		Code:      domainerrors.ErrInternalError.ErrorCode(),
		Message:   domainerrors.ErrInternalError.Message(),
		Retryable: true,
	}

	return frame
}

func errorFrame(code, message string) ServerFrame {
	return ServerFrame{
		Type:  frameTypeError,
		Error: &ScanErrorInfo{Code: code, Message: message},
	}
}

func isExpectedCloseErr(err error) bool {
	if websocket.CloseStatus(err) != -1 {
		return true
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, net.ErrClosed)
}

