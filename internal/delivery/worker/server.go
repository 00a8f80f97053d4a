package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"perks/config"
	"perks/internal/delivery"
	apimiddleware "perks/internal/delivery/api/middleware"
	apihandler "perks/internal/delivery/api/router/handler"
	"perks/internal/delivery/middleware"
	"perks/internal/delivery/worker/handler"
	"perks/internal/domain/lifecycle"
	"perks/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// PushPath receives Pub/Sub push deliveries of redemption events.
	PushPath = "/push/redemptions"

	// legacyPushPath is kept for subscriptions created before PushPath.
	legacyPushPath = "/push"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics `optional:"true"`
	PushHandler *handler.PushHandler
}

// NewServer builds the analytics worker. It only consumes redemption events;
// nothing here can create or reject a redemption.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	if limit := params.Cfg.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(echomiddleware.BodyLimit(limit))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	e.GET("/health", apihandler.HealthCheck)
	e.POST(PushPath, params.PushHandler.HandlePush)
	e.POST(legacyPushPath, params.PushHandler.HandlePush)

	if cfg := params.Cfg.Metrics; cfg != nil && cfg.Enabled && params.Metrics != nil {
		e.GET(cfg.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
