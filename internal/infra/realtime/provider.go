package realtime

import (
	"context"
	"log/slog"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the entitlement notifier, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  clock.Clock
	Logger *slog.Logger
}

// NewEntitlementNotifier returns the hub and, when realtime is enabled, feeds it from Postgres.
func NewEntitlementNotifier(params Params) (service.EntitlementNotifier, error) {
	hub := NewHub()

	cfg := params.Config.Realtime
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Realtime entitlement feed disabled")

		return hub, nil
	}
	if cfg.DSN == "" {
		return nil, errors.New("realtime dsn is required when realtime is enabled")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "parse realtime dsn")
	}
	// One long-lived LISTEN connection plus headroom for reconnects.
	poolCfg.MaxConns = 2

	var pool *pgxpool.Pool
	var listener *Listener

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
			if err != nil {
				return errors.Wrap(err, "create realtime pool")
			}
			listener = NewListener(pool, cfg.Channel, hub, params.Clock, params.Logger)
			listener.Start(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if listener != nil {
				listener.Stop()
			}
			if pool != nil {
				pool.Close()
			}

			return nil
		},
	})

	return hub, nil
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEntitlementNotifier),
)
