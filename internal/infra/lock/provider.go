package lock

import (
	"context"
	"log/slog"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the RedemptionLocker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  clock.Clock
	Logger *slog.Logger
}

// NewRedemptionLocker returns the Redis locker when Redis is enabled, otherwise the in-process one.
func NewRedemptionLocker(params Params) (service.RedemptionLocker, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, using in-process redemption lock")

		return NewLocalLocker(params.Clock), nil
	}

	if cfg.Addr == "" {
		return nil, errors.New("redis addr is required when redis is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			params.Logger.Info("Redis redemption lock connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client), nil
}

// Module provides the redemption lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRedemptionLocker),
)
