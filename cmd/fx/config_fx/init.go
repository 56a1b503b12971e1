package config_fx

import (
	"context"

	"go.uber.org/fx"
	"quizai/internal/config"
	"quizai/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(provideLogger),
)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Sync()
			return nil
		},
	})
	return log, nil
}
