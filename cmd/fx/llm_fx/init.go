package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"quizai/internal/config"
	"quizai/pkg/logger"
	"quizai/pkg/utils"
)

var Module = fx.Provide(ProvideTextGenerator)

// ProvideTextGenerator builds the process-wide model client for the configured provider
func ProvideTextGenerator(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (utils.TextGeneratorInterface, error) {
	log.Info("initializing text generator", "provider", cfg.Provider, "model", cfg.Model)

	generator, err := utils.NewTextGenerator(cfg.Provider, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return generator.Close()
		},
	})
	return generator, nil
}
