package quiz_fx

import (
	"go.uber.org/fx"
	"quizai/internal/api/controllers"
	"quizai/internal/config"
	"quizai/internal/services"
	"quizai/pkg/logger"
	"quizai/pkg/utils"
)

var Module = fx.Provide(
	provideQuizService,
	controllers.NewQuizController,
)

func provideQuizService(generator utils.TextGeneratorInterface, cfg config.Config, log *logger.Logger) services.QuizServiceInterface {
	return services.NewQuizService(generator, cfg.GenerationTimeout, log)
}
