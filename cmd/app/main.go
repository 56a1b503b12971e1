package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"quizai/cmd/fx/config_fx"
	"quizai/cmd/fx/llm_fx"
	"quizai/cmd/fx/quiz_fx"
	"quizai/internal/api/controllers"
	"quizai/internal/config"
	"quizai/pkg/logger"
	"quizai/pkg/middleware"
)

func main() {
	app := fx.New(
		appModules(),
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.SugaredLogger.Desugar()}
		}),
	)

	app.Run()
}

func appModules() fx.Option {
	return fx.Options(
		config_fx.Module,
		llm_fx.Module,
		quiz_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg config.Config, log *logger.Logger, quizController *controllers.QuizController) *gin.Engine {
	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	RegisterRoutes(r, quizController)

	return r
}

func RegisterRoutes(r *gin.Engine, quizController *controllers.QuizController) {
	r.GET("/healthcheck", controllers.HealthCheck)

	r.POST("/generate_questions", quizController.GenerateQuestionsHandler)
	r.POST("/generate_feedback", quizController.GenerateFeedbackHandler)
	r.POST("/predict", quizController.PredictHandler)
	r.POST("/chat", quizController.ChatHandler)
	r.OPTIONS("/chat", quizController.ChatPreflightHandler)
}
