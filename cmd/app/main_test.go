package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"quizai/internal/api/controllers"
	"quizai/internal/config"
	"quizai/internal/services"
	"quizai/pkg/logger"
	"quizai/pkg/middleware"
)

func TestAppGraphIsComplete(t *testing.T) {
	if err := fx.ValidateApp(appModules()); err != nil {
		t.Fatalf("invalid dependency graph: %v", err)
	}
}

type stubGenerator struct{ calls int }

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return "ok", nil
}

func (s *stubGenerator) Close() error { return nil }

func testEngine(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{AllowedOrigin: "http://localhost:3000", AppEnv: "test"}
	log := logger.NewNop()
	ctrl := controllers.NewQuizController(services.NewQuizService(gen, 0, log))
	return ProvideRouter(cfg, log, ctrl)
}

func TestRouterCORSPreflight(t *testing.T) {
	gen := &stubGenerator{}
	r := testEngine(gen)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("model was called %d times", gen.calls)
	}
}

func TestRouterRejectsForeignOrigin(t *testing.T) {
	r := testEngine(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
}

func TestRouterServesChatWithTraceID(t *testing.T) {
	r := testEngine(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != `{"response":"ok"}` {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if rr.Header().Get(middleware.TraceIDHeader) == "" {
		t.Fatal("missing trace id header")
	}
}

func TestHealthcheck(t *testing.T) {
	r := testEngine(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}
