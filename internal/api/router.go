package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/clinical-assistant/docs"
	"github.com/blaisecz/clinical-assistant/internal/api/handler"
	"github.com/blaisecz/clinical-assistant/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	analyzeHandler *handler.AnalyzeHandler
}

func NewRouter(analyzeHandler *handler.AnalyzeHandler) *Router {
	return &Router{
		analyzeHandler: analyzeHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Analysis endpoints
	r.Get("/", rt.analyzeHandler.Home)
	r.Post("/analyze", rt.analyzeHandler.Analyze)
	r.Post("/analyze/feedback", rt.analyzeHandler.PostFeedback)

	return r
}
