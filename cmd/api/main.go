// AI Clinical Assistant API
//
// REST API that turns structured patient health data into an AI-generated
// clinical summary.
//
//	@title			AI Clinical Assistant API
//	@version		1.0
//	@description	POST detailed patient data and receive a complete AI clinical analysis with risk scoring and lifestyle program recommendations.
//
//	@BasePath	/
//
//	@tag.name			analysis
//	@tag.description	Patient analysis endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/clinical-assistant/internal/api"
	"github.com/blaisecz/clinical-assistant/internal/api/handler"
	"github.com/blaisecz/clinical-assistant/internal/config"
	"github.com/blaisecz/clinical-assistant/internal/langfuse"
	"github.com/blaisecz/clinical-assistant/internal/llm"
	"github.com/blaisecz/clinical-assistant/internal/service"
	"github.com/blaisecz/clinical-assistant/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The provider key is the one hard requirement: without it the service
	// cannot do anything useful, so refuse to start.
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set. Create a .env file with OPENAI_API_KEY=your_key_here")
	}

	ctx := context.Background()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "clinical-assistant-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Initialize Langfuse client for feedback scoring
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize OpenAI client
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Optionally override the baked-in system prompt with one managed in
	// Langfuse prompt management.
	if cfg.LangfusePromptName != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
		})
		if err != nil {
			log.Printf("Falling back to built-in analysis prompt: %v", err)
		} else {
			openaiClient.SetSystemPrompt(prompt)
			log.Printf("Loaded analysis prompt %q from Langfuse", cfg.LangfusePromptName)
		}
	}

	// Initialize service and handlers
	analysisService := service.NewAnalysisService(openaiClient, langfuseClient, cfg.AnalysisTimeout)
	analyzeHandler := handler.NewAnalyzeHandler(analysisService, langfuseClient)

	// Setup router
	router := api.NewRouter(analyzeHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("AI Clinical Assistant started, send POST requests to http://localhost%s/analyze", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
