package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// OpenAI configuration
	OpenAIAPIKey    string
	OpenAIModel     string
	AnalysisTimeout time.Duration

	// Langfuse configuration
	LangfuseBaseURL     string
	LangfusePublicKey   string
	LangfuseSecretKey   string
	LangfuseEnv         string
	LangfusePromptName  string
	LangfusePromptLabel string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_ANALYSIS_MODEL", "gpt-4o-mini"),
		AnalysisTimeout: getDurationEnv("ANALYSIS_TIMEOUT_SECONDS", 30*time.Second),

		LangfuseBaseURL:     getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey:   getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:   getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:         getEnv("LANGFUSE_ENV", "development"),
		LangfusePromptName:  getEnv("LANGFUSE_PROMPT_NAME", ""),
		LangfusePromptLabel: getEnv("LANGFUSE_PROMPT_LABEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
