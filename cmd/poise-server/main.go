// Command poise-server runs the interview coaching API: session lifecycle,
// frame and transcript ingestion, scoring, and narrative feedback.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/intix/poise/infrastructure/feedback"
	"github.com/intix/poise/infrastructure/observability"
	"github.com/intix/poise/internal/application"
	"github.com/intix/poise/internal/httpapi"
	"github.com/intix/poise/internal/ports"
)

const shutdownTimeout = 15 * time.Second

func main() {
	var (
		apiAddr     = flag.String("addr", envOr("POISE_ADDR", ":8000"), "API listen address")
		metricsAddr = flag.String("metrics-addr", envOr("POISE_METRICS_ADDR", ":9090"), "metrics listen address")
		configPath  = flag.String("config", os.Getenv("POISE_CONFIG"), "optional engine config YAML")
	)
	flag.Parse()

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = envOr("LOG_LEVEL", logCfg.Level)
	logCfg.Format = envOr("LOG_FORMAT", logCfg.Format)
	observability.InitLogging(logCfg)
	logger := observability.WithComponent("main")

	cfg := application.DefaultEngineConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to read engine config")
		}
		cfg, err = application.LoadEngineConfig(data)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("invalid engine config")
		}
		logger.Info().Str("path", *configPath).Msg("loaded engine config")
	}

	metrics := observability.NewPrometheusMetrics()

	client := buildCompletionClient(metrics)
	generator := feedback.NewGenerator(client, log.Logger)

	service, err := application.NewCoachService(cfg, generator, generator, metrics, log.Logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build coach service")
	}

	apiServer := httpapi.NewServer(*apiAddr, service, generator, log.Logger)
	metricsServer := observability.NewServer(*metricsAddr)

	apiServer.Start()
	metricsServer.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("API server shutdown error")
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("metrics server shutdown error")
	}
}

// buildCompletionClient assembles the provider client from the environment.
// With no credentials the server still runs; feedback and questions come
// from the canned fallbacks.
func buildCompletionClient(metrics *observability.PrometheusMetrics) ports.CompletionClient {
	logger := observability.WithComponent("main")

	provider := envOr("POISE_PROVIDER", "openai")
	apiKey := providerAPIKey(provider)
	if apiKey == "" {
		logger.Warn().Str("provider", provider).
			Msg("no API key configured, feedback generation disabled")
		return feedback.NewDisabledClient()
	}

	client, err := feedback.NewClient(feedback.ClientConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("POISE_MODEL"),
		Timeout:  30 * time.Second,
		Middleware: []feedback.Middleware{
			feedback.RateLimitMiddleware(rate.Limit(2), 4),
			feedback.MetricsMiddleware(metrics),
			feedback.TracingMiddleware("poise-server"),
		},
	})
	if err != nil {
		logger.Warn().Err(err).Str("provider", provider).
			Msg("failed to build completion client, feedback generation disabled")
		return feedback.NewDisabledClient()
	}

	logger.Info().Str("provider", provider).Str("model", client.GetModel()).
		Msg("completion client ready")
	return client
}

func providerAPIKey(provider string) string {
	if key := os.Getenv("POISE_API_KEY"); key != "" {
		return key
	}
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "google":
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
