package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sukanya41455/AccentChanger/internal/config"
	"github.com/Sukanya41455/AccentChanger/internal/observability"
	"github.com/Sukanya41455/AccentChanger/internal/server"
	"github.com/Sukanya41455/AccentChanger/internal/session"
	"github.com/Sukanya41455/AccentChanger/internal/stt"
	"github.com/Sukanya41455/AccentChanger/internal/tts"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use fmt for fatal errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	observability.InitLogger(cfg.LogLevel, cfg.LogPretty)
	logger := observability.GetLogger()

	logger.Info().
		Str("port", cfg.Port).
		Str("voice_id", cfg.PollyVoiceID).
		Str("log_level", cfg.LogLevel).
		Bool("metrics_enabled", cfg.MetricsEnabled).
		Msg("Accent Changer Service starting")

	recognizer, err := stt.NewDeepgramRecognizer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create recognizer")
	}

	// The synthesis client is built per convert action so a missing AWS
	// credential surfaces as that action's status instead of at startup.
	synthFactory := func(ctx context.Context) (tts.Synthesizer, error) {
		return tts.NewPollyClient(ctx, cfg)
	}

	store := session.NewStore(cfg.SessionTTL)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go store.Sweep(sweepCtx)

	mux := http.NewServeMux()
	server.New(cfg, store, recognizer, synthFactory).Routes(mux)

	// Health check endpoint
	mux.HandleFunc("/health", observability.HealthCheckHandler())

	// Readiness probes only validate client construction; no billable calls
	mux.HandleFunc("/ready", observability.ReadinessHandler(map[string]observability.HealthCheckFunc{
		"deepgram": func(ctx context.Context) (bool, error) {
			_, err := stt.NewDeepgramRecognizer(cfg)
			return err == nil, err
		},
		"polly": func(ctx context.Context) (bool, error) {
			_, err := tts.NewPollyClient(ctx, cfg)
			return err == nil, err
		},
	}))

	// Metrics endpoint (Prometheus)
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info().Msg("Prometheus metrics enabled at /metrics")
	}

	// Create HTTP server with timeouts. Reads stay short; writes cover a
	// full blocking recognition plus synthesis round trip.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RecognitionDeadline() + 20*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	stopSweep()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
