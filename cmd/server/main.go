package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	webAdapter "bilantra/internal/adapters/web"
	"bilantra/internal/ai"
	"bilantra/internal/app"
	"bilantra/internal/config"
	"bilantra/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("BILANTRA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open session store")
	}
	defer st.Close()

	ttl, _ := cfg.Store.TTL()

	// Redis expires keys itself.
	if cfg.Store.Backend != "redis" {
		janitor := store.NewJanitor(st, ttl, logger)
		if err := janitor.Start(cfg.Store.PurgeSchedule); err != nil {
			logger.WithError(err).Fatal("failed to start session janitor")
		}
		defer janitor.Stop()
	}

	if cfg.Assistant.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, assistant will use canned replies")
	}
	advisor := ai.New(cfg.Assistant.OpenAIAPIKey, cfg.Assistant.Model, func(err error) {
		config.LogError(logger, "ai", "Ask", "assistant call failed, using canned reply", nil, err)
	})

	svc := app.NewAppService(st, advisor, logger, app.WithSessionTTL(ttl))
	handler := webAdapter.NewHandler(svc, webAdapter.Options{
		AllowedOrigins: cfg.Server.Origins(),
		JWTSecret:      cfg.Server.JWTSecret,
		BodyLimit:      cfg.Server.BodyLimit,
		LoginRate:      cfg.Server.LoginRate,
		TokenTTL:       ttl,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("graceful shutdown failed")
		}
	}()

	logger.WithField("port", cfg.Server.Port).Info("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server stopped")
	}
	<-stopped
	logger.Info("server stopped")
}
