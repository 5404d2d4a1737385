package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"bilantra/internal/adapters/cli"
	"bilantra/internal/ai"
	"bilantra/internal/app"
	"bilantra/internal/config"
	"bilantra/internal/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("BILANTRA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// Logs go to stderr so command output stays clean.
	logger := config.NewLogger(cfg.Log)
	logger.SetOutput(os.Stderr)
	if os.Getenv("LOG_LEVEL") == "" {
		logger.SetLevel(logrus.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ttl, _ := cfg.Store.TTL()
	advisor := ai.New(cfg.Assistant.OpenAIAPIKey, cfg.Assistant.Model, func(err error) {
		config.LogError(logger, "ai", "Ask", "assistant call failed, using canned reply", nil, err)
	})
	svc := app.NewAppService(st, advisor, logger, app.WithSessionTTL(ttl))

	if err := cli.NewRootCommand(svc).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		st.Close()
		os.Exit(1)
	}
}
