package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/trading-service/internal/app"
	"github.com/NastyaGoryachaya/trading-service/internal/config"
	"github.com/NastyaGoryachaya/trading-service/internal/infra/db"
	"github.com/NastyaGoryachaya/trading-service/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New(&cfg.Logger)

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(&cfg.Postgres)
	if err != nil {
		log.Error("postgres connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	application, err := app.NewApp(ctx, cfg, log, pool)
	if err != nil {
		pool.Close()
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("trading-service stopped")
}
