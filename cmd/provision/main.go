package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrahmVanH/uw-pantry-service/internal/config"
	"github.com/BrahmVanH/uw-pantry-service/internal/logger"
	"github.com/BrahmVanH/uw-pantry-service/internal/repository/dynamo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	client, err := dynamo.NewClient(ctx, cfg.Dynamo)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	if err := dynamo.EnsureTables(ctx, client); err != nil {
		logger.Fatal("failed to provision tables", "error", err)
	}

	logger.Info("tables provisioned", "region", cfg.Dynamo.Region)
}
