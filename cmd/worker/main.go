package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/di"
	"github.com/antoniomp17/WebPsicolog-a/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()
	consumer.Run(ctx)
}
