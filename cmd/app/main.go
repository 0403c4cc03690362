package main

import (
	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/di"
	"github.com/antoniomp17/WebPsicolog-a/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
