package handler

import (
	"net/http"
	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/di"
	"github.com/antoniomp17/WebPsicolog-a/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
