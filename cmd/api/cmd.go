package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/tkadlec/conversions-backend/internal/bootstrap"
	"github.com/tkadlec/conversions-backend/internal/config"
	"github.com/tkadlec/conversions-backend/internal/handlers"
	"github.com/tkadlec/conversions-backend/internal/metrics"
	"github.com/tkadlec/conversions-backend/internal/response"
	"github.com/tkadlec/conversions-backend/internal/router"
	"github.com/tkadlec/conversions-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// metrics
	stats := metrics.New()

	// services
	rserv := services.NewReportService(bs.Heureka, bs.DayCache, cfg.MaxRangeDays, stats)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.ReportSvc = rserv
	deps.Stats = stats

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
