package handlers

import (
	"log/slog"

	"github.com/tkadlec/conversions-backend/internal/metrics"
	"github.com/tkadlec/conversions-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ReportSvc       ReportService
	Stats           *metrics.Metrics
}
