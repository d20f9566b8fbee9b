package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/errs"
	"github.com/tkadlec/conversions-backend/internal/response"
)

// ReportService is the report session interface the handlers depend on.
type ReportService interface {
	LoadReport(ctx context.Context, args dto.LoadReportArgs) (dto.LoadReportResult, error)
	GetSummary(ctx context.Context) (dto.SummaryResult, error)
	GetTable(ctx context.Context, q dto.TableQuery) (dto.TableResult, error)
	ExportCSV(ctx context.Context, q dto.TableQuery) (dto.ExportResult, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       ReportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.LoadReport)
	r.Get("/summary", h.GetSummary)
	r.Get("/table", h.GetTable)
	r.Get("/export", h.ExportCSV)
	return r
}

func (h *reportHandlers) LoadReport(w http.ResponseWriter, r *http.Request) {
	var args dto.LoadReportArgs
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Neplatné tělo požadavku."))
		return
	}
	result, err := h.ReportSvc.LoadReport(r.Context(), args)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *reportHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.ReportSvc.GetSummary(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *reportHandlers) GetTable(w http.ResponseWriter, r *http.Request) {
	result, err := h.ReportSvc.GetTable(r.Context(), tableQueryFromRequest(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

// ExportCSV streams the current result set as a BOM-prefixed CSV download so
// spreadsheet apps detect UTF-8.
func (h *reportHandlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.ReportSvc.ExportCSV(r.Context(), tableQueryFromRequest(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	// UTF-8 BOM so spreadsheet apps decode Czech product names correctly.
	w.Write([]byte("\uFEFF"))
	w.Write([]byte(result.CSV))
}

func tableQueryFromRequest(r *http.Request) dto.TableQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	desc, _ := strconv.ParseBool(q.Get("desc"))
	return dto.TableQuery{
		FilterCriteria: dto.FilterCriteria{
			Search:      q.Get("search"),
			ClickSource: q.Get("click_source"),
			Bidded:      q.Get("bidded"),
		},
		SortBy:   q.Get("sort"),
		Desc:     desc,
		Page:     page,
		PageSize: pageSize,
	}
}
