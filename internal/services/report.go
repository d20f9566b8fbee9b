package services

import (
	"context"
	"sync"
	"time"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/errs"
	"github.com/tkadlec/conversions-backend/internal/metrics"
	"github.com/tkadlec/conversions-backend/internal/models"
	"github.com/tkadlec/conversions-backend/internal/report"
	"github.com/tkadlec/conversions-backend/pkg/logger"
)

// dayFetcher is the provider adapter interface.
type dayFetcher interface {
	FetchDay(ctx context.Context, date string) ([]dto.RawConversion, error)
}

// dayCache is the per-date payload cache interface.
type dayCache interface {
	Get(ctx context.Context, date string) ([]dto.RawConversion, bool, error)
	Set(ctx context.Context, date string, recs []dto.RawConversion) error
}

// session is one loaded report: the normalized records plus everything
// derived from the full set at load time, along with the last table view
// so exports can reuse it.
type session struct {
	dateFrom string
	dateTo   string

	records      []models.Conversion
	totals       models.ReportTotals
	kpis         dto.KPIs
	clickSources []string

	// last computed table view, kept so CSV export of the visible set does
	// not recompute the pipeline
	viewQuery dto.TableQuery
	viewRows  []models.ProductRow
	viewSet   bool
}

// reportService owns the single active report session. Overlapping loads do
// not cancel each other; fetching runs outside the lock and the session swap
// is atomic, so the last response to arrive wins.
type reportService struct {
	fetcher      dayFetcher
	cache        dayCache
	maxRangeDays int
	stats        *metrics.Metrics // optional

	mu      sync.Mutex
	current *session
}

func NewReportService(fetcher dayFetcher, cache dayCache, maxRangeDays int, stats *metrics.Metrics) *reportService {
	return &reportService{
		fetcher:      fetcher,
		cache:        cache,
		maxRangeDays: maxRangeDays,
		stats:        stats,
	}
}

// LoadReport fetches and normalizes the period and makes it the active
// session with default view state. A failed load leaves the previously
// loaded session untouched.
func (s *reportService) LoadReport(ctx context.Context, args dto.LoadReportArgs) (dto.LoadReportResult, error) {
	from, to, err := resolveRange(args, s.maxRangeDays)
	if err != nil {
		return dto.LoadReportResult{}, err
	}

	var raws []dto.RawConversion
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		recs, err := s.fetchDay(ctx, day.Format(dateLayout))
		if err != nil {
			return dto.LoadReportResult{}, err
		}
		raws = append(raws, recs...)
	}

	records := report.NormalizeAll(raws)
	totals := report.Aggregate(records)
	sess := &session{
		dateFrom:     from.Format(dateLayout),
		dateTo:       to.Format(dateLayout),
		records:      records,
		totals:       totals,
		kpis:         report.DeriveKPIs(totals),
		clickSources: report.ClickSources(records),
	}

	result := dto.LoadReportResult{
		DateFrom:     sess.dateFrom,
		DateTo:       sess.dateTo,
		RecordCount:  len(records),
		ProductCount: len(report.GroupByProduct(records)),
		Totals:       sess.totals,
		KPIs:         sess.kpis,
		ClickSources: sess.clickSources,
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if s.stats != nil {
		s.stats.ReportsLoaded.Inc()
		s.stats.RecordsPerLoad.Observe(float64(len(records)))
	}
	return result, nil
}

// fetchDay consults the cache first; cache failures are logged and treated
// as misses so a broken cache degrades to plain proxying.
func (s *reportService) fetchDay(ctx context.Context, date string) ([]dto.RawConversion, error) {
	log := logger.FromContext(ctx)

	recs, ok, err := s.cache.Get(ctx, date)
	if err != nil {
		log.Warn("day cache read failed", "date", date, "error", err)
	}
	if ok {
		if s.stats != nil {
			s.stats.CacheHits.Inc()
		}
		return recs, nil
	}
	if s.stats != nil {
		s.stats.CacheMisses.Inc()
	}

	start := time.Now()
	recs, err = s.fetcher.FetchDay(ctx, date)
	if s.stats != nil {
		s.stats.ProviderLatency.Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.stats.ProviderFetches.WithLabelValues(outcome).Inc()
	}
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, date, recs); err != nil {
		log.Warn("day cache write failed", "date", date, "error", err)
	}
	return recs, nil
}

// GetSummary returns the period-wide totals and KPIs of the loaded session.
func (s *reportService) GetSummary(ctx context.Context) (dto.SummaryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current
	if sess == nil {
		return dto.SummaryResult{}, errs.NewNotFoundError("Není načten žádný report.")
	}
	return dto.SummaryResult{
		DateFrom:    sess.dateFrom,
		DateTo:      sess.dateTo,
		RecordCount: len(sess.records),
		Totals:      sess.totals,
		KPIs:        sess.kpis,
	}, nil
}

// GetTable runs filter → group → sort → paginate over the loaded session and
// remembers the sorted set for a following export.
func (s *reportService) GetTable(ctx context.Context, q dto.TableQuery) (dto.TableResult, error) {
	q = normalizeQuery(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current
	if sess == nil {
		return dto.TableResult{}, errs.NewNotFoundError("Není načten žádný report.")
	}

	sorted := sortedRows(sess.records, q)
	sess.viewQuery = q
	sess.viewRows = sorted
	sess.viewSet = true

	pageRows, meta := report.Paginate(sorted, q.Page, q.PageSize)
	return dto.TableResult{Rows: pageRows, Pagination: meta}, nil
}

// ExportCSV renders the whole filtered/grouped/sorted set, not just the
// visible page, reusing the last table computation when the filters and
// sort match it.
func (s *reportService) ExportCSV(ctx context.Context, q dto.TableQuery) (dto.ExportResult, error) {
	q = normalizeQuery(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current
	if sess == nil {
		return dto.ExportResult{}, errs.NewNotFoundError("Není načten žádný report.")
	}

	rows := sess.viewRows
	if !sess.viewSet || !sameView(sess.viewQuery, q) {
		rows = sortedRows(sess.records, q)
	}

	if s.stats != nil {
		s.stats.ExportsRendered.Inc()
	}
	return dto.ExportResult{
		Filename: exportFilename(sess.dateFrom, sess.dateTo),
		CSV:      report.ToCSV(rows),
	}, nil
}

func sortedRows(records []models.Conversion, q dto.TableQuery) []models.ProductRow {
	filtered := report.Filter(records, q.FilterCriteria)
	grouped := report.GroupByProduct(filtered)
	return report.Sort(grouped, q.SortBy, q.Desc)
}

// normalizeQuery applies view defaults: without an explicit sort the table
// opens on orders_total descending, pages are 1-based, page size 100.
func normalizeQuery(q dto.TableQuery) dto.TableQuery {
	if q.SortBy == "" {
		q.SortBy = dto.DefaultSortColumn
		q.Desc = true
	} else {
		q.SortBy = report.SortColumn(q.SortBy)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = dto.DefaultPageSize
	}
	return q
}

// sameView compares the pipeline-relevant parts of two queries (page does
// not matter, the export ignores it).
func sameView(a, b dto.TableQuery) bool {
	return a.FilterCriteria == b.FilterCriteria && a.SortBy == b.SortBy && a.Desc == b.Desc
}

func exportFilename(from, to string) string {
	if from == to {
		return "heureka-conversions-" + from + ".csv"
	}
	return "heureka-conversions-" + from + "_" + to + ".csv"
}
