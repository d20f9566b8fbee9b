package dto

import (
	"github.com/tkadlec/conversions-backend/internal/models"
)

// Sort column ids accepted by the table and export endpoints.
const (
	ColShopItemName      = "shop_item_name"
	ColShopItemID        = "shop_item_id"
	ColVisitsTotal       = "visits_total"
	ColCostsWithVATTotal = "costs_with_vat_total"
	ColOrdersTotal       = "orders_total"
	ColRevenueTotal      = "revenue_total"
)

// DefaultSortColumn is the view the report opens with: most orders first.
const DefaultSortColumn = ColOrdersTotal

const DefaultPageSize = 100

// --- Request types ---

// LoadReportArgs selects the period to load: either Date (single day) or
// DateFrom+DateTo (inclusive range).
type LoadReportArgs struct {
	Date     string `json:"date,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

// FilterCriteria are the table predicates, ANDed together. Bidded is the
// tri-state select value: "true", "false" or "" (all).
type FilterCriteria struct {
	Search      string `json:"search,omitempty"`
	ClickSource string `json:"click_source,omitempty"`
	Bidded      string `json:"bidded,omitempty"`
}

// TableQuery is the full table view selection: filters, sort and page.
type TableQuery struct {
	FilterCriteria
	SortBy   string `json:"sort,omitempty"`
	Desc     bool   `json:"desc,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

// --- Response types ---

// KPIs are the derived summary ratios. A nil field means the ratio is
// undefined for the period (zero denominator), not an error.
type KPIs struct {
	ROAS *float64 `json:"roas,omitempty"`
	PNO  *float64 `json:"pno,omitempty"`
}

type LoadReportResult struct {
	DateFrom     string              `json:"date_from"`
	DateTo       string              `json:"date_to"`
	RecordCount  int                 `json:"record_count"`
	ProductCount int                 `json:"product_count"`
	Totals       models.ReportTotals `json:"totals"`
	KPIs         KPIs                `json:"kpis"`
	ClickSources []string            `json:"click_sources"`
}

type SummaryResult struct {
	DateFrom    string              `json:"date_from"`
	DateTo      string              `json:"date_to"`
	RecordCount int                 `json:"record_count"`
	Totals      models.ReportTotals `json:"totals"`
	KPIs        KPIs                `json:"kpis"`
}

// Pagination is the navigation metadata for one table page. From and To are
// 1-based positions of the visible rows (0 when the set is empty);
// WindowPages is the sliding current±2 page window.
type Pagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalRows   int   `json:"total_rows"`
	TotalPages  int   `json:"total_pages"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	WindowPages []int `json:"window_pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

type TableResult struct {
	Rows       []models.ProductRow `json:"rows"`
	Pagination Pagination          `json:"pagination"`
}

// ExportResult is a rendered CSV download.
type ExportResult struct {
	Filename string
	CSV      string
}
