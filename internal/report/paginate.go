package report

import (
	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

// Paginate slices one page out of the sorted rows and computes the
// navigation metadata. Pages are 1-based; a page past the end clamps down to
// the last page, never errors. WindowPages is the current±2 sliding window
// clamped to [1, totalPages].
func Paginate(rows []models.ProductRow, page, pageSize int) ([]models.ProductRow, dto.Pagination) {
	if pageSize <= 0 {
		pageSize = dto.DefaultPageSize
	}

	totalRows := len(rows)
	totalPages := (totalRows + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalRows {
		end = totalRows
	}
	if start > totalRows {
		start = totalRows
	}

	meta := dto.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  totalRows,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if totalRows > 0 {
		meta.From = start + 1
		meta.To = end
	}

	windowStart := page - 2
	if windowStart < 1 {
		windowStart = 1
	}
	windowEnd := page + 2
	if windowEnd > totalPages {
		windowEnd = totalPages
	}
	for p := windowStart; p <= windowEnd; p++ {
		meta.WindowPages = append(meta.WindowPages, p)
	}

	return rows[start:end], meta
}
