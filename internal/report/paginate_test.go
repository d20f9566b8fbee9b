package report

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/tkadlec/conversions-backend/internal/models"
)

func makeRows(n int) []models.ProductRow {
	rows := make([]models.ProductRow, n)
	for i := range rows {
		rows[i] = models.ProductRow{ShopItemID: strconv.Itoa(i)}
	}
	return rows
}

func TestPaginateLastPartialPage(t *testing.T) {
	rows := makeRows(250)

	pageRows, meta := Paginate(rows, 3, 100)
	if len(pageRows) != 50 {
		t.Fatalf("expected 50 rows on page 3, got %d", len(pageRows))
	}
	if meta.TotalPages != 3 || meta.TotalRows != 250 {
		t.Fatalf("meta mismatch: %+v", meta)
	}
	if meta.From != 201 || meta.To != 250 {
		t.Fatalf("visible range mismatch: %+v", meta)
	}
	if meta.HasNext || !meta.HasPrev {
		t.Fatalf("affordances mismatch on last page: %+v", meta)
	}
}

func TestPaginateClampsPastEnd(t *testing.T) {
	rows := makeRows(150)

	pageRows, meta := Paginate(rows, 99, 100)
	if meta.Page != 2 {
		t.Fatalf("page should clamp to last, got %d", meta.Page)
	}
	if len(pageRows) != 50 {
		t.Fatalf("expected the last page's rows, got %d", len(pageRows))
	}

	_, meta = Paginate(rows, 0, 100)
	if meta.Page != 1 {
		t.Fatalf("page should clamp up to 1, got %d", meta.Page)
	}
}

func TestPaginateEmptySet(t *testing.T) {
	pageRows, meta := Paginate(nil, 1, 100)
	if len(pageRows) != 0 {
		t.Fatalf("expected no rows, got %d", len(pageRows))
	}
	if meta.TotalPages != 1 || meta.Page != 1 {
		t.Fatalf("empty set still has one page: %+v", meta)
	}
	if meta.From != 0 || meta.To != 0 {
		t.Fatalf("visible range of empty set should be 0–0: %+v", meta)
	}
	if meta.HasPrev || meta.HasNext {
		t.Fatalf("no navigation on a single page: %+v", meta)
	}
}

func TestPaginateWindowPages(t *testing.T) {
	rows := makeRows(1000) // 10 pages

	_, meta := Paginate(rows, 5, 100)
	if !reflect.DeepEqual(meta.WindowPages, []int{3, 4, 5, 6, 7}) {
		t.Fatalf("window mismatch mid-range: %v", meta.WindowPages)
	}

	_, meta = Paginate(rows, 1, 100)
	if !reflect.DeepEqual(meta.WindowPages, []int{1, 2, 3}) {
		t.Fatalf("window should clamp at start: %v", meta.WindowPages)
	}

	_, meta = Paginate(rows, 10, 100)
	if !reflect.DeepEqual(meta.WindowPages, []int{8, 9, 10}) {
		t.Fatalf("window should clamp at end: %v", meta.WindowPages)
	}
}

func TestPaginateConcatenationReconstructsInput(t *testing.T) {
	rows := makeRows(237)

	_, first := Paginate(rows, 1, 100)
	var rebuilt []models.ProductRow
	for page := 1; page <= first.TotalPages; page++ {
		pageRows, _ := Paginate(rows, page, 100)
		rebuilt = append(rebuilt, pageRows...)
	}

	if !reflect.DeepEqual(rebuilt, rows) {
		t.Fatal("concatenated pages should reconstruct the input with no gaps or overlaps")
	}
}

func TestPaginateDefaultPageSize(t *testing.T) {
	rows := makeRows(150)
	pageRows, meta := Paginate(rows, 1, 0)
	if meta.PageSize != 100 || len(pageRows) != 100 {
		t.Fatalf("zero page size should default to 100: %+v", meta)
	}
}
