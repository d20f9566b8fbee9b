package report

import (
	"reflect"
	"testing"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

func rowNamed(name string, orders float64) models.ProductRow {
	return models.ProductRow{ShopItemName: name, Metrics: models.Metrics{OrdersTotal: orders}}
}

func TestSortNumericColumn(t *testing.T) {
	rows := []models.ProductRow{rowNamed("a", 2), rowNamed("b", 10), rowNamed("c", 1)}

	asc := Sort(rows, dto.ColOrdersTotal, false)
	if asc[0].OrdersTotal != 1 || asc[1].OrdersTotal != 2 || asc[2].OrdersTotal != 10 {
		t.Fatalf("ascending numeric sort failed: %+v", asc)
	}

	desc := Sort(rows, dto.ColOrdersTotal, true)
	if desc[0].OrdersTotal != 10 || desc[2].OrdersTotal != 1 {
		t.Fatalf("descending numeric sort failed: %+v", desc)
	}
}

func TestSortCzechCollation(t *testing.T) {
	// Czech orders ch after h; a byte-wise sort would put "chata" before "hrad"
	rows := []models.ProductRow{rowNamed("chata", 0), rowNamed("cena", 0), rowNamed("hrad", 0)}

	got := Sort(rows, dto.ColShopItemName, false)
	want := []string{"cena", "hrad", "chata"}
	for i, name := range want {
		if got[i].ShopItemName != name {
			t.Fatalf("czech collation order mismatch at %d: got %q, want %q", i, got[i].ShopItemName, name)
		}
	}
}

func TestSortDoubleReversal(t *testing.T) {
	rows := []models.ProductRow{rowNamed("a", 3), rowNamed("b", 1), rowNamed("c", 7), rowNamed("d", 5)}

	asc := Sort(rows, dto.ColOrdersTotal, false)
	desc := Sort(rows, dto.ColOrdersTotal, true)

	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("flipping direction should reverse exactly (no ties): %+v vs %+v", asc, desc)
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	rows := []models.ProductRow{
		{ShopItemID: "first", Metrics: models.Metrics{OrdersTotal: 1}},
		{ShopItemID: "second", Metrics: models.Metrics{OrdersTotal: 1}},
		{ShopItemID: "third", Metrics: models.Metrics{OrdersTotal: 1}},
	}
	got := Sort(rows, dto.ColOrdersTotal, false)
	if got[0].ShopItemID != "first" || got[1].ShopItemID != "second" || got[2].ShopItemID != "third" {
		t.Fatalf("ties should keep input order: %+v", got)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []models.ProductRow{rowNamed("b", 2), rowNamed("a", 1)}
	before := make([]models.ProductRow, len(rows))
	copy(before, rows)

	Sort(rows, dto.ColOrdersTotal, false)
	if !reflect.DeepEqual(before, rows) {
		t.Fatal("sort mutated its input slice")
	}
}

func TestSortUnknownColumnFallsBack(t *testing.T) {
	if got := SortColumn("no_such_column"); got != dto.DefaultSortColumn {
		t.Fatalf("expected fallback to %q, got %q", dto.DefaultSortColumn, got)
	}
	if got := SortColumn(dto.ColRevenueTotal); got != dto.ColRevenueTotal {
		t.Fatalf("valid column should pass through, got %q", got)
	}

	rows := []models.ProductRow{rowNamed("a", 2), rowNamed("b", 1)}
	got := Sort(rows, "no_such_column", false)
	if got[0].OrdersTotal != 1 {
		t.Fatalf("unknown column should sort by default column: %+v", got)
	}
}
