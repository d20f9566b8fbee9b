package report

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/tkadlec/conversions-backend/internal/models"
)

func TestToCSVHeaderAndColumns(t *testing.T) {
	got := ToCSV(nil)
	want := "shop_item_name,visits_total,costs_with_vat_total,orders_total,revenue_total,shop_item_id"
	if got != want {
		t.Fatalf("header mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestToCSVRendersRows(t *testing.T) {
	rows := []models.ProductRow{
		{
			ShopItemName: "Kávovar",
			ShopItemID:   "42",
			Metrics: models.Metrics{
				VisitsTotal:       10,
				CostsWithVATTotal: 12.5,
				OrdersTotal:       3,
				RevenueTotal:      999.9,
			},
		},
	}
	got := ToCSV(rows)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[1] != "Kávovar,10,12.5,3,999.9,42" {
		t.Fatalf("row mismatch: %q", lines[1])
	}
}

func TestToCSVQuotesSpecialCharacters(t *testing.T) {
	rows := []models.ProductRow{
		{ShopItemName: `Sada "deluxe", 2ks`, ShopItemID: "a\nb"},
	}
	got := ToCSV(rows)
	lines := strings.SplitN(got, "\n", 2)
	if lines[1] != `"Sada ""deluxe"", 2ks",0,0,0,0,"a`+"\n"+`b"` {
		t.Fatalf("quoting mismatch: %q", lines[1])
	}
}

func TestToCSVRoundTripsThroughParser(t *testing.T) {
	rows := []models.ProductRow{
		{ShopItemName: "plain", ShopItemID: "1"},
		{ShopItemName: `with "quotes"`, ShopItemID: "2"},
		{ShopItemName: "with, comma", ShopItemID: "3"},
	}
	out := ToCSV(rows)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output should parse as CSV: %v", err)
	}
	if len(records) != len(rows)+1 {
		t.Fatalf("expected %d records incl. header, got %d", len(rows)+1, len(records))
	}
	for i, r := range rows {
		if records[i+1][0] != r.ShopItemName {
			t.Fatalf("row %d name did not round-trip: %q", i, records[i+1][0])
		}
	}
}

func TestToCSVLineCountMatchesRowCount(t *testing.T) {
	rows := makeRows(25)
	out := ToCSV(rows)
	if got := len(strings.Split(out, "\n")); got != 26 {
		t.Fatalf("expected totalRows+1 lines, got %d", got)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatal("no trailing newline expected")
	}
}
