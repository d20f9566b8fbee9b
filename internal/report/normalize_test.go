package report

import (
	"testing"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

func TestNormalizeFullRecord(t *testing.T) {
	raw := dto.RawConversion{
		Date:             "2025-06-01",
		ClickSource:      "product_detail",
		OnBiddedPosition: true,
		SatelliteName:    "heureka.cz",
		ProductCardID:    "pc-1",
		ShopItem:         &dto.RawShopItem{ID: float64(42), Name: "Kávovar"},
		PortalCategory:   &dto.RawIDRef{ID: "cat-9"},
		Visits:           &dto.RawMetricGroup{Total: float64(10), Free: float64(4), Bidded: float64(5), NotBidded: float64(1)},
		CostsWithVAT:     &dto.RawMetricGroup{Total: "12.5", Bidded: float64(12), NotBidded: "0.5"},
		Orders:           &dto.RawMetricGroup{Total: float64(3)},
		Revenue:          &dto.RawMetricGroup{Total: float64(999.9)},
	}

	c := Normalize(raw)

	if c.Date != "2025-06-01" || c.ClickSource != "product_detail" {
		t.Fatalf("identity mismatch: %+v", c)
	}
	if !c.OnBiddedPosition {
		t.Fatal("expected bidded flag true")
	}
	if c.ShopItemID != "42" {
		t.Fatalf("numeric shop item id should stringify, got %q", c.ShopItemID)
	}
	if c.ShopItemName != "Kávovar" || c.PortalCategoryID != "cat-9" {
		t.Fatalf("shop/category mismatch: %+v", c)
	}
	if c.VisitsTotal != 10 || c.VisitsFree != 4 || c.VisitsBidded != 5 || c.VisitsNotBidded != 1 {
		t.Fatalf("visits mismatch: %+v", c.Metrics)
	}
	if c.CostsWithVATTotal != 12.5 || c.CostsWithVATNotBidded != 0.5 {
		t.Fatalf("numeric strings should parse: %+v", c.Metrics)
	}
	if c.OrdersTotal != 3 || c.RevenueTotal != 999.9 {
		t.Fatalf("orders/revenue mismatch: %+v", c.Metrics)
	}
}

func TestNormalizeDegradesMissingFields(t *testing.T) {
	c := Normalize(dto.RawConversion{})

	if c.ShopItemID != "" || c.ShopItemName != "" || c.PortalCategoryID != "" {
		t.Fatalf("missing identity should default empty: %+v", c)
	}
	if c.OnBiddedPosition {
		t.Fatal("missing bidded flag should be false")
	}
	if c.Metrics != (models.Metrics{}) {
		t.Fatalf("missing groups should zero all metrics: %+v", c.Metrics)
	}
}

func TestNormalizeCoercesMalformedNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"number", float64(7), 7},
		{"numeric string", "3.25", 3.25},
		{"empty string", "", 0},
		{"garbage string", "abc", 0},
		{"null", nil, 0},
		{"object", map[string]any{"x": 1}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Normalize(dto.RawConversion{Visits: &dto.RawMetricGroup{Total: tc.in}})
			if c.VisitsTotal != tc.want {
				t.Fatalf("got %v, want %v", c.VisitsTotal, tc.want)
			}
		})
	}
}

func TestNormalizeBiddedTruthiness(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"true", true, true},
		{"false", false, false},
		{"null", nil, false},
		{"one", float64(1), true},
		{"zero", float64(0), false},
		{"nonempty string", "yes", true},
		{"empty string", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Normalize(dto.RawConversion{OnBiddedPosition: tc.in})
			if c.OnBiddedPosition != tc.want {
				t.Fatalf("got %v, want %v", c.OnBiddedPosition, tc.want)
			}
		})
	}
}
